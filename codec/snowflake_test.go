package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/lumachat/wirecast/codec"
)

func TestSnowflake_CastAndEncode(t *testing.T) {
	conv := codec.Snowflake()

	v, err := conv.Cast("41771983423143937")
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if v != uint64(41771983423143937) {
		t.Fatalf("unexpected id: %v (%T)", v, v)
	}

	w, err := conv.Encode(uint64(41771983423143937))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if w != "41771983423143937" {
		t.Fatalf("unexpected wire form: %v", w)
	}
}

func TestSnowflake_CastNumber(t *testing.T) {
	conv := codec.Snowflake()
	v, err := conv.Cast(json.Number("97"))
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if v != uint64(97) {
		t.Fatalf("unexpected id: %v", v)
	}
}

func TestSnowflake_Failures(t *testing.T) {
	conv := codec.Snowflake()
	if _, err := conv.Cast("abc"); err == nil {
		t.Fatalf("expected parse failure")
	}
	if _, err := conv.Cast(true); err == nil {
		t.Fatalf("expected type failure")
	}
	if _, err := conv.Encode("123"); err == nil {
		t.Fatalf("expected encode type failure")
	}
}
