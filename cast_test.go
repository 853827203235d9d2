package wirecast_test

import (
	"errors"
	"testing"

	wirecast "github.com/lumachat/wirecast"
)

// upperConverter upcases strings and fails on anything else.
type upperConverter struct{}

func (upperConverter) Cast(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.New("not a string")
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out), nil
}

func (upperConverter) Encode(v any) (any, error) { return v, nil }

// brokenConverter always fails.
type brokenConverter struct{}

func (brokenConverter) Cast(v any) (any, error)   { return nil, errors.New("broken") }
func (brokenConverter) Encode(v any) (any, error) { return nil, errors.New("broken") }

func TestCast_NullPropagation(t *testing.T) {
	descriptors := map[string]wirecast.Descriptor{
		"primitive":   wirecast.Primitive(),
		"list":        wirecast.ListOf(wirecast.Primitive()),
		"entity":      wirecast.EntityOf(wirecast.NewSchema("null_prop_entity")),
		"convertible": wirecast.ConvertibleOf(upperConverter{}),
	}
	for name, d := range descriptors {
		got, err := wirecast.Cast(nil, d)
		if err != nil {
			t.Fatalf("%s: cast of nil must not fail: %v", name, err)
		}
		if got != nil {
			t.Fatalf("%s: cast of nil must be nil, got %v", name, got)
		}
	}
}

func TestCast_PrimitivePassthrough(t *testing.T) {
	for _, v := range []any{"s", 1.5, true} {
		got, err := wirecast.Cast(v, wirecast.Primitive())
		if err != nil || got != v {
			t.Fatalf("primitive must pass through unchanged: got %v, err %v", got, err)
		}
	}
}

func TestCast_ListPreservesOrderAndLength(t *testing.T) {
	in := []any{"c", "a", "b"}
	got, err := wirecast.Cast(in, wirecast.ListOf(wirecast.ConvertibleOf(upperConverter{})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := got.([]any)
	if len(list) != 3 || list[0] != "C" || list[1] != "A" || list[2] != "B" {
		t.Fatalf("order or length not preserved: %v", list)
	}
}

func TestCast_EmptyList(t *testing.T) {
	got, err := wirecast.Cast([]any{}, wirecast.ListOf(wirecast.Primitive()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list := got.([]any); len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestCast_ListShapeMismatch(t *testing.T) {
	_, err := wirecast.Cast(map[wirecast.Symbol]any{}, wirecast.ListOf(wirecast.Primitive()))
	iss, ok := wirecast.AsIssues(err)
	if !ok || iss[0].Code != wirecast.CodeInvalidType {
		t.Fatalf("expected invalid_type issues, got %v", err)
	}
}

func TestCast_EntityShapeMismatch(t *testing.T) {
	s := wirecast.NewSchema("shape_entity", wirecast.F("shape_f1", wirecast.Primitive()))
	_, err := wirecast.Cast([]any{}, wirecast.EntityOf(s))
	if _, ok := wirecast.AsIssues(err); !ok {
		t.Fatalf("expected issues for entity shape mismatch, got %v", err)
	}
}

func TestCast_ConverterFallback(t *testing.T) {
	// A failing converter degrades the field to its raw value; it never fails
	// the cast.
	got, err := wirecast.Cast("raw-value", wirecast.ConvertibleOf(brokenConverter{}))
	if err != nil {
		t.Fatalf("converter failure must be swallowed, got %v", err)
	}
	if got != "raw-value" {
		t.Fatalf("expected raw value back, got %v", got)
	}
}

func TestCast_ListElementErrorCarriesIndex(t *testing.T) {
	in := []any{[]any{}, "not-a-list"}
	_, err := wirecast.Cast(in, wirecast.ListOf(wirecast.ListOf(wirecast.Primitive())))
	iss, ok := wirecast.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/1" {
		t.Fatalf("expected path /1, got %q", iss[0].Path)
	}
}
