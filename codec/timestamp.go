// Package codec provides the converters used by Convertible schema fields:
// values with their own wire/domain conversion, such as timestamps and
// snowflake IDs.
package codec

import (
	"time"

	wirecast "github.com/lumachat/wirecast"
)

// Timestamp returns a converter between RFC3339 wire strings and time.Time.
func Timestamp() wirecast.Converter { return timestampConverter{} }

type timestampConverter struct{}

func (timestampConverter) Cast(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, wirecast.Issues{{Path: "/", Code: wirecast.CodeInvalidType, Message: "expected RFC3339 string"}}
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return nil, wirecast.Issues{{Path: "/", Code: wirecast.CodeParseError, Message: "invalid RFC3339 time", Cause: err}}
	}
	return t, nil
}

func (timestampConverter) Encode(v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, wirecast.Issues{{Path: "/", Code: wirecast.CodeInvalidType, Message: "expected time.Time"}}
	}
	return formatRFC3339Canonical(t), nil
}

// ---- helpers ----

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
