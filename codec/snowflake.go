package codec

import (
	"encoding/json"
	"strconv"

	wirecast "github.com/lumachat/wirecast"
)

// Snowflake returns a converter between decimal-string entity IDs on the wire
// and uint64 in the domain. The API serializes IDs as strings because they
// exceed the integer range JSON consumers can rely on.
func Snowflake() wirecast.Converter { return snowflakeConverter{} }

type snowflakeConverter struct{}

func (snowflakeConverter) Cast(v any) (any, error) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		return nil, wirecast.Issues{{Path: "/", Code: wirecast.CodeInvalidType, Message: "expected snowflake string"}}
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, wirecast.Issues{{Path: "/", Code: wirecast.CodeParseError, Message: "invalid snowflake", Cause: err}}
	}
	return id, nil
}

func (snowflakeConverter) Encode(v any) (any, error) {
	id, ok := v.(uint64)
	if !ok {
		return nil, wirecast.Issues{{Path: "/", Code: wirecast.CodeInvalidType, Message: "expected uint64 snowflake"}}
	}
	return strconv.FormatUint(id, 10), nil
}
