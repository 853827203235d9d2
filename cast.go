package wirecast

import "strconv"

// Cast converts a raw payload value into the shape described by d.
//
// A nil input short-circuits to nil for every descriptor; this is the single
// universal null-propagation rule. Structural mismatches (a mapping where a
// list was expected, and so on) return Issues and abort the cast. A
// Convertible whose converter fails does NOT abort: the field degrades to its
// raw wire value. Malformed values for such fields are best-effort by policy,
// while shape mismatches fail loudly.
func Cast(v any, d Descriptor) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch d.kind {
	case KindPrimitive:
		return v, nil
	case KindList:
		items, ok := v.([]any)
		if !ok {
			return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected list"}}
		}
		out := make([]any, len(items))
		for i, it := range items {
			cv, err := Cast(it, *d.elem)
			if err != nil {
				return nil, prefixIssues(err, strconv.Itoa(i))
			}
			out[i] = cv
		}
		return out, nil
	case KindEntity:
		m, ok := v.(map[Symbol]any)
		if !ok {
			return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected mapping"}}
		}
		return d.schema.Decode(m)
	case KindConvertible:
		cv, err := d.conv.Cast(v)
		if err != nil {
			// Best-effort: keep the raw value rather than failing the decode.
			return v, nil
		}
		return cv, nil
	default:
		return v, nil
	}
}

// encodeValue renders an already-typed field value back to wire form. The
// inverse of Cast for non-nil values; nil never reaches here because Encode
// omits nil fields entirely.
func encodeValue(v any, d Descriptor) any {
	if v == nil {
		return nil
	}
	switch d.kind {
	case KindList:
		items, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = encodeValue(it, *d.elem)
		}
		return out
	case KindEntity:
		if e, ok := v.(Entity); ok {
			return d.schema.Encode(e)
		}
		// A field that degraded to its raw form round-trips as-is.
		return v
	case KindConvertible:
		w, err := d.conv.Encode(v)
		if err != nil {
			return v
		}
		return w
	default:
		return v
	}
}
