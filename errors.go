package wirecast

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeParseError  = "parse_error"
)

// Issue represents a single decode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /mentions/2/id).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of decode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// prefixIssues re-anchors every issue in err under the given path segment.
// Non-Issues errors are wrapped into a single parse_error issue so the path
// is not lost.
func prefixIssues(err error, seg string) error {
	if err == nil {
		return nil
	}
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: "/" + seg, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		p := it.Path
		if p == "/" {
			p = ""
		}
		it.Path = "/" + seg + p
		out[i] = it
	}
	return out
}

// LookupError reports that something expected was not found in a store or
// response. It carries what was being searched for and where, so callers can
// surface a useful message instead of a bare "not found".
type LookupError struct {
	What  string
	Where string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("wirecast: no %s found in %s", e.What, e.Where)
}

// Require converts a (value, ok) lookup result into a (value, error) pair,
// raising a LookupError when the lookup missed.
func Require[T any](v T, ok bool, what, where string) (T, error) {
	if !ok {
		var zero T
		return zero, &LookupError{What: what, Where: where}
	}
	return v, nil
}
