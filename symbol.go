package wirecast

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Symbol is a process-wide canonical identifier used as a field name or
// mapping key. Two Symbols are equal iff their source strings are equal.
// The symbol space only ever grows; nothing is reclaimed for the lifetime of
// the process. That is safe because the remote API's key vocabulary is finite
// and mostly fixed, but it means callers must never intern attacker-controlled
// strings wholesale.
type Symbol string

// process-wide symbol table. LoadOrStore gives the atomic insert-if-absent
// required so that concurrent interning of the same new token cannot mint two
// distinct symbols.
var symtab sync.Map // string -> Symbol

var diag atomic.Pointer[zap.Logger]

func init() {
	diag.Store(zap.NewNop())
}

// SetLogger installs the diagnostic sink used to report unrecognized keys.
// The default is a no-op logger. Safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	diag.Store(l)
}

// declare registers a token in the symbol table without emitting the
// unrecognized-key diagnostic. Schema declarations and the allow-list go
// through here: keys the catalog already knows about are not noteworthy.
func declare(token string) Symbol {
	if v, ok := symtab.Load(token); ok {
		return v.(Symbol)
	}
	v, _ := symtab.LoadOrStore(token, Symbol(token))
	return v.(Symbol)
}

// Allow registers known-but-schema-unused keys so that payloads carrying them
// do not trip the unrecognized-key diagnostic. The allow-list is data supplied
// by the caller; see AllowFromYAML for loading it from a document.
func Allow(keys ...string) {
	for _, k := range keys {
		declare(k)
	}
}

// Intern returns the canonical Symbol for token. Interning is idempotent:
// repeated calls return the same Symbol, and interning the string form of an
// existing Symbol returns that Symbol.
//
// The first time a token is seen it is registered and reported to the
// diagnostic sink. The remote API is expected to send only keys the schema
// catalog (or the allow-list) already declares; a fresh symbol means either a
// new, undocumented field or attacker-influenced data, and unbounded symbol
// growth is a resource leak worth surfacing. It is a diagnostic, not an error.
func Intern(token string) Symbol {
	if v, ok := symtab.Load(token); ok {
		return v.(Symbol)
	}
	v, loaded := symtab.LoadOrStore(token, Symbol(token))
	if !loaded {
		diag.Load().Warn("interned unrecognized key", zap.String("key", token))
	}
	return v.(Symbol)
}

// NormalizeKeys walks v and replaces every mapping key, recursively, with its
// canonical Symbol. Keys that are already Symbols pass through unchanged.
// Lists are processed element-wise; scalars are returned as-is. The input is
// never mutated.
func NormalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[Symbol]any, len(t))
		for k, val := range t {
			out[Intern(k)] = NormalizeKeys(val)
		}
		return out
	case map[Symbol]any:
		out := make(map[Symbol]any, len(t))
		for k, val := range t {
			out[k] = NormalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = NormalizeKeys(val)
		}
		return out
	default:
		return v
	}
}
