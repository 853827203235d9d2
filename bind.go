package wirecast

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Bind copies a decoded entity onto the caller's struct. Field names are
// matched against `json` tags first and Go field names second, so domain
// structs can reuse the tags they already carry for the wire format.
//
//	type User struct {
//		ID       uint64 `json:"id"`
//		Username string `json:"username"`
//	}
//	var u User
//	err := wirecast.Bind(ent, &u)
func Bind[T any](e Entity, out *T) error {
	if out == nil {
		return fmt.Errorf("wirecast: Bind target must not be nil")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("wirecast: building binder: %w", err)
	}
	if err := dec.Decode(e.Plain()); err != nil {
		return fmt.Errorf("wirecast: binding %s: %w", e.schema.name, err)
	}
	return nil
}

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key: json tag name wins over the field name, and "-"
// disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// SchemaKeys returns the canonical symbols for every bindable field of T, in
// struct declaration order. Handy when deriving an allow-list or a schema
// skeleton from an existing domain struct.
func SchemaKeys[T any]() []Symbol {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}
	out := make([]Symbol, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		out = append(out, declare(name))
	}
	return out
}
