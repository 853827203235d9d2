package wirecast

import "strconv"

// Field is one declared entity field: a canonical name and the descriptor
// used to cast its value.
type Field struct {
	Name Symbol
	Type Descriptor
}

// F declares a schema field. The key is registered in the symbol table
// silently: keys the catalog declares are recognized by definition.
func F(name string, d Descriptor) Field {
	return Field{Name: declare(name), Type: d}
}

// Schema is an ordered mapping from field symbol to descriptor describing one
// entity type's decode/encode shape. Schemas are plain data owned by the
// caller; one generic codec serves every schema instance.
type Schema struct {
	name   string
	fields []Field
	index  map[Symbol]int
}

// NewSchema builds a schema named name with the given fields, in declaration
// order.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: fields,
		index:  make(map[Symbol]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

// Name returns the entity type name.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// Entity is the typed, schema-shaped output of a decode. Its field set equals
// its schema's declared field set, no more and no less; fields absent from
// the payload hold nil. Entities are produced fresh per decode and share no
// state with each other.
type Entity struct {
	schema *Schema
	values map[Symbol]any
}

// Schema returns the schema this entity was decoded with.
func (e Entity) Schema() *Schema { return e.schema }

// Get returns the value of the named field, or nil when the field is unset
// or not declared.
func (e Entity) Get(name Symbol) any { return e.values[name] }

// With returns a copy of the entity with the named field replaced. Fields not
// declared by the schema are ignored.
func (e Entity) With(name Symbol, v any) Entity {
	if e.schema == nil {
		return e
	}
	if _, ok := e.schema.index[name]; !ok {
		return e
	}
	values := make(map[Symbol]any, len(e.values))
	for k, val := range e.values {
		values[k] = val
	}
	values[name] = v
	return Entity{schema: e.schema, values: values}
}

// Plain renders the entity as ordinary Go maps keyed by strings, recursively.
// Useful for handing decoded data to JSON encoders or struct binders.
func (e Entity) Plain() map[string]any {
	out := make(map[string]any, len(e.values))
	for _, f := range e.schema.fields {
		out[string(f.Name)] = plainValue(e.values[f.Name])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case Entity:
		return t.Plain()
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = plainValue(it)
		}
		return out
	case map[Symbol]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[string(k)] = plainValue(val)
		}
		return out
	default:
		return v
	}
}

// Decode casts a key-normalized raw mapping into an Entity. Decode is
// schema-driven, not payload-driven: every declared field is cast (missing
// keys cast as nil), and payload keys the schema does not declare are
// silently dropped. Structural mismatches inside a field abort the whole
// decode with Issues anchored at that field's path.
func (s *Schema) Decode(m map[Symbol]any) (Entity, error) {
	values := make(map[Symbol]any, len(s.fields))
	for _, f := range s.fields {
		cv, err := Cast(m[f.Name], f.Type)
		if err != nil {
			return Entity{}, prefixIssues(err, string(f.Name))
		}
		values[f.Name] = cv
	}
	return Entity{schema: s, values: values}, nil
}

// Encode renders an entity back to wire form. Encoding is sparse: fields
// holding nil are omitted entirely, so optional fields that never arrived do
// not reappear on the wire as explicit nulls. Nested entities and
// convertibles are encoded recursively.
func (s *Schema) Encode(e Entity) map[Symbol]any {
	out := make(map[Symbol]any, len(s.fields))
	for _, f := range s.fields {
		v := e.values[f.Name]
		if v == nil {
			continue
		}
		out[f.Name] = encodeValue(v, f.Type)
	}
	return out
}

// DecodeList decodes a raw list of mappings into entities, preserving order.
// A nil input yields an empty slice. Non-list input is a shape mismatch.
func (s *Schema) DecodeList(v any) ([]Entity, error) {
	if v == nil {
		return []Entity{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected list of " + s.name}}
	}
	out := make([]Entity, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[Symbol]any)
		if !ok {
			return nil, Issues{{Path: "/" + itoa(i), Code: CodeInvalidType, Message: "expected mapping"}}
		}
		e, err := s.Decode(m)
		if err != nil {
			return nil, prefixIssues(err, itoa(i))
		}
		out = append(out, e)
	}
	return out, nil
}

// DecodeMap decodes a raw mapping whose values are entity mappings, keeping
// the keys. A nil input yields an empty map. Non-mapping input is a shape
// mismatch.
func (s *Schema) DecodeMap(v any) (map[Symbol]Entity, error) {
	if v == nil {
		return map[Symbol]Entity{}, nil
	}
	raw, ok := v.(map[Symbol]any)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "expected mapping of " + s.name}}
	}
	out := make(map[Symbol]Entity, len(raw))
	for k, it := range raw {
		m, ok := it.(map[Symbol]any)
		if !ok {
			return nil, Issues{{Path: "/" + string(k), Code: CodeInvalidType, Message: "expected mapping"}}
		}
		e, err := s.Decode(m)
		if err != nil {
			return nil, prefixIssues(err, string(k))
		}
		out[k] = e
	}
	return out, nil
}

// IndexBy builds a keyed mapping over a decoded list so callers get O(1)
// lookup by a natural key instead of positional access. A nil or empty list
// yields an empty mapping. Entities whose key field is nil are skipped.
func IndexBy(list []Entity, key Symbol) map[any]Entity {
	out := make(map[any]Entity, len(list))
	for _, e := range list {
		k := e.Get(key)
		if k == nil {
			continue
		}
		out[k] = e
	}
	return out
}

func itoa(i int) string { return strconv.Itoa(i) }
