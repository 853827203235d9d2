package wirecast

// Converter is a wire/domain conversion for a single field value, e.g. an
// RFC3339 timestamp or a snowflake ID. Cast moves wire -> domain and may
// fail; Encode moves domain -> wire and may fail. How those failures are
// treated is decided by the caster, not the converter (see Cast).
type Converter interface {
	Cast(v any) (any, error)
	Encode(v any) (any, error)
}

// DescriptorKind enumerates the closed set of field type shapes.
type DescriptorKind int

const (
	KindPrimitive   DescriptorKind = iota // Scalar passed through unchanged.
	KindList                              // Ordered list of a nested descriptor.
	KindEntity                            // Nested schema-typed entity.
	KindConvertible                       // Custom wire/domain converter.
)

// Descriptor describes how a single field's raw value is cast. It is a tagged
// union over a small fixed set of variants so that dispatch is an exhaustive
// switch rather than runtime capability probing.
type Descriptor struct {
	kind   DescriptorKind
	elem   *Descriptor
	schema *Schema
	conv   Converter
}

// Primitive returns a descriptor that passes scalars through unchanged.
// No coercion between scalar kinds is performed.
func Primitive() Descriptor { return Descriptor{kind: KindPrimitive} }

// ListOf returns a descriptor for an ordered list whose elements are cast
// with elem.
func ListOf(elem Descriptor) Descriptor {
	e := elem
	return Descriptor{kind: KindList, elem: &e}
}

// EntityOf returns a descriptor for a nested entity decoded with s.
func EntityOf(s *Schema) Descriptor { return Descriptor{kind: KindEntity, schema: s} }

// ConvertibleOf returns a descriptor whose values go through the given
// converter. Converter cast failures degrade the field to its raw wire value
// instead of failing the decode; see Cast.
func ConvertibleOf(c Converter) Descriptor { return Descriptor{kind: KindConvertible, conv: c} }

// Kind reports which variant this descriptor is.
func (d Descriptor) Kind() DescriptorKind { return d.kind }

// Elem returns the element descriptor of a KindList descriptor.
func (d Descriptor) Elem() Descriptor {
	if d.elem == nil {
		return Descriptor{}
	}
	return *d.elem
}

// EntitySchema returns the schema of a KindEntity descriptor, or nil.
func (d Descriptor) EntitySchema() *Schema { return d.schema }

// Conv returns the converter of a KindConvertible descriptor, or nil.
func (d Descriptor) Conv() Converter { return d.conv }
