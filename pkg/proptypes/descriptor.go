package proptypes

import (
	"fmt"
	"reflect"
	"strings"
)

// Type is the tag that selects the validator for a descriptor.
type Type string

// Built-in type tags.
const (
	TypeString     Type = "string"
	TypeNumber     Type = "number"
	TypeBool       Type = "boolean"
	TypeFunction   Type = "function"
	TypeObject     Type = "object"
	TypeArray      Type = "array"
	TypeArrayOf    Type = "arrayOf"
	TypeShape      Type = "shape"
	TypeOneOf      Type = "oneOf"
	TypeOneOfType  Type = "oneOfType"
	TypeInstanceOf Type = "instanceOf"
	TypeAny        Type = "any"
	TypeCustom     Type = "custom"
	TypeDate       Type = "date"
	TypeUUID       Type = "uuid"
	TypeEmail      Type = "email"
	TypeURL        Type = "url"
)

// CheckFunc is a user supplied check used by custom descriptors.
// A non-nil error is reported as a violation.
type CheckFunc func(value any) error

// Field is one named entry of a shape or schema.
type Field struct {
	Name       string
	Descriptor *Descriptor
}

// Key pairs a shape key with its descriptor.
func Key(name string, d *Descriptor) Field {
	return Field{Name: name, Descriptor: d}
}

// Descriptor describes the expected type of a value.
// Descriptors are immutable once built and safe for concurrent use.
type Descriptor struct {
	tag      Type
	required bool

	elem   *Descriptor
	fields []Field
	index  map[string]int
	values []any
	types  []*Descriptor
	class  reflect.Type
	check  CheckFunc

	def        any
	hasDefault bool

	// requiredVariant is the same descriptor with required set.
	// It points to the receiver itself when required is already true.
	requiredVariant *Descriptor
}

// seal links d with its required twin. Must be called once by every builder.
func (d *Descriptor) seal() *Descriptor {
	req := *d
	req.required = true
	req.requiredVariant = &req
	d.requiredVariant = &req
	return d
}

// Type returns the tag used for validator dispatch.
func (d *Descriptor) Type() Type { return d.tag }

// Required reports whether an absent value is a violation.
func (d *Descriptor) Required() bool { return d.required }

// IsRequired returns the required variant of d.
// The same instance is returned on every call.
func (d *Descriptor) IsRequired() *Descriptor { return d.requiredVariant }

// Elem returns the element descriptor of an arrayOf descriptor.
func (d *Descriptor) Elem() *Descriptor { return d.elem }

// Fields returns shape keys in declaration order.
func (d *Descriptor) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Field looks up a shape key.
func (d *Descriptor) Field(name string) (*Descriptor, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.fields[i].Descriptor, true
}

// Values returns the permitted literals of a oneOf descriptor.
func (d *Descriptor) Values() []any {
	out := make([]any, len(d.values))
	copy(out, d.values)
	return out
}

// Types returns the alternatives of a oneOfType descriptor.
func (d *Descriptor) Types() []*Descriptor {
	out := make([]*Descriptor, len(d.types))
	copy(out, d.types)
	return out
}

// Class returns the expected type of an instanceOf descriptor.
func (d *Descriptor) Class() reflect.Type { return d.class }

// Check returns the function of a custom descriptor.
func (d *Descriptor) Check() CheckFunc { return d.check }

// Default returns the descriptor-level default value, if any.
func (d *Descriptor) Default() (any, bool) { return d.def, d.hasDefault }

// WithDefault returns a copy of d carrying v as its default value.
func (d *Descriptor) WithDefault(v any) *Descriptor {
	cp := *d
	cp.def = v
	cp.hasDefault = true
	required := cp.required
	cp.required = false
	opt := cp.seal()
	if required {
		return opt.requiredVariant
	}
	return opt
}

// String renders the descriptor in builder notation, e.g. arrayOf(string).isRequired.
func (d *Descriptor) String() string {
	var b strings.Builder
	switch d.tag {
	case TypeArrayOf:
		fmt.Fprintf(&b, "arrayOf(%s)", d.elem)
	case TypeShape:
		b.WriteString("shape({")
		for i, f := range d.fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", f.Name, f.Descriptor)
		}
		b.WriteString("})")
	case TypeOneOf:
		fmt.Fprintf(&b, "oneOf(%s)", joinValues(d.values))
	case TypeOneOfType:
		fmt.Fprintf(&b, "oneOfType(%s)", joinTypes(d.types))
	case TypeInstanceOf:
		fmt.Fprintf(&b, "instanceOf(%s)", d.class)
	default:
		b.WriteString(string(d.tag))
	}
	if d.required {
		b.WriteString(".isRequired")
	}
	return b.String()
}
