package proptypes

import (
	"reflect"
	"slices"
)

// Optional descriptors for the built-in scalar types.
// Use IsRequired to obtain the required variant.
var (
	String = Primitive(TypeString)
	Number = Primitive(TypeNumber)
	Bool   = Primitive(TypeBool)
	Func   = Primitive(TypeFunction)
	Object = Primitive(TypeObject)
	Array  = Primitive(TypeArray)
	Any    = Primitive(TypeAny)
	Date   = Primitive(TypeDate)
	UUID   = Primitive(TypeUUID)
	Email  = Primitive(TypeEmail)
	URL    = Primitive(TypeURL)
)

// Primitive builds a payload-free descriptor for tag.
// It is also the way to reference types added with Registry.Register.
// Panics with a *ConfigurationError if tag is empty.
func Primitive(tag Type) *Descriptor {
	if tag == "" {
		panic(configErr("primitive", ErrEmptyType))
	}
	return (&Descriptor{tag: tag}).seal()
}

// ArrayOf describes a sequence whose every element satisfies elem.
// Panics with a *ConfigurationError if elem is nil.
func ArrayOf(elem *Descriptor) *Descriptor {
	return must(NewArrayOf(elem))
}

// NewArrayOf is ArrayOf returning the error instead of panicking.
func NewArrayOf(elem *Descriptor) (*Descriptor, error) {
	if elem == nil {
		return nil, configErr("arrayOf", ErrNilDescriptor)
	}
	return (&Descriptor{tag: TypeArrayOf, elem: elem}).seal(), nil
}

// Shape describes an object with a closed set of keys, validated in the
// order they are given. Panics with a *ConfigurationError on an empty key set,
// empty or duplicate key names, or nil descriptors.
func Shape(fields ...Field) *Descriptor {
	return must(NewShape(fields...))
}

// ShapeOf is Shape for a map literal. Keys are validated in lexical order.
func ShapeOf(fields map[string]*Descriptor) *Descriptor {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	list := make([]Field, 0, len(keys))
	for _, k := range keys {
		list = append(list, Key(k, fields[k]))
	}
	return Shape(list...)
}

// NewShape is Shape returning the error instead of panicking.
func NewShape(fields ...Field) (*Descriptor, error) {
	if len(fields) == 0 {
		return nil, configErr("shape", ErrEmptyShape)
	}

	index := make(map[string]int, len(fields))
	list := make([]Field, 0, len(fields))
	for _, f := range fields {
		switch {
		case f.Name == "":
			return nil, configErr("shape", ErrEmptyKey)
		case f.Descriptor == nil:
			return nil, configErr("shape", errorf(ErrNilDescriptor, "key %q", f.Name))
		}
		if _, dup := index[f.Name]; dup {
			return nil, configErr("shape", errorf(ErrDuplicateKey, "key %q", f.Name))
		}
		index[f.Name] = len(list)
		list = append(list, f)
	}

	return (&Descriptor{tag: TypeShape, fields: list, index: index}).seal(), nil
}

// OneOf describes a value equal to one of the given literals.
// Panics with a *ConfigurationError if no values are given.
func OneOf(values ...any) *Descriptor {
	return must(NewOneOf(values...))
}

// NewOneOf is OneOf returning the error instead of panicking.
func NewOneOf(values ...any) (*Descriptor, error) {
	if len(values) == 0 {
		return nil, configErr("oneOf", ErrEmptyValues)
	}
	return (&Descriptor{tag: TypeOneOf, values: slices.Clone(values)}).seal(), nil
}

// OneOfType describes a value satisfying at least one of the descriptors.
// Panics with a *ConfigurationError if the list is empty or holds nil.
func OneOfType(types ...*Descriptor) *Descriptor {
	return must(NewOneOfType(types...))
}

// NewOneOfType is OneOfType returning the error instead of panicking.
func NewOneOfType(types ...*Descriptor) (*Descriptor, error) {
	if len(types) == 0 {
		return nil, configErr("oneOfType", ErrEmptyTypes)
	}
	for i, t := range types {
		if t == nil {
			return nil, configErr("oneOfType", errorf(ErrNilDescriptor, "alternative %d", i))
		}
	}
	return (&Descriptor{tag: TypeOneOfType, types: slices.Clone(types)}).seal(), nil
}

// InstanceOf describes a value of dynamic type T. When T is an interface
// type, any value implementing it matches.
func InstanceOf[T any]() *Descriptor {
	return InstanceOfType(reflect.TypeFor[T]())
}

// InstanceOfType is InstanceOf for a reflect.Type known at runtime.
// Panics with a *ConfigurationError if t is nil.
func InstanceOfType(t reflect.Type) *Descriptor {
	return must(NewInstanceOf(t))
}

// NewInstanceOf is InstanceOfType returning the error instead of panicking.
func NewInstanceOf(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, configErr("instanceOf", ErrNilClass)
	}
	return (&Descriptor{tag: TypeInstanceOf, class: t}).seal(), nil
}

// Custom describes a value accepted by fn.
// Panics with a *ConfigurationError if fn is nil.
func Custom(fn CheckFunc) *Descriptor {
	return must(NewCustom(fn))
}

// NewCustom is Custom returning the error instead of panicking.
func NewCustom(fn CheckFunc) (*Descriptor, error) {
	if fn == nil {
		return nil, configErr("custom", ErrNilCheck)
	}
	return (&Descriptor{tag: TypeCustom, check: fn}).seal(), nil
}

func must(d *Descriptor, err error) *Descriptor {
	if err != nil {
		panic(err)
	}
	return d
}
