package proptypes

import "maps"

// Schema is an ordered set of top-level property descriptors.
type Schema struct {
	props []Field
	index map[string]int
}

// NewSchema builds a schema from properties in declaration order.
// Panics with a *ConfigurationError on empty or duplicate names or nil
// descriptors.
func NewSchema(props ...Field) *Schema {
	s, err := BuildSchema(props...)
	if err != nil {
		panic(err)
	}
	return s
}

// BuildSchema is NewSchema returning the error instead of panicking.
// An empty schema is valid.
func BuildSchema(props ...Field) (*Schema, error) {
	s := &Schema{index: make(map[string]int, len(props))}
	for _, p := range props {
		switch {
		case p.Name == "":
			return nil, configErr("schema", ErrEmptyKey)
		case p.Descriptor == nil:
			return nil, configErr("schema", errorf(ErrNilDescriptor, "property %q", p.Name))
		}
		if _, dup := s.index[p.Name]; dup {
			return nil, configErr("schema", errorf(ErrDuplicateKey, "property %q", p.Name))
		}
		s.index[p.Name] = len(s.props)
		s.props = append(s.props, p)
	}
	return s, nil
}

// Props returns the properties in declaration order.
func (s *Schema) Props() []Field {
	out := make([]Field, len(s.props))
	copy(out, s.props)
	return out
}

// Prop looks up a property descriptor by name.
func (s *Schema) Prop(name string) (*Descriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.props[i].Descriptor, true
}

// Len returns the number of declared properties.
func (s *Schema) Len() int { return len(s.props) }

// Defaults returns the descriptor-level defaults of all properties that
// declare one.
func (s *Schema) Defaults() map[string]any {
	defaults := make(map[string]any)
	for _, p := range s.props {
		if v, ok := p.Descriptor.Default(); ok {
			defaults[p.Name] = v
		}
	}
	return defaults
}

// ApplyDefaults returns a copy of values with absent properties set to their
// descriptor-level defaults. Keys explicitly set to nil are Null and keep
// their value. values itself is not modified.
func (s *Schema) ApplyDefaults(values map[string]any) map[string]any {
	out := make(map[string]any, len(values)+len(s.props))
	maps.Copy(out, values)
	for _, p := range s.props {
		def, ok := p.Descriptor.Default()
		if !ok {
			continue
		}
		if isAbsent(propValue(out, p.Name)) {
			out[p.Name] = def
		}
	}
	return out
}
