package propschema

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/propcheck/pkg/proptypes"
)

// rawDescriptor holds the keys of a descriptor mapping.
type rawDescriptor struct {
	tag      string
	required bool
	of       *yaml.Node
	fields   *yaml.Node
	values   *yaml.Node
	types    *yaml.Node
	class    string
	check    string
	def      *yaml.Node
}

func (p *parser) descriptor(node *yaml.Node, path string) (*proptypes.Descriptor, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return p.build(rawDescriptor{tag: node.Value}, node, path)
	case yaml.MappingNode:
		raw, err := readMapping(node, path)
		if err != nil {
			return nil, err
		}
		return p.build(raw, node, path)
	case yaml.AliasNode:
		target := node.Alias
		if target == nil || p.expanding[target] {
			return nil, nodeErr(ErrInvalidDocument, path, node, "recursive alias *%s", node.Value)
		}
		p.expanding[target] = true
		defer delete(p.expanding, target)
		return p.descriptor(target, path)
	default:
		return nil, nodeErr(ErrInvalidDocument, path, node, "expected a type name or a descriptor mapping")
	}
}

func readMapping(node *yaml.Node, path string) (rawDescriptor, error) {
	var raw rawDescriptor
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "type":
			if val.Kind != yaml.ScalarNode {
				return raw, nodeErr(ErrInvalidDocument, path, val, "type must be a string")
			}
			raw.tag = val.Value
		case "required":
			if err := val.Decode(&raw.required); err != nil {
				return raw, nodeErr(ErrInvalidDocument, path, val, "required must be a boolean")
			}
		case "of":
			raw.of = val
		case "fields":
			raw.fields = val
		case "values":
			raw.values = val
		case "types":
			raw.types = val
		case "class":
			raw.class = val.Value
		case "check":
			raw.check = val.Value
		case "default":
			raw.def = val
		default:
			return raw, nodeErr(ErrInvalidDocument, path, key, "unknown key %q", key.Value)
		}
	}
	return raw, nil
}

// build turns raw into a descriptor. A trailing "!" on the tag marks it required.
func (p *parser) build(raw rawDescriptor, node *yaml.Node, path string) (*proptypes.Descriptor, error) {
	tag, bang := strings.CutSuffix(strings.TrimSpace(raw.tag), "!")
	if tag == "" {
		return nil, nodeErr(ErrInvalidDocument, path, node, "missing type")
	}

	d, err := p.payload(proptypes.Type(tag), raw, node, path)
	if err != nil {
		return nil, err
	}

	if raw.def != nil {
		var v any
		if err := raw.def.Decode(&v); err != nil {
			return nil, nodeErr(ErrInvalidDocument, path, raw.def, "cannot decode default: %v", err)
		}
		d = d.WithDefault(v)
	}
	if raw.required || bang {
		d = d.IsRequired()
	}
	return d, nil
}

func (p *parser) payload(tag proptypes.Type, raw rawDescriptor, node *yaml.Node, path string) (*proptypes.Descriptor, error) {
	if !p.registry.Has(tag) {
		return nil, nodeErr(ErrUnknownType, path, node, "%q", tag)
	}

	switch tag {
	case proptypes.TypeArrayOf:
		if raw.of == nil {
			return nil, nodeErr(ErrInvalidDocument, path, node, "arrayOf requires an of key")
		}
		elem, err := p.descriptor(raw.of, path+"[]")
		if err != nil {
			return nil, err
		}
		return wrap(proptypes.NewArrayOf(elem))

	case proptypes.TypeShape:
		if raw.fields == nil || raw.fields.Kind != yaml.MappingNode {
			return nil, nodeErr(ErrInvalidDocument, path, node, "shape requires a fields mapping")
		}
		fields := make([]proptypes.Field, 0, len(raw.fields.Content)/2)
		for i := 0; i+1 < len(raw.fields.Content); i += 2 {
			name := raw.fields.Content[i].Value
			fd, err := p.descriptor(raw.fields.Content[i+1], joinPath(path, name))
			if err != nil {
				return nil, err
			}
			fields = append(fields, proptypes.Key(name, fd))
		}
		return wrap(proptypes.NewShape(fields...))

	case proptypes.TypeOneOf:
		if raw.values == nil || raw.values.Kind != yaml.SequenceNode {
			return nil, nodeErr(ErrInvalidDocument, path, node, "oneOf requires a values list")
		}
		var values []any
		if err := raw.values.Decode(&values); err != nil {
			return nil, nodeErr(ErrInvalidDocument, path, raw.values, "cannot decode values: %v", err)
		}
		return wrap(proptypes.NewOneOf(values...))

	case proptypes.TypeOneOfType:
		if raw.types == nil || raw.types.Kind != yaml.SequenceNode {
			return nil, nodeErr(ErrInvalidDocument, path, node, "oneOfType requires a types list")
		}
		types := make([]*proptypes.Descriptor, 0, len(raw.types.Content))
		for _, alt := range raw.types.Content {
			td, err := p.descriptor(alt, path)
			if err != nil {
				return nil, err
			}
			types = append(types, td)
		}
		return wrap(proptypes.NewOneOfType(types...))

	case proptypes.TypeInstanceOf:
		class, ok := p.classes[raw.class]
		if !ok {
			return nil, nodeErr(ErrUnknownClass, path, node, "%q", raw.class)
		}
		return wrap(proptypes.NewInstanceOf(class))

	case proptypes.TypeCustom:
		check, ok := p.checks[raw.check]
		if !ok {
			return nil, nodeErr(ErrUnknownCheck, path, node, "%q", raw.check)
		}
		return wrap(proptypes.NewCustom(check))
	}

	return proptypes.Primitive(tag), nil
}

// wrap tags builder failures as document errors while keeping the
// *proptypes.ConfigurationError reachable through errors.As.
func wrap(d *proptypes.Descriptor, err error) (*proptypes.Descriptor, error) {
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return d, nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
