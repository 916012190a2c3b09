package propschema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/propcheck/pkg/proptypes"
)

// Option configures a parse call.
type Option func(*parser)

// WithRegistry sets the registry used to accept type tags. Use the registry
// of the validator that will check values so custom tags are recognised.
func WithRegistry(r *proptypes.Registry) Option {
	return func(p *parser) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithClass makes name usable as the class of an instanceOf descriptor.
func WithClass(name string, t reflect.Type) Option {
	return func(p *parser) {
		if name != "" && t != nil {
			p.classes[name] = t
		}
	}
}

// WithCheck makes name usable as the check of a custom descriptor.
func WithCheck(name string, fn proptypes.CheckFunc) Option {
	return func(p *parser) {
		if name != "" && fn != nil {
			p.checks[name] = fn
		}
	}
}

type parser struct {
	registry *proptypes.Registry
	classes  map[string]reflect.Type
	checks   map[string]proptypes.CheckFunc

	// anchors of the aliases being expanded on the current path
	expanding map[*yaml.Node]bool
}

func newParser(opts []Option) *parser {
	p := &parser{
		classes:   make(map[string]reflect.Type),
		checks:    make(map[string]proptypes.CheckFunc),
		expanding: make(map[*yaml.Node]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = proptypes.NewRegistry()
	}
	return p
}

// Parse reads a schema document. JSON documents are accepted as well since
// they are valid YAML.
//
//	properties:
//	  name: string!
//	  tags:
//	    type: arrayOf
//	    of: string
func Parse(ctx context.Context, content []byte, opts ...Option) (*proptypes.Schema, error) {
	root, err := decode(ctx, content)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, nodeErr(ErrInvalidDocument, "", root, "expected a mapping with a properties key")
	}

	props := valueOf(root, "properties")
	if props == nil {
		return nil, nodeErr(ErrInvalidDocument, "", root, "missing properties key")
	}
	if props.Kind != yaml.MappingNode {
		return nil, nodeErr(ErrInvalidDocument, "properties", props, "expected a mapping")
	}

	p := newParser(opts)
	fields := make([]proptypes.Field, 0, len(props.Content)/2)
	for i := 0; i+1 < len(props.Content); i += 2 {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}
		name := props.Content[i].Value
		d, err := p.descriptor(props.Content[i+1], name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, proptypes.Key(name, d))
	}

	schema, err := proptypes.BuildSchema(fields...)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return schema, nil
}

// ParseDescriptor reads a document holding a single descriptor, either a
// tag such as "string!" or a descriptor mapping.
func ParseDescriptor(ctx context.Context, content []byte, opts ...Option) (*proptypes.Descriptor, error) {
	root, err := decode(ctx, content)
	if err != nil {
		return nil, err
	}
	return newParser(opts).descriptor(root, "")
}

// ParseFile reads and parses a .yaml, .yml or .json schema file from fsys.
func ParseFile(ctx context.Context, fsys fs.FS, name string, opts ...Option) (*proptypes.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	if !SupportsFileExtension(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	schema, err := Parse(ctx, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return schema, nil
}

// SupportsFileExtension reports whether name has a yaml, yml or json extension.
func SupportsFileExtension(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return false
	}
	switch strings.ToLower(name[idx+1:]) {
	case "yaml", "yml", "json":
		return true
	}
	return false
}

func decode(ctx context.Context, content []byte) (*yaml.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	return doc.Content[0], nil
}

// valueOf returns the value node of key in a mapping node.
func valueOf(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
