package proptypes_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/propcheck/pkg/proptypes"
)

func TestIsRequired(t *testing.T) {
	t.Run("returns cached required variant", func(t *testing.T) {
		d := proptypes.ArrayOf(proptypes.String)
		req := d.IsRequired()

		assert.False(t, d.Required())
		assert.True(t, req.Required())
		assert.Same(t, req, d.IsRequired())
		assert.Equal(t, proptypes.TypeArrayOf, req.Type())
		assert.Same(t, d.Elem(), req.Elem())
	})

	t.Run("idempotent on required descriptors", func(t *testing.T) {
		req := proptypes.String.IsRequired()
		assert.Same(t, req, req.IsRequired())
		assert.Same(t, req, req.IsRequired().IsRequired())
	})

	t.Run("twice behaves like once", func(t *testing.T) {
		once := proptypes.Number.IsRequired()
		twice := proptypes.Number.IsRequired().IsRequired()
		for _, value := range []any{nil, 1, "x"} {
			assert.Equal(t,
				proptypes.Validate(value, once, "bar"),
				proptypes.Validate(value, twice, "bar"),
			)
		}
	})

	t.Run("does not mutate the optional descriptor", func(t *testing.T) {
		d := proptypes.Primitive(proptypes.TypeString)
		_ = d.IsRequired()
		assert.False(t, d.Required())
		assert.Empty(t, proptypes.Validate(nil, d, "bar"))
	})
}

func TestDescriptorAccessors(t *testing.T) {
	shape := proptypes.Shape(
		proptypes.Key("a", proptypes.String),
		proptypes.Key("b", proptypes.Number),
	)
	fields := shape.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, "b", fields[1].Name)

	b, ok := shape.Field("b")
	require.True(t, ok)
	assert.Same(t, proptypes.Number, b)
	_, ok = shape.Field("c")
	assert.False(t, ok)

	fields[0].Name = "mutated"
	assert.Equal(t, "a", shape.Fields()[0].Name, "Fields returns a copy")

	oneOf := proptypes.OneOf("x", "y")
	assert.Equal(t, []any{"x", "y"}, oneOf.Values())

	alt := proptypes.OneOfType(proptypes.String, proptypes.Number)
	assert.Equal(t, []*proptypes.Descriptor{proptypes.String, proptypes.Number}, alt.Types())

	inst := proptypes.InstanceOf[time.Time]()
	assert.Equal(t, reflect.TypeFor[time.Time](), inst.Class())

	custom := proptypes.Custom(func(any) error { return nil })
	assert.NotNil(t, custom.Check())
}

func TestDescriptorString(t *testing.T) {
	d := proptypes.ArrayOf(proptypes.Shape(
		proptypes.Key("fizz", proptypes.String.IsRequired()),
		proptypes.Key("bang", proptypes.OneOf(1, 2)),
	)).IsRequired()

	assert.Equal(t, "arrayOf(shape({fizz: string.isRequired, bang: oneOf(1, 2)})).isRequired", d.String())
	assert.Equal(t, "oneOfType(string, number)", proptypes.OneOfType(proptypes.String, proptypes.Number).String())
	assert.Equal(t, "instanceOf(time.Duration)", proptypes.InstanceOf[time.Duration]().String())
}

func TestWithDefault(t *testing.T) {
	d := proptypes.String.WithDefault("guest")

	v, ok := d.Default()
	assert.True(t, ok)
	assert.Equal(t, "guest", v)
	assert.False(t, d.Required())

	req := d.IsRequired()
	v, ok = req.Default()
	assert.True(t, ok)
	assert.Equal(t, "guest", v)
	assert.Same(t, req, d.IsRequired())

	_, ok = proptypes.String.Default()
	assert.False(t, ok, "original descriptor keeps no default")

	fromRequired := proptypes.Number.IsRequired().WithDefault(1)
	assert.True(t, fromRequired.Required())
	assert.Same(t, fromRequired, fromRequired.IsRequired())
}

func TestBuilders_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*proptypes.Descriptor, error)
		want  error
	}{
		{"arrayOf nil", func() (*proptypes.Descriptor, error) { return proptypes.NewArrayOf(nil) }, proptypes.ErrNilDescriptor},
		{"empty shape", func() (*proptypes.Descriptor, error) { return proptypes.NewShape() }, proptypes.ErrEmptyShape},
		{"empty key", func() (*proptypes.Descriptor, error) {
			return proptypes.NewShape(proptypes.Key("", proptypes.String))
		}, proptypes.ErrEmptyKey},
		{"nil field", func() (*proptypes.Descriptor, error) {
			return proptypes.NewShape(proptypes.Key("a", nil))
		}, proptypes.ErrNilDescriptor},
		{"duplicate key", func() (*proptypes.Descriptor, error) {
			return proptypes.NewShape(proptypes.Key("a", proptypes.String), proptypes.Key("a", proptypes.Number))
		}, proptypes.ErrDuplicateKey},
		{"empty oneOf", func() (*proptypes.Descriptor, error) { return proptypes.NewOneOf() }, proptypes.ErrEmptyValues},
		{"empty oneOfType", func() (*proptypes.Descriptor, error) { return proptypes.NewOneOfType() }, proptypes.ErrEmptyTypes},
		{"nil oneOfType member", func() (*proptypes.Descriptor, error) {
			return proptypes.NewOneOfType(proptypes.String, nil)
		}, proptypes.ErrNilDescriptor},
		{"nil class", func() (*proptypes.Descriptor, error) { return proptypes.NewInstanceOf(nil) }, proptypes.ErrNilClass},
		{"nil check", func() (*proptypes.Descriptor, error) { return proptypes.NewCustom(nil) }, proptypes.ErrNilCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, proptypes.IsConfigurationError(err))

			var cfgErr *proptypes.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.NotEmpty(t, cfgErr.Op)
		})
	}
}

func TestBuilders_Panic(t *testing.T) {
	assertConfigPanic := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, proptypes.IsConfigurationError(err))
		}()
		fn()
	}

	assertConfigPanic(t, func() { proptypes.Shape() })
	assertConfigPanic(t, func() { proptypes.ArrayOf(nil) })
	assertConfigPanic(t, func() { proptypes.OneOf() })
	assertConfigPanic(t, func() { proptypes.OneOfType() })
	assertConfigPanic(t, func() { proptypes.InstanceOfType(nil) })
	assertConfigPanic(t, func() { proptypes.Custom(nil) })
	assertConfigPanic(t, func() { proptypes.Primitive("") })
}

func TestConfigurationError_Message(t *testing.T) {
	_, err := proptypes.NewShape(proptypes.Key("a", proptypes.String), proptypes.Key("a", proptypes.String))
	assert.EqualError(t, err, `proptypes: shape: shape key is declared twice: key "a"`)
}
