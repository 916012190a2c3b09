package proptypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/propcheck/pkg/proptypes"
)

const typePositive proptypes.Type = "positive"

func positive(_ *proptypes.Validator, value any, _ *proptypes.Descriptor, p proptypes.Path) proptypes.ValidationErrors {
	if n, ok := value.(int); ok && n > 0 {
		return nil
	}
	return proptypes.ValidationErrors{{
		Path:    p.String(),
		Message: "Expected property " + p.String() + " to be a positive integer",
	}}
}

func TestRegistry_Builtins(t *testing.T) {
	r := proptypes.NewRegistry()
	for _, tag := range []proptypes.Type{
		proptypes.TypeString, proptypes.TypeNumber, proptypes.TypeBool, proptypes.TypeFunction,
		proptypes.TypeObject, proptypes.TypeArray, proptypes.TypeArrayOf, proptypes.TypeShape,
		proptypes.TypeOneOf, proptypes.TypeOneOfType, proptypes.TypeInstanceOf, proptypes.TypeAny,
		proptypes.TypeCustom, proptypes.TypeDate, proptypes.TypeUUID, proptypes.TypeEmail, proptypes.TypeURL,
	} {
		assert.True(t, r.Has(tag), "missing built-in %s", tag)
	}
	assert.Len(t, r.Types(), 17)
	assert.False(t, r.Frozen())
}

func TestRegistry_Register(t *testing.T) {
	t.Run("custom type", func(t *testing.T) {
		r := proptypes.NewRegistry()
		require.NoError(t, r.Register(typePositive, positive))

		v := proptypes.New(proptypes.WithRegistry(r))
		def := proptypes.ArrayOf(proptypes.Primitive(typePositive))

		assert.Empty(t, v.Validate([]any{1, 2}, def, "ids"))
		assert.Equal(t, []string{
			"Expected property ids[1] to be a positive integer",
			"Expected property ids to be an array of type positive",
		}, v.Validate([]any{1, -2}, def, "ids").Messages())
	})

	t.Run("last write wins", func(t *testing.T) {
		r := proptypes.NewRegistry()
		require.NoError(t, r.Register(proptypes.TypeString, positive))

		v := proptypes.New(proptypes.WithRegistry(r))
		errs := v.Validate("text", proptypes.String, "bar")
		assert.Equal(t, []string{"Expected property bar to be a positive integer"}, errs.Messages())
		assert.Empty(t, v.Validate(5, proptypes.String, "bar"))
	})

	t.Run("does not affect other registries", func(t *testing.T) {
		r := proptypes.NewRegistry()
		require.NoError(t, r.Register(typePositive, positive))
		assert.False(t, proptypes.NewRegistry().Has(typePositive))
	})

	t.Run("rejects invalid registrations", func(t *testing.T) {
		r := proptypes.NewRegistry()
		err := r.Register("", positive)
		assert.ErrorIs(t, err, proptypes.ErrEmptyType)
		assert.True(t, proptypes.IsConfigurationError(err))

		err = r.Register(typePositive, nil)
		assert.ErrorIs(t, err, proptypes.ErrNilTypeFunc)
	})

	t.Run("must register panics", func(t *testing.T) {
		r := proptypes.NewRegistry()
		assert.Panics(t, func() { r.MustRegister("", positive) })
		assert.NotPanics(t, func() { r.MustRegister(typePositive, positive) })
	})
}

func TestRegistry_Freeze(t *testing.T) {
	r := proptypes.NewRegistry().Freeze()
	assert.True(t, r.Frozen())

	err := r.Register(typePositive, positive)
	assert.ErrorIs(t, err, proptypes.ErrRegistryFrozen)
	assert.False(t, r.Has(typePositive))

	clone := r.Clone()
	assert.False(t, clone.Frozen())
	require.NoError(t, clone.Register(typePositive, positive))
	assert.True(t, clone.Has(typePositive))
	assert.False(t, r.Has(typePositive))
}

func TestRegistry_DefaultValidatorIsFrozen(t *testing.T) {
	def := proptypes.Primitive(typePositive)
	errs := proptypes.Validate(1, def, "n")
	assert.Equal(t, []string{`Property n could not be validated: unknown type "positive"`}, errs.Messages())
}

func TestRegistry_TypeFuncRecursion(t *testing.T) {
	// A container type registered from outside the package recurses with Check.
	const typePair proptypes.Type = "pair"
	r := proptypes.NewRegistry()
	r.MustRegister(typePair, func(v *proptypes.Validator, value any, d *proptypes.Descriptor, p proptypes.Path) proptypes.ValidationErrors {
		pair, ok := value.([2]any)
		if !ok {
			return proptypes.ValidationErrors{{Path: p.String(), Message: "Expected property " + p.String() + " to be a pair"}}
		}
		var errs proptypes.ValidationErrors
		errs = append(errs, v.Check(pair[0], proptypes.String.IsRequired(), p.Key("first"))...)
		errs = append(errs, v.Check(pair[1], proptypes.Number.IsRequired(), p.Key("second"))...)
		return errs
	})

	v := proptypes.New(proptypes.WithRegistry(r))
	errs := v.Validate([2]any{1, nil}, proptypes.Primitive(typePair), "kv")
	assert.Equal(t, []string{
		"Expected property kv.first to be a string",
		"Missing required property kv.second",
	}, errs.Messages())
}
