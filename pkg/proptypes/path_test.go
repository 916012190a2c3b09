package proptypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/propcheck/pkg/proptypes"
)

func TestPath(t *testing.T) {
	root := proptypes.Root("bar")

	assert.Equal(t, "bar", root.String())
	assert.Equal(t, "bar[0]", root.Index(0).String())
	assert.Equal(t, "bar.fizz", root.Key("fizz").String())
	assert.Equal(t, "bar[2].fizz[10].bang", root.Index(2).Key("fizz").Index(10).Key("bang").String())

	t.Run("steps do not mutate the receiver", func(t *testing.T) {
		_ = root.Index(1).Key("x")
		assert.Equal(t, "bar", root.String())
	})

	t.Run("custom separator", func(t *testing.T) {
		p := proptypes.Root("bar").WithSeparator("->")
		assert.Equal(t, "bar->fizz[0]->bang", p.Key("fizz").Index(0).Key("bang").String())
	})

	t.Run("empty root", func(t *testing.T) {
		assert.Equal(t, "fizz", proptypes.Root("").Key("fizz").String())
		assert.Equal(t, "fizz", proptypes.Path{}.Key("fizz").String())
	})
}
