package proptypes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/propcheck/pkg/logger"
	"github.com/dmitrymomot/propcheck/pkg/proptypes"
)

func TestValidator_LogsFaults(t *testing.T) {
	buf := &bytes.Buffer{}
	v := proptypes.New(proptypes.WithLogger(logger.New(logger.WithOutput(buf))))

	def := proptypes.Custom(func(any) error { panic("kaboom") })
	errs := v.Validate(1, def, "bar")
	require.Len(t, errs, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "validator fault", entry["msg"])
	assert.Equal(t, "proptypes", entry["component"])
	assert.Equal(t, "bar", entry["path"])
	assert.Equal(t, "custom", entry["type"])
	assert.Equal(t, "kaboom", entry["panic"])
}

func TestValidator_LogsPanicError(t *testing.T) {
	buf := &bytes.Buffer{}
	v := proptypes.New(proptypes.WithLogger(logger.New(logger.WithOutput(buf))))

	def := proptypes.Custom(func(any) error { panic(fmt.Errorf("broken check")) })
	errs := v.Validate(1, def, "bar")
	assert.Equal(t, []string{
		"Property bar could not be validated: validator for type custom failed: broken check",
	}, errs.Messages())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "broken check", entry["error"])
	assert.NotContains(t, entry, "panic")
}

func TestValidator_NilDescriptor(t *testing.T) {
	v := proptypes.New(proptypes.WithLogger(logger.New(logger.WithDiscard())))
	errs := v.Validate("x", nil, "bar")
	assert.Equal(t, []string{"Property bar could not be validated: descriptor is nil"}, errs.Messages())
}

func TestValidator_Defaults(t *testing.T) {
	v := proptypes.New()
	assert.Equal(t, proptypes.FirstFailure, v.Policy())
	assert.NotNil(t, v.Registry())
	assert.False(t, v.Registry().Frozen())

	shared := proptypes.NewRegistry()
	assert.Same(t, shared, proptypes.New(proptypes.WithRegistry(shared)).Registry())
	assert.NotNil(t, proptypes.New(proptypes.WithRegistry(nil)).Registry())
}

func TestValidator_ConcurrentUse(t *testing.T) {
	def := proptypes.ArrayOf(proptypes.Shape(
		proptypes.Key("id", proptypes.Number.IsRequired()),
		proptypes.Key("name", proptypes.String),
	)).IsRequired()
	v := proptypes.New(proptypes.WithRegistry(proptypes.NewRegistry().Freeze()))

	want := []string{
		"Expected property items[1].name to be a string",
		"Expected property items[1] to match given shape",
		"Expected property items to be an array of type shape",
	}

	var wg sync.WaitGroup
	results := make([][]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := []any{
				map[string]any{"id": i},
				map[string]any{"id": i, "name": i},
			}
			results[i] = v.Validate(value, def, "items").Messages()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, fmt.Sprintf("goroutine %d", i))
	}
}

func TestValidator_DeepNesting(t *testing.T) {
	d := proptypes.String.IsRequired()
	value := any(1)
	for range 50 {
		d = proptypes.ArrayOf(d)
		value = []any{value}
	}

	errs := proptypes.Validate(value, d, "deep")
	assert.Len(t, errs, 51)
	assert.Equal(t, "Expected property deep to be an array of type arrayOf", errs[50].Message)
}
