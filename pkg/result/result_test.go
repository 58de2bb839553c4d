package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := Ok(42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Value())
	assert.NoError(t, r.Err())
}

func TestErr(t *testing.T) {
	cause := errors.New("boom")
	r := Err[int](cause)

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.Zero(t, r.Value())
	assert.Same(t, cause, r.Err())
}

func TestErrNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		Err[int](nil)
	})
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, "hello", Ok("hello").ValueOr("fallback"))
	assert.Equal(t, "fallback", Err[string](errors.New("boom")).ValueOr("fallback"))
}

func TestGet(t *testing.T) {
	v, err := Ok("hello").Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	cause := errors.New("boom")
	v, err = Err[string](cause).Get()
	assert.Same(t, cause, err)
	assert.Empty(t, v)
}

func TestZeroValueIsOk(t *testing.T) {
	var r Result[int]
	assert.True(t, r.IsOk())
	assert.Zero(t, r.Value())
}
