package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTern(t *testing.T) {
	assert.Equal(t, "a", Tern(true, "a", "b"))
	assert.Equal(t, 2, Tern(false, 1, 2))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, float32(5), Clamp(float32(9.5), 0.1, 5))
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })
	assert.PanicsWithError(t, "assertion failed: bad value 7", func() { Assert(false, "bad value %d", 7) })
	assert.PanicsWithError(t, "assertion failed", func() { Assert(false) })
}
