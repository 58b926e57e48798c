package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNewSessionID(t *testing.T) {
	// When: two ids are generated
	first, second := GenerateNewSessionID(), GenerateNewSessionID()

	// Then: both parse and they differ
	assert.True(t, IsSessionID(first))
	assert.True(t, IsSessionID(second))
	assert.NotEqual(t, first, second)
}

func TestIsSessionID(t *testing.T) {
	assert.False(t, IsSessionID(""))
	assert.False(t, IsSessionID("not-a-session"))
	assert.True(t, IsSessionID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}
