package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, VerifyPassword("Secret123", hash))
	assert.False(t, VerifyPassword("mauvais", hash))
	assert.False(t, VerifyPassword("Secret123", "pas-un-hash"))
}
