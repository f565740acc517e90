package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID(t *testing.T) {
	re := regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{5}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, re, id)
		seen[id] = true
	}
	// l'aléa de 5 caractères rend une collision sur 50 tirages improbable
	assert.Greater(t, len(seen), 45)
}

func TestRandomToken(t *testing.T) {
	token := RandomToken(9)
	assert.Len(t, token, 9)
	assert.Regexp(t, `^[A-Z0-9]+$`, token)
}
