package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID(t *testing.T) {
	id := newSessionID()
	assert.Regexp(t, `^cart_\d+_[a-z0-9]{9}$`, id)

	other := newSessionID()
	assert.NotEqual(t, id, other)
}
