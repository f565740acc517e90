package order

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckWSOrigin(t *testing.T) {
	t.Setenv("SITE_URL", "https://tgaccessories.com")

	t.Run("origine du front acceptée", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/orders/ws", nil)
		req.Header.Set("Origin", "https://tgaccessories.com")

		assert.True(t, checkWSOrigin(req))
	})

	t.Run("origine étrangère refusée", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/orders/ws", nil)
		req.Header.Set("Origin", "https://evil.example")

		assert.False(t, checkWSOrigin(req))
	})

	t.Run("client sans header Origin accepté", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/orders/ws", nil)

		assert.True(t, checkWSOrigin(req))
	})
}
