package payement

import (
	"testing"

	"tg_accessories_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(2999), toCents(29.99))
	assert.Equal(t, int64(1000), toCents(10))
	assert.Equal(t, int64(950), toCents(9.50))
	// arrondi au centime le plus proche, pas de troncature
	assert.Equal(t, int64(1), toCents(0.005))
	assert.Equal(t, int64(33), toCents(0.333))
}

func TestBuildLineItems(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "power-1", Name: "Chargeur rapide", Price: 29.99, Quantity: 2, Image: "https://img/p1.jpg"},
		{ProductID: "case-7", Name: "Coque", Price: 9.50, Quantity: 1},
	}

	lineItems := buildLineItems(items)
	require.Len(t, lineItems, 2)

	assert.Equal(t, int64(2999), *lineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *lineItems[0].Quantity)
	assert.Equal(t, "Chargeur rapide", *lineItems[0].PriceData.ProductData.Name)
	require.Len(t, lineItems[0].PriceData.ProductData.Images, 1)

	// pas d'image : pas de tableau Images vide envoyé à Stripe
	assert.Nil(t, lineItems[1].PriceData.ProductData.Images)
	assert.Equal(t, int64(950), *lineItems[1].PriceData.UnitAmount)
}
