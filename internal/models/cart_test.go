package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64, qty int) CartItem {
	return CartItem{
		ProductID: id,
		Name:      "Produit " + id,
		Price:     price,
		Quantity:  qty,
		AddedAt:   time.Now(),
	}
}

func TestCart_AddItemComputesTotal(t *testing.T) {
	cart := NewCart("cart_test_1")

	cart.AddItem(item("power-1", 29.99, 1))
	assert.Len(t, cart.Items, 1)
	assert.InDelta(t, 29.99, cart.Total, 0.001)

	// Ajouter le même produit incrémente la quantité, pas de doublon
	cart.AddItem(item("power-1", 29.99, 1))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 59.98, cart.Total, 0.001)

	cart.AddItem(item("case-7", 9.50, 3))
	assert.Len(t, cart.Items, 2)
	assert.InDelta(t, 59.98+28.50, cart.Total, 0.001)
}

func TestCart_SnapshotPriceIsKept(t *testing.T) {
	cart := NewCart("cart_test_snapshot")
	cart.AddItem(item("power-1", 29.99, 1))

	// Le prix capturé à l'ajout fait foi, même si le catalogue change ensuite
	cart.AddItem(item("power-1", 39.99, 1))
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 29.99, cart.Items[0].Price, 0.001)
	assert.InDelta(t, 59.98, cart.Total, 0.001)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart("cart_test_2")
	cart.AddItem(item("power-1", 29.99, 2))
	cart.AddItem(item("case-7", 9.50, 1))

	ok := cart.SetQuantity("power-1", 5)
	assert.True(t, ok)
	assert.InDelta(t, 5*29.99+9.50, cart.Total, 0.001)

	// quantité 0 ou négative = suppression
	ok = cart.SetQuantity("power-1", 0)
	assert.True(t, ok)
	assert.Len(t, cart.Items, 1)
	assert.InDelta(t, 9.50, cart.Total, 0.001)

	cart.AddItem(item("power-1", 29.99, 1))
	ok = cart.SetQuantity("power-1", -3)
	assert.True(t, ok)
	assert.Len(t, cart.Items, 1)
	assert.InDelta(t, 9.50, cart.Total, 0.001)

	// produit absent
	ok = cart.SetQuantity("inconnu", 2)
	assert.False(t, ok)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart("cart_test_3")
	cart.AddItem(item("power-1", 29.99, 1))
	cart.AddItem(item("case-7", 9.50, 2))

	cart.RemoveItem("power-1")
	assert.Len(t, cart.Items, 1)
	assert.InDelta(t, 19.00, cart.Total, 0.001)

	// retirer un produit absent laisse le panier inchangé
	cart.RemoveItem("inconnu")
	assert.Len(t, cart.Items, 1)
	assert.InDelta(t, 19.00, cart.Total, 0.001)

	cart.RemoveItem("case-7")
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("cart_test_4")
	cart.AddItem(item("power-1", 29.99, 4))
	assert.False(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total)
	assert.Equal(t, "cart_test_4", cart.SessionID)
}

func TestCart_TotalInvariantAfterEverySequence(t *testing.T) {
	cart := NewCart("cart_test_5")

	check := func() {
		expected := 0.0
		for _, it := range cart.Items {
			expected += it.Price * float64(it.Quantity)
		}
		assert.InDelta(t, expected, cart.Total, 0.001)
	}

	cart.AddItem(item("a", 1.10, 1))
	check()
	cart.AddItem(item("b", 2.25, 3))
	check()
	cart.SetQuantity("a", 7)
	check()
	cart.RemoveItem("b")
	check()
	cart.SetQuantity("a", 0)
	check()
	assert.True(t, cart.IsEmpty())
}
