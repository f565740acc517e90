package models

import "time"

// CartItem garde un instantané du produit au moment de l'ajout :
// un changement de prix au catalogue ne modifie pas les paniers existants.
type CartItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Cart struct {
	SessionID       string           `json:"sessionId"`
	Items           []CartItem       `json:"items"`
	Total           float64          `json:"total"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewCart crée un panier vide pour une session.
func NewCart(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem ajoute un produit ou incrémente sa quantité s'il est déjà présent.
// Le total est recalculé, jamais accepté du client.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Recompute()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.Recompute()
}

// SetQuantity fixe la quantité d'un item ; quantity <= 0 le retire.
// Retourne false si le produit n'est pas dans le panier.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.Recompute()
		return true
	}
	return false
}

// RemoveItem retire un produit du panier. Retirer un produit absent est un no-op.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.Recompute()
}

// Clear vide les items et remet le total à zéro, la session est conservée.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Recompute()
}

// Recompute recalcule le total (somme des prix × quantités) et updatedAt.
func (c *Cart) Recompute() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
	c.UpdatedAt = time.Now()
}

// IsEmpty indique si le panier ne contient aucun item.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
