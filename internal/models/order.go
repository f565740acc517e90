package models

import "time"

// Order est une copie figée du panier au moment du paiement.
// Elle n'est jamais modifiée après création.
type Order struct {
	OrderID         string           `json:"orderId"`
	SessionID       string           `json:"sessionId"`
	Items           []CartItem       `json:"items"`
	Total           float64          `json:"total"`
	Status          string           `json:"status"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

const OrderStatusPaid = "paid"
