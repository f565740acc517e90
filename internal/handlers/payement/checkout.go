package payement

import (
	"log"
	"math"
	"net/http"
	"os"

	"tg_accessories_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// Checkout crée une session Stripe Checkout hébergée à partir des items du
// panier et renvoie l'URL de redirection. Rien n'est persisté ici : la
// finalisation de commande est déclenchée au retour du paiement réussi.
func Checkout(c *gin.Context) {
	if os.Getenv("STRIPE_SECRET_KEY") == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe is not configured"})
		return
	}

	var req struct {
		Items         []models.CartItem `json:"items"`
		CustomerEmail string            `json:"customerEmail"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide ou requête invalide"})
		return
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          buildLineItems(req.Items),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(siteURL + "/?payment_success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(siteURL + "/cart"),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	s, err := session.New(params)
	if err != nil {
		log.Println("❌ Erreur Stripe:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	log.Printf("💳 Session Checkout créée : %s (%d items)", s.ID, len(req.Items))
	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// buildLineItems convertit les items du panier au format Stripe,
// prix unitaires en centimes arrondis.
func buildLineItems(items []models.CartItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String("usd"),
				ProductData: productData,
				UnitAmount:  stripe.Int64(toCents(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	return lineItems
}

// toCents arrondit un prix décimal au centime entier le plus proche.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
