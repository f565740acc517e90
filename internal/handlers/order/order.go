package order

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Durée de rétention du verrou anti double-finalisation d'une même session.
const finalizeLockTTL = 30 * time.Second

// Canal Redis notifiant les nouvelles commandes (flux admin temps réel).
const NewOrderChannel = "orders:new"

//
// 🧾 POST /api/orders/create
//
// Copie le panier de la session courante dans la table orders puis vide le
// panier. Appelé au retour d'un paiement Stripe réussi. Un verrou Redis par
// session absorbe les doubles déclenchements (rechargement de la page succès).
func CreateOrder(c *gin.Context) {
	sessionID, err := c.Cookie("cart-session")
	if err != nil || sessionID == "" {
		c.JSON(http.StatusOK, gin.H{"message": "No session"})
		return
	}

	ctx := c.Request.Context()

	cart, err := cache.GetCart(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if cart == nil || cart.IsEmpty() {
		c.JSON(http.StatusOK, gin.H{"message": "Cart empty or not found"})
		return
	}

	// Verrou d'idempotence : une seule finalisation par session dans la fenêtre
	lockKey := "order_lock:" + sessionID
	acquired, err := database.Redis.SetNX(ctx, lockKey, "1", finalizeLockTTL).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur verrou commande"})
		return
	}
	if !acquired {
		c.JSON(http.StatusOK, gin.H{"message": "Order already processed"})
		return
	}

	now := time.Now()
	order := models.Order{
		OrderID:         utils.GenerateOrderID(),
		SessionID:       cart.SessionID,
		Items:           cart.Items,
		Total:           cart.Total,
		Status:          models.OrderStatusPaid,
		CustomerDetails: cart.CustomerDetails,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := insertOrder(order); err != nil {
		log.Println("❌ Erreur insertion commande:", err)
		database.Redis.Del(ctx, lockKey)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	// Vide le panier source : items à zéro, session conservée.
	// Deux écritures séparées, sans transaction — le verrou ci-dessus couvre
	// le rejeu, pas un crash entre les deux.
	cart.Clear()
	if err := cache.SaveCart(ctx, cart); err != nil {
		log.Println("⚠️ Commande créée mais panier non vidé:", err)
	}

	publishNewOrder(order)
	go sendConfirmation(order)

	log.Printf("🧾 Commande %s créée (%.2f$, %d items)", order.OrderID, order.Total, len(order.Items))
	c.JSON(http.StatusOK, gin.H{"message": "Order created and cart cleared", "orderId": order.OrderID})
}

// insertOrder persiste la commande, items et coordonnées sérialisés en JSON.
func insertOrder(order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	var customerJSON []byte
	if order.CustomerDetails != nil {
		customerJSON, _ = json.Marshal(order.CustomerDetails)
	}

	return session.Query(`INSERT INTO orders (order_id, session_id, items, total, status, customer, created_at, updated_at)
	                      VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID, order.SessionID, string(itemsJSON), order.Total, order.Status,
		string(customerJSON), order.CreatedAt, order.UpdatedAt).Exec()
}

// publishNewOrder pousse la commande sur le canal Redis du flux admin.
func publishNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), NewOrderChannel, data).Err(); err != nil {
		log.Println("⚠️ Publication commande échouée:", err)
	}
}

// sendConfirmation envoie l'e-mail de confirmation avec facture PDF et QR de
// retrait quand le panier portait un e-mail client. Best effort, en goroutine.
func sendConfirmation(order models.Order) {
	if order.CustomerDetails == nil || order.CustomerDetails.Email == "" {
		return
	}

	var pdf []byte
	if qr, err := utils.GenerateOrderQR(order.OrderID); err == nil {
		if rendered, err := utils.RenderInvoicePDF(order.OrderID, qr); err == nil {
			pdf = rendered
		} else {
			log.Println("⚠️ Génération facture PDF échouée:", err)
		}
	}

	if err := utils.SendOrderConfirmationEmail(order.CustomerDetails.Email, order, pdf); err != nil {
		log.Println("⚠️ Envoi confirmation échoué:", err)
	}
}

//
// 🗂 GET /api/admin/carts
//
// L'admin "Orders Management" liste les commandes, pas les paniers en cours.
func ListOrders(c *gin.Context) {
	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT order_id, session_id, items, total, status, customer, created_at, updated_at FROM orders`).Iter()

	var orders []models.Order
	var (
		orderID, sid, itemsJSON, status, customerJSON string
		total                                         float64
		createdAt, updatedAt                          time.Time
	)

	for iter.Scan(&orderID, &sid, &itemsJSON, &total, &status, &customerJSON, &createdAt, &updatedAt) {
		order := models.Order{
			OrderID:   orderID,
			SessionID: sid,
			Total:     total,
			Status:    status,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
		if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
			order.Items = []models.CartItem{}
		}
		if customerJSON != "" {
			var details models.CustomerDetails
			if json.Unmarshal([]byte(customerJSON), &details) == nil {
				order.CustomerDetails = &details
			}
		}
		orders = append(orders, order)
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes: " + err.Error()})
		return
	}

	// Les plus récentes d'abord
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	// L'admin historique attend les commandes sous la forme de "carts"
	carts := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		carts = append(carts, gin.H{
			"id":              o.OrderID,
			"sessionId":       o.SessionID,
			"items":           o.Items,
			"total":           o.Total,
			"status":          o.Status,
			"createdAt":       o.CreatedAt,
			"updatedAt":       o.UpdatedAt,
			"customerDetails": o.CustomerDetails,
		})
	}

	c.JSON(http.StatusOK, gin.H{"carts": carts})
}
