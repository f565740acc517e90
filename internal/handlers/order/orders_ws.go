package order

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// checkWSOrigin n'accepte que le front (SITE_URL), même origine que le CORS.
// Un header Origin absent (client non-navigateur) passe.
func checkWSOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}
	return origin == siteURL
}

var upgrader = websocket.Upgrader{
	CheckOrigin: checkWSOrigin,
}

// OrdersWebSocket pousse les nouvelles commandes au back-office en temps réel.
// Le garde admin (cookie ou ?token=) est appliqué en amont par le routeur.
func OrdersWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, NewOrderChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Flux commandes activé",
	})

	// Déconnexion du client détectée par la boucle de lecture
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var order models.Order
			if err := json.Unmarshal([]byte(msg.Payload), &order); err != nil {
				continue
			}
			if err := conn.WriteJSON(map[string]interface{}{
				"type":  "new_order",
				"order": order,
			}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
