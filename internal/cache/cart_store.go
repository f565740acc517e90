package cache

import (
	"context"
	"encoding/json"
	"time"

	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// Les paniers sont des documents éphémères : ils vivent dans Redis sous
// "cart:<sessionID>", alignés sur la durée de vie du cookie de session (7 jours).
const CartTTL = 7 * 24 * time.Hour

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// GetCart récupère le panier d'une session. Retourne (nil, nil) si aucun
// panier n'existe pour cette session.
func GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := database.Redis.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// SaveCart persiste le panier (upsert par session) et repousse le TTL.
func SaveCart(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, cartKey(cart.SessionID), data, CartTTL).Err()
}
