package cache

import (
	"context"
	"encoding/json"
	"time"

	"tg_accessories_back_end/internal/database"
)

const CatalogTTL = time.Hour

// Clés de cache des listes publiques, invalidées à chaque écriture admin.
const (
	KeyProductsAll    = "products:all"
	KeyCategoriesAll  = "categories:all"
	KeyBlogsPublished = "blogs:published"
)

// GetList tente de lire une liste mise en cache. ok=false si absente ou illisible.
func GetList(ctx context.Context, key string, dest interface{}) bool {
	val, err := database.Redis.Get(ctx, key).Result()
	if err != nil || val == "" {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// SetList met une liste en cache. Les erreurs sont ignorées, le cache est optionnel.
func SetList(ctx context.Context, key string, value interface{}) {
	if data, err := json.Marshal(value); err == nil {
		database.Redis.Set(ctx, key, data, CatalogTTL)
	}
}

// Invalidate supprime une ou plusieurs clés de cache.
func Invalidate(ctx context.Context, keys ...string) {
	database.Redis.Del(ctx, keys...)
}
