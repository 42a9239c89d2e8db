package cache

import (
	"context"
	"encoding/json"
	"time"

	"optistock_back_end/internal/store"
)

const (
	inventoryCacheKey = "inventory:all"
	InventoryCacheTTL = time.Hour
)

// GetInventoryFromCache tente de lire la table principale depuis Redis.
// Sans Redis (ou sur cache froid) on retombe sur le fichier.
func GetInventoryFromCache() (*store.Table, bool) {
	if store.Redis == nil {
		return nil, false
	}

	ctx := context.Background()
	val, err := store.Redis.Get(ctx, inventoryCacheKey).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var table store.Table
	if err := json.Unmarshal([]byte(val), &table); err != nil {
		return nil, false
	}
	return &table, true
}

// SetInventoryCache met la table principale en cache
func SetInventoryCache(t *store.Table) {
	if store.Redis == nil {
		return
	}

	if data, err := json.Marshal(t); err == nil {
		store.Redis.Set(context.Background(), inventoryCacheKey, data, InventoryCacheTTL)
	}
}

// InvalidateInventoryCache invalide le cache après toute écriture
func InvalidateInventoryCache() {
	if store.Redis == nil {
		return
	}
	store.Redis.Del(context.Background(), inventoryCacheKey)
}
