package cache

import (
	"context"
	"encoding/json"
	"time"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"

	"github.com/gocql/gocql"
)

const (
	ProductCacheTTL     = 10 * time.Minute
	ProductListCacheTTL = 5 * time.Minute
)

// GetProductFromCache récupère un produit depuis Redis, sinon ScyllaDB
// (et remplit le cache au passage).
func GetProductFromCache(ctx context.Context, productID gocql.UUID) (*models.Product, error) {
	key := "product:" + productID.String()

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var p models.Product
		if json.Unmarshal([]byte(data), &p) == nil {
			return &p, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	var p models.Product
	err = session.Query(`SELECT product_id, name, slug, description, price, stock, category_id, image_urls, variants, tags, created_at, updated_at
		FROM products WHERE product_id = ?`, productID).
		WithContext(ctx).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.ImageURLs, &p.Variants, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(p)
	database.Redis.Set(ctx, key, jsonData, ProductCacheTTL)

	return &p, nil
}

// InvalidateProduct purge un produit du cache (après mise à jour catalogue).
func InvalidateProduct(ctx context.Context, productID gocql.UUID) {
	database.Redis.Del(ctx, "product:"+productID.String(), "products:list")
}
