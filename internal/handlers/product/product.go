package product

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"zuri_back_end/internal/cache"
	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"
	"zuri_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// CreateProduct ajoute un produit au catalogue. POST /api/products
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.CategoryID == (gocql.UUID{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'category_id' est obligatoire"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// ✅ Vérifie la catégorie
	var categoryName string
	if err := session.Query(`SELECT name FROM categories WHERE category_id = ?`, p.CategoryID).Scan(&categoryName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie introuvable"})
		return
	}

	p.ID = gocql.TimeUUID()
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO products (product_id, name, slug, description, price, stock, category_id, image_urls, variants, tags, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, p.ID, p.Name, p.Slug, p.Description, p.Price, p.Stock, p.CategoryID,
		p.ImageURLs, p.Variants, p.Tags, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	// ✅ Projection par catégorie pour le listing boutique
	if err := session.Query(`INSERT INTO products_by_category (category_id, product_id, name, slug, price, stock) VALUES (?, ?, ?, ?, ?, ?)`,
		p.CategoryID, p.ID, p.Name, p.Slug, p.Price, p.Stock).Exec(); err != nil {
		log.Printf("⚠️ Erreur indexation products_by_category: %v", err)
	}

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)
	cache.InvalidateProduct(c.Request.Context(), p.ID)

	c.JSON(http.StatusCreated, p)
}

// ListProducts retourne le catalogue, avec cache Redis court.
// GET /api/products
func ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Cache Redis
	if data, err := database.Redis.Get(ctx, "products:list").Result(); err == nil {
		var products []models.Product
		if json.Unmarshal([]byte(data), &products) == nil {
			c.JSON(http.StatusOK, gin.H{"products": products, "cached": true})
			return
		}
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT product_id, name, slug, description, price, stock, category_id, image_urls, variants, tags, created_at, updated_at FROM products`).
		WithContext(ctx).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.ImageURLs, &p.Variants, &p.Tags, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}

	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, "products:list", data, cache.ProductListCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct retourne un produit (cache Redis en lecture).
// GET /api/products/:id
func GetProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	p, err := cache.GetProductFromCache(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListByCategory retourne les produits d'une catégorie.
// GET /api/products/category/:categoryId
func ListByCategory(c *gin.Context) {
	categoryID, err := gocql.ParseUUID(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID catégorie invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT product_id, name, slug, price, stock FROM products_by_category WHERE category_id = ?`, categoryID).
		WithContext(c.Request.Context()).Iter()

	type row struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Slug      string  `json:"slug"`
		Price     float64 `json:"price"`
		Stock     int     `json:"stock"`
	}
	rows := []row{}
	var id gocql.UUID
	var r row
	for iter.Scan(&id, &r.Name, &r.Slug, &r.Price, &r.Stock) {
		r.ProductID = id.String()
		rows = append(rows, r)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégorie"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": rows})
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, s)
	return strings.Trim(s, "-")
}
