package user

import (
	"net/http"

	"zuri_back_end/internal/cache"
	"zuri_back_end/internal/cart"
	"zuri_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetCart retourne le panier courant. GET /api/cart
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	items, err := cart.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage panier"})
		return
	}
	c.JSON(http.StatusOK, models.Cart{UserID: userID, Items: items})
}

// AddToCart ajoute un article (snapshot produit + quantité).
// POST /api/cart/add
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Variant   string `json:"variant"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx := c.Request.Context()

	// 🧩 Snapshot du produit au moment de l'ajout
	product, err := cache.GetProductFromCache(ctx, productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if product.Stock < input.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock insuffisant", "available": product.Stock})
		return
	}

	imageURL := ""
	if len(product.ImageURLs) > 0 {
		imageURL = product.ImageURLs[0]
	}

	items, err := cart.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	// Même produit + même variante : on cumule la quantité.
	merged := false
	for i := range items {
		if items[i].ProductID == input.ProductID && items[i].Variant == input.Variant {
			items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ProductID: input.ProductID,
			Name:      product.Name,
			Slug:      product.Slug,
			Price:     product.Price,
			Quantity:  input.Quantity,
			Variant:   input.Variant,
			ImageURL:  imageURL,
		})
	}

	if err := cart.Save(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement panier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateCartItem change la quantité d'un article (0 = suppression).
// PUT /api/cart/update
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Variant   string `json:"variant"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	items, err := cart.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	next := items[:0]
	for _, item := range items {
		if item.ProductID == input.ProductID && item.Variant == input.Variant {
			if input.Quantity == 0 {
				continue
			}
			item.Quantity = input.Quantity
		}
		next = append(next, item)
	}

	if err := cart.Save(ctx, userID, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement panier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": next})
}

// RemoveFromCart retire un article. DELETE /api/cart/remove/:productId
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}
	productID := c.Param("productId")

	ctx := c.Request.Context()
	items, err := cart.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	next := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			next = append(next, item)
		}
	}

	if err := cart.Save(ctx, userID, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement panier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": next})
}

// ClearCart vide le panier à la demande de l'utilisateur.
// DELETE /api/cart/clear
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	if err := cart.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vidage panier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
}
