package product

import (
	"net/http"
	"time"

	"zuri_back_end/internal/cache"
	"zuri_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetGallery retourne les URLs signées des images d'un produit, pour la
// galerie / lightbox du front. GET /api/products/:id/gallery
func GetGallery(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx := c.Request.Context()
	p, err := cache.GetProductFromCache(ctx, productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	urls := []string{}
	for _, img := range p.ImageURLs {
		signed, err := services.GenerateSignedURL(ctx, img, 1*time.Hour)
		if err != nil {
			// Image manquante dans le bucket : on la saute, la galerie
			// reste utilisable.
			continue
		}
		urls = append(urls, signed)
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": p.ID.String(),
		"images":     urls,
	})
}
