package product

import (
	"net/http"

	"zuri_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// SearchProducts interroge Elasticsearch (nom, description, tags).
// GET /api/products/search?q=
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'q' requis"})
		return
	}

	hits, err := services.SearchProducts(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": hits, "count": len(hits)})
}
