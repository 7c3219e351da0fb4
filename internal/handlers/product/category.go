package product

import (
	"net/http"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// ListCategories retourne toutes les catégories du catalogue.
// GET /api/categories
func ListCategories(c *gin.Context) {
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT category_id, name, slug FROM categories`).
		WithContext(c.Request.Context()).Iter()

	categories := []models.Category{}
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Name, &cat.Slug) {
		categories = append(categories, cat)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
