package user

import (
	"log"
	"net/http"

	"zuri_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

// GetMyOrders liste les commandes de l'utilisateur connecté, plus
// récentes en tête. GET /api/orders
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	summaries, err := orders.NewStore().ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println("❌ Erreur récupération commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	log.Printf("✅ %d commandes trouvées pour user %s", len(summaries), userID)
	c.JSON(http.StatusOK, gin.H{"orders": summaries})
}

// GetOrderByID retourne une commande complète — la vue de confirmation
// s'appuie dessus (order_id + order_number). GET /api/orders/:id
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	order, err := orders.NewStore().Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		log.Println("❌ Commande introuvable:", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}
