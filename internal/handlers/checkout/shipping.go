package checkout

import (
	"net/http"
	"strconv"

	"zuri_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetShippingOptions retourne les options de livraison affichées au
// panier. Le flux de paiement actuel n'en facture aucune (livraison
// offerte), elles restent informatives. GET /api/shipping/options
func GetShippingOptions(c *gin.Context) {
	var cartTotal float64
	if total := c.Query("cart_total"); total != "" {
		if n, err := strconv.ParseFloat(total, 64); err == nil {
			cartTotal = n
		}
	}

	freeThreshold := 50000.0 // ₦50 000
	isFree := cartTotal >= freeThreshold

	options := []models.ShippingOption{
		{
			ID:            "standard",
			Name:          "Livraison Standard",
			Description:   "Livraison en 5-7 jours ouvrés",
			Price:         2500,
			EstimatedDays: 7,
		},
		{
			ID:            "express",
			Name:          "Livraison Express",
			Description:   "Livraison en 2-3 jours ouvrés",
			Price:         6000,
			EstimatedDays: 3,
		},
	}

	if isFree {
		options[0].Price = 0
		options[0].Name = "Livraison Standard Gratuite"
	}

	c.JSON(http.StatusOK, models.ShippingCalculation{
		Options:       options,
		FreeThreshold: freeThreshold,
		CartTotal:     cartTotal,
		IsFree:        isFree,
	})
}
