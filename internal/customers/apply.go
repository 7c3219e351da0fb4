package customers

import (
	"time"

	"zuri_back_end/internal/models"

	"github.com/google/uuid"
)

// ApplyOrder calcule la fiche client résultant d'une commande aboutie.
// existing == nil : première commande pour cet email, nouvelle fiche.
// Sinon : les champs de contact sont écrasés (dernière valeur gagne) et
// les agrégats sont incrémentés — jamais décrémentés.
func ApplyOrder(existing *models.Customer, email string, profile models.CustomerProfile, orderTotal float64) models.Customer {
	now := time.Now().UTC()

	next := models.Customer{
		Email:      email,
		Name:       profile.Name,
		Phone:      profile.Phone,
		Street:     profile.Street,
		City:       profile.City,
		PostalCode: profile.PostalCode,
		Country:    profile.Country,
		Currency:   profile.Currency,
		UpdatedAt:  now,
	}

	if existing == nil {
		next.ID = uuid.NewString()
		next.TotalOrders = 1
		next.TotalSpent = orderTotal
		next.CreatedAt = now
		return next
	}

	next.ID = existing.ID
	next.CreatedAt = existing.CreatedAt
	next.TotalOrders = existing.TotalOrders + 1
	next.TotalSpent = existing.TotalSpent + orderTotal
	return next
}
