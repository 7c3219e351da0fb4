package models

import "time"

// Customer : fiche client rattachée au checkout. Une seule fiche par email,
// mise à jour à chaque commande (dernière valeur gagne + agrégats cumulés).
type Customer struct {
	ID          string    `json:"customer_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Street      string    `json:"street,omitempty"`
	City        string    `json:"city,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Country     string    `json:"country,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	TotalOrders int       `json:"total_orders"`
	TotalSpent  float64   `json:"total_spent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerProfile : champs de contact fournis au moment du paiement.
type CustomerProfile struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Currency   string `json:"currency"`
}
