package models

import "time"

// Order : commande figée au moment du paiement. Les articles sont des
// snapshots (copie profonde), jamais des références vers le catalogue vivant.
type Order struct {
	ID               string          `json:"order_id"`
	OrderNumber      string          `json:"order_number"`
	UserID           string          `json:"user_id,omitempty"`
	CustomerID       string          `json:"customer_id"`
	Email            string          `json:"email"`
	Items            []OrderItem     `json:"items"`
	Subtotal         float64         `json:"subtotal"`
	ShippingFee      float64         `json:"shipping_fee"`
	Total            float64         `json:"total"`
	Currency         string          `json:"currency"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentReference string          `json:"payment_reference"`
	Status           string          `json:"status"`
	ShippingAddress  ShippingAddress `json:"shipping_address"`
	CreatedAt        time.Time       `json:"created_at"`
}

// OrderItem : snapshot d'un article du panier au moment de la commande.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Variant   string  `json:"variant,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}
