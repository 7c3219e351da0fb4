package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"

	"github.com/gocql/gocql"
)

type Store struct{}

func NewStore() *Store { return &Store{} }

// Create insère une commande (une seule fois, jamais modifiée ensuite par
// ce sous-système) et retourne la commande enrichie de son identité.
func (s *Store) Create(ctx context.Context, order models.Order) (models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return models.Order{}, err
	}

	// Invariant de création : total = sous-total + livraison.
	if order.Total != order.Subtotal+order.ShippingFee {
		return models.Order{}, fmt.Errorf("total incohérent: %.2f != %.2f + %.2f",
			order.Total, order.Subtotal, order.ShippingFee)
	}

	order.ID = gocql.TimeUUID().String()
	order.CreatedAt = time.Now().UTC()

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("sérialisation articles: %v", err)
	}

	err = session.Query(`INSERT INTO orders
		(order_id, order_number, user_id, customer_id, email, items, subtotal, shipping_fee, total, currency,
		 payment_method, payment_status, payment_reference, status,
		 ship_street, ship_city, ship_postal_code, ship_country, ship_phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mustUUID(order.ID), order.OrderNumber, order.UserID, order.CustomerID, order.Email,
		string(itemsJSON), order.Subtotal, order.ShippingFee, order.Total, order.Currency,
		order.PaymentMethod, order.PaymentStatus, order.PaymentReference, order.Status,
		order.ShippingAddress.Street, order.ShippingAddress.City, order.ShippingAddress.PostalCode,
		order.ShippingAddress.Country, order.ShippingAddress.Phone, order.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return models.Order{}, err
	}

	// Projection par utilisateur pour "mes commandes". Non bloquant :
	// la table orders reste la source de vérité.
	if order.UserID != "" {
		if err := session.Query(`INSERT INTO orders_by_user (user_id, created_at, order_id, order_number, total, currency, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			order.UserID, order.CreatedAt, mustUUID(order.ID), order.OrderNumber, order.Total, order.Currency, order.Status).
			WithContext(ctx).Exec(); err != nil {
			log.Printf("⚠️ Projection orders_by_user échouée pour %s: %v", order.OrderNumber, err)
		}
	}

	log.Printf("✅ Commande insérée: %s (%s)", order.OrderNumber, order.ID)
	return order, nil
}

// Get retourne une commande complète. userID non vide = contrôle de
// propriété (la vue de confirmation ne montre que ses propres commandes).
func (s *Store) Get(ctx context.Context, orderID, userID string) (models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return models.Order{}, err
	}

	id, err := gocql.ParseUUID(orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("identifiant de commande invalide")
	}

	var o models.Order
	var itemsJSON string

	err = session.Query(`SELECT order_number, user_id, customer_id, email, items, subtotal, shipping_fee, total, currency,
		payment_method, payment_status, payment_reference, status,
		ship_street, ship_city, ship_postal_code, ship_country, ship_phone, created_at
		FROM orders WHERE order_id = ?`, id).
		WithContext(ctx).
		Scan(&o.OrderNumber, &o.UserID, &o.CustomerID, &o.Email, &itemsJSON,
			&o.Subtotal, &o.ShippingFee, &o.Total, &o.Currency,
			&o.PaymentMethod, &o.PaymentStatus, &o.PaymentReference, &o.Status,
			&o.ShippingAddress.Street, &o.ShippingAddress.City, &o.ShippingAddress.PostalCode,
			&o.ShippingAddress.Country, &o.ShippingAddress.Phone, &o.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}

	if userID != "" && o.UserID != userID {
		return models.Order{}, gocql.ErrNotFound
	}

	o.ID = orderID
	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		return models.Order{}, fmt.Errorf("désérialisation articles: %v", err)
	}
	return o, nil
}

// OrderSummary : ligne de la liste "mes commandes".
type OrderSummary struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListByUser retourne les commandes d'un utilisateur, plus récentes en tête.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]OrderSummary, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, order_number, total, currency, status, created_at
		FROM orders_by_user WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()

	summaries := []OrderSummary{}
	var id gocql.UUID
	var sum OrderSummary
	for iter.Scan(&id, &sum.OrderNumber, &sum.Total, &sum.Currency, &sum.Status, &sum.CreatedAt) {
		sum.OrderID = id.String()
		summaries = append(summaries, sum)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func mustUUID(s string) gocql.UUID {
	id, err := gocql.ParseUUID(s)
	if err != nil {
		// Ne peut arriver que sur un identifiant généré en interne.
		panic(fmt.Sprintf("uuid invalide: %q", s))
	}
	return id
}
