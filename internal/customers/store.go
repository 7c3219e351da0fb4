package customers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// Deux checkouts simultanés pour le même email se disputent la ligne :
// l'incrément des agrégats passe par un UPDATE conditionnel (LWT) avec
// relecture, pour ne jamais perdre de mise à jour.
const maxUpsertRetries = 5

type Store struct{}

func NewStore() *Store { return &Store{} }

// Upsert résout la fiche client d'un checkout : création à la première
// commande, sinon écrasement des champs de contact + cumul des agrégats.
// Retourne l'identifiant client, indispensable avant toute commande.
func (s *Store) Upsert(ctx context.Context, email string, profile models.CustomerProfile, orderTotal float64) (string, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxUpsertRetries; attempt++ {
		cur, err := readByEmail(ctx, session, email)

		if errors.Is(err, gocql.ErrNotFound) {
			next := ApplyOrder(nil, email, profile, orderTotal)
			applied, err := session.Query(`INSERT INTO customers
				(customer_id, email, name, phone, street, city, postal_code, country, currency, total_orders, total_spent, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) IF NOT EXISTS`,
				gocql.UUID(uuid.MustParse(next.ID)), next.Email, next.Name, next.Phone, next.Street, next.City,
				next.PostalCode, next.Country, next.Currency, next.TotalOrders, next.TotalSpent,
				next.CreatedAt, next.UpdatedAt).
				WithContext(ctx).MapScanCAS(map[string]interface{}{})
			if err != nil {
				return "", err
			}
			if applied {
				log.Printf("✅ Nouveau client créé: %s", email)
				return next.ID, nil
			}
			// Un checkout concurrent vient de créer la fiche : on repart
			// sur le chemin mise à jour.
			continue
		}
		if err != nil {
			return "", err
		}

		next := ApplyOrder(&cur, email, profile, orderTotal)
		applied, err := session.Query(`UPDATE customers SET
			name = ?, phone = ?, street = ?, city = ?, postal_code = ?, country = ?, currency = ?,
			total_orders = ?, total_spent = ?, updated_at = ?
			WHERE email = ? IF total_orders = ?`,
			next.Name, next.Phone, next.Street, next.City, next.PostalCode, next.Country, next.Currency,
			next.TotalOrders, next.TotalSpent, next.UpdatedAt,
			email, cur.TotalOrders).
			WithContext(ctx).MapScanCAS(map[string]interface{}{})
		if err != nil {
			return "", err
		}
		if applied {
			log.Printf("✅ Client mis à jour: %s (%d commandes)", email, next.TotalOrders)
			return next.ID, nil
		}
		// total_orders a bougé entre la lecture et l'écriture : on relit.
	}

	return "", fmt.Errorf("upsert client %s: trop de conflits concurrents", email)
}

func readByEmail(ctx context.Context, session *gocql.Session, email string) (models.Customer, error) {
	var c models.Customer
	var id gocql.UUID

	err := session.Query(`SELECT customer_id, name, phone, street, city, postal_code, country, currency,
		total_orders, total_spent, created_at, updated_at
		FROM customers WHERE email = ?`, email).
		WithContext(ctx).
		Scan(&id, &c.Name, &c.Phone, &c.Street, &c.City, &c.PostalCode, &c.Country, &c.Currency,
			&c.TotalOrders, &c.TotalSpent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Customer{}, err
	}

	c.ID = id.String()
	c.Email = email
	return c, nil
}
