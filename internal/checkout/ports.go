package checkout

import (
	"context"

	"zuri_back_end/internal/models"
)

// CustomerStore : upsert client par email (fiche + agrégats de fidélité).
type CustomerStore interface {
	Upsert(ctx context.Context, email string, profile models.CustomerProfile, orderTotal float64) (string, error)
}

// OrderStore : insertion unique d'une commande, retourne la commande avec
// son identité générée côté base.
type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
}

// CartStore : seule opération dont la saga a besoin — vider le panier,
// uniquement après persistance réussie de la commande.
type CartStore interface {
	Clear(ctx context.Context, userID string) error
}

// Dispatcher : envoi de l'email de confirmation, best-effort.
type Dispatcher interface {
	SendConfirmation(ctx context.Context, order models.Order, customerName string) error
}

// NoticeSink : reçoit les messages destinés à l'utilisateur (toasts côté front).
type NoticeSink interface {
	Notify(level, message string)
}

// Niveaux de notice.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)
