package checkout

import (
	"context"
	"fmt"
	"log"

	"zuri_back_end/internal/models"
)

// États de la saga de checkout.
type State string

const (
	StateAwaitingPayment             State = "awaiting_payment"
	StatePaymentCancelled            State = "payment_cancelled"
	StatePaymentSucceeded            State = "payment_succeeded"
	StateCustomerResolved            State = "customer_resolved"
	StateOrderPersisted              State = "order_persisted"
	StateNotificationAttempted       State = "notification_attempted"
	StateCompleted                   State = "completed"
	StatePaymentSucceededOrderFailed State = "payment_succeeded_order_failed"
)

// PaymentResult : résultat du widget de paiement, succès ou abandon.
// Union fermée — le widget ne connaît que ces deux issues.
type PaymentResult interface {
	isPaymentResult()
}

// PaymentSuccess porte la référence attribuée par le gateway à la
// transaction capturée. C'est la seule clé de réconciliation si la
// commande ne peut pas être enregistrée ensuite.
type PaymentSuccess struct {
	Reference string
}

// PaymentCancelled : l'utilisateur a fermé le widget. Issue attendue,
// pas une erreur.
type PaymentCancelled struct{}

func (PaymentSuccess) isPaymentResult()   {}
func (PaymentCancelled) isPaymentResult() {}

// CheckoutRequest : tout ce que la saga doit connaître, injecté
// explicitement — pas d'état ambiant.
type CheckoutRequest struct {
	UserID   string // vide si invité
	Email    string
	Currency string // devise de la transaction capturée, pas celle du profil
	Profile  models.CustomerProfile
	Items    []models.CartItem
}

// Outcome : état terminal atteint + données de navigation vers la vue
// de confirmation.
type Outcome struct {
	State       State  `json:"state"`
	OrderID     string `json:"order_id,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// Hooks : callbacks optionnels du composant appelant.
type Hooks struct {
	OnSuccess func(models.Order)
	OnCancel  func()
}

// Service orchestre la fin du checkout : upsert client → insertion
// commande → email → vidage panier. Toutes les dépendances sont des
// ports injectés pour rester testable sans base ni SMTP.
type Service struct {
	Customers CustomerStore
	Orders    OrderStore
	Cart      CartStore
	Mailer    Dispatcher
	Notices   NoticeSink
	Hooks     Hooks
}

func NewService(customers CustomerStore, orders OrderStore, cart CartStore, mailer Dispatcher, notices NoticeSink) *Service {
	return &Service{
		Customers: customers,
		Orders:    orders,
		Cart:      cart,
		Mailer:    mailer,
		Notices:   notices,
	}
}

// Complete fait avancer la saga depuis le callback du widget jusqu'à un
// état terminal. Les étapes 4→7 sont strictement séquentielles ; seul
// l'email est toléré en échec. Après capture du paiement, on n'abandonne
// jamais en silence : soit Completed, soit l'état d'erreur explicite
// portant la référence gateway.
func (s *Service) Complete(ctx context.Context, result PaymentResult, req CheckoutRequest) (Outcome, error) {
	switch r := result.(type) {
	case PaymentCancelled:
		s.notify(NoticeInfo, "Paiement annulé")
		if s.Hooks.OnCancel != nil {
			s.Hooks.OnCancel()
		}
		return Outcome{State: StatePaymentCancelled}, nil

	case PaymentSuccess:
		return s.completePaid(ctx, r.Reference, req)

	default:
		return Outcome{State: StateAwaitingPayment}, fmt.Errorf("résultat de paiement inconnu: %T", result)
	}
}

func (s *Service) completePaid(ctx context.Context, reference string, req CheckoutRequest) (Outcome, error) {
	s.notify(NoticeInfo, "Paiement reçu, traitement de votre commande…")

	subtotal := Subtotal(req.Items)
	shippingFee := 0.0 // pas de calcul de livraison dans ce flux
	total := subtotal + shippingFee

	// Étape fatale : pas de commande sans client résolu.
	customerID, err := s.Customers.Upsert(ctx, req.Email, req.Profile, total)
	if err != nil {
		log.Printf("❌ Upsert client échoué (ref %s): %v", reference, err)
		return s.fail(reference, err)
	}

	order := models.Order{
		OrderNumber:      GenerateOrderNumber(),
		UserID:           req.UserID,
		CustomerID:       customerID,
		Email:            req.Email,
		Items:            snapshotItems(req.Items),
		Subtotal:         subtotal,
		ShippingFee:      shippingFee,
		Total:            total,
		Currency:         req.Currency,
		PaymentMethod:    "paystack",
		PaymentStatus:    "paid",
		PaymentReference: reference,
		Status:           "pending",
		ShippingAddress: models.ShippingAddress{
			Street:     req.Profile.Street,
			City:       req.Profile.City,
			PostalCode: req.Profile.PostalCode,
			Country:    req.Profile.Country,
			Phone:      req.Profile.Phone,
		},
	}

	created, err := s.Orders.Create(ctx, order)
	if err != nil {
		log.Printf("❌ Insertion commande échouée (ref %s): %v", reference, err)
		return s.fail(reference, err)
	}

	// Best-effort : une commande est placée même si l'email ne part pas.
	if err := s.Mailer.SendConfirmation(ctx, created, req.Profile.Name); err != nil {
		log.Printf("⚠️ Email de confirmation non envoyé (%s): %v", created.OrderNumber, err)
	}

	// Le panier n'est vidé qu'ici, jamais avant la persistance.
	if req.UserID != "" {
		if err := s.Cart.Clear(ctx, req.UserID); err != nil {
			log.Printf("⚠️ Panier non vidé pour %s: %v", req.UserID, err)
		}
	}

	if s.Hooks.OnSuccess != nil {
		s.Hooks.OnSuccess(created)
	}
	s.notify(NoticeSuccess, fmt.Sprintf("Commande %s confirmée !", created.OrderNumber))

	return Outcome{
		State:       StateCompleted,
		OrderID:     created.ID,
		OrderNumber: created.OrderNumber,
		Reference:   reference,
	}, nil
}

// fail : le paiement est capturé mais la commande n'est pas enregistrée.
// Le panier est volontairement conservé, et le message inclut la
// référence gateway — unique poignée de réconciliation pour le support.
func (s *Service) fail(reference string, cause error) (Outcome, error) {
	s.notify(NoticeError, fmt.Sprintf(
		"Votre paiement a bien été débité (référence %s) mais l'enregistrement de la commande a échoué. Contactez le support avec cette référence.",
		reference))
	return Outcome{State: StatePaymentSucceededOrderFailed, Reference: reference},
		fmt.Errorf("commande non enregistrée après paiement %s: %w", reference, cause)
}

func (s *Service) notify(level, message string) {
	if s.Notices != nil {
		s.Notices.Notify(level, message)
	}
}

// Subtotal calcule le total d'un panier.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// snapshotItems fige les articles du panier : copie profonde, les
// mutations ultérieures du panier n'altèrent pas la commande.
func snapshotItems(items []models.CartItem) []models.OrderItem {
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Slug:      item.Slug,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Variant:   item.Variant,
			ImageURL:  item.ImageURL,
		})
	}
	return snapshot
}
