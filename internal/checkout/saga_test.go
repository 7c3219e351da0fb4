package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"zuri_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *MockCustomerStore, *MockOrderStore, *MockCartStore, *MockDispatcher, *MockNoticeSink) {
	customers := &MockCustomerStore{ID: "cust-001"}
	orders := &MockOrderStore{}
	cart := &MockCartStore{}
	mailer := &MockDispatcher{}
	notices := &MockNoticeSink{}
	return NewService(customers, orders, cart, mailer, notices), customers, orders, cart, mailer, notices
}

func testRequest() CheckoutRequest {
	return CheckoutRequest{
		UserID:   "user-42",
		Email:    "ada@example.com",
		Currency: "NGN",
		Profile: models.CustomerProfile{
			Name:       "Ada Obi",
			Phone:      "+2348012345678",
			Street:     "12 Allen Avenue",
			City:       "Lagos",
			PostalCode: "100001",
			Country:    "NG",
			Currency:   "NGN",
		},
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Robe Ankara", Slug: "robe-ankara", Price: 24999.50, Quantity: 2, Variant: "M"},
			{ProductID: "p2", Name: "Sac Kente", Slug: "sac-kente", Price: 15000, Quantity: 1},
		},
	}
}

func TestComplete_HappyPath(t *testing.T) {
	svc, customers, orders, cart, mailer, _ := newTestService()

	outcome, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "PSK_ref_123"}, testRequest())

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, outcome.State)
	assert.NotEmpty(t, outcome.OrderID)
	assert.NotEmpty(t, outcome.OrderNumber)
	assert.Equal(t, "PSK_ref_123", outcome.Reference)

	require.NotNil(t, orders.Created)
	assert.Equal(t, "PSK_ref_123", orders.Created.PaymentReference)
	assert.Equal(t, "cust-001", orders.Created.CustomerID)
	assert.Equal(t, "paid", orders.Created.PaymentStatus)
	assert.Equal(t, "pending", orders.Created.Status)

	assert.Equal(t, 1, customers.Calls)
	assert.Equal(t, 1, mailer.Calls)
	// Le panier est vidé exactement une fois, à la toute fin.
	assert.Equal(t, []string{"user-42"}, cart.Cleared)
}

func TestComplete_TotalInvariant(t *testing.T) {
	svc, customers, orders, _, _, _ := newTestService()

	_, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "ref"}, testRequest())
	require.NoError(t, err)

	require.NotNil(t, orders.Created)
	subtotal := 24999.50*2 + 15000.0
	assert.Equal(t, subtotal, orders.Created.Subtotal)
	assert.Equal(t, 0.0, orders.Created.ShippingFee)
	assert.Equal(t, orders.Created.Subtotal+orders.Created.ShippingFee, orders.Created.Total)
	// Le total de commande est aussi celui crédité aux agrégats client.
	assert.Equal(t, []float64{subtotal}, customers.Totals)
}

func TestComplete_OrderPersistFailure(t *testing.T) {
	svc, _, orders, cart, mailer, notices := newTestService()
	orders.Err = errors.New("scylla timeout")

	outcome, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "PSK_lost_777"}, testRequest())

	require.Error(t, err)
	assert.Equal(t, StatePaymentSucceededOrderFailed, outcome.State)
	assert.Equal(t, "PSK_lost_777", outcome.Reference)
	// Le panier n'est jamais vidé sur ce chemin : les articles restent récupérables.
	assert.Empty(t, cart.Cleared)
	assert.Equal(t, 0, mailer.Calls)

	// Le message utilisateur contient la référence gateway verbatim.
	joined := strings.Join(notices.Messages, "\n")
	assert.Contains(t, joined, "PSK_lost_777")
	assert.Contains(t, err.Error(), "PSK_lost_777")
}

func TestComplete_CustomerUpsertFailure(t *testing.T) {
	svc, customers, orders, cart, _, notices := newTestService()
	customers.Err = errors.New("connexion perdue")

	outcome, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "PSK_cust_1"}, testRequest())

	require.Error(t, err)
	assert.Equal(t, StatePaymentSucceededOrderFailed, outcome.State)
	// Sans client résolu, on ne tente jamais l'insertion de commande.
	assert.Equal(t, 0, orders.Calls)
	assert.Empty(t, cart.Cleared)
	assert.Contains(t, strings.Join(notices.Messages, "\n"), "PSK_cust_1")
}

func TestComplete_Cancelled(t *testing.T) {
	svc, customers, orders, cart, mailer, notices := newTestService()
	cancelled := false
	svc.Hooks.OnCancel = func() { cancelled = true }

	outcome, err := svc.Complete(context.Background(), PaymentCancelled{}, testRequest())

	require.NoError(t, err)
	assert.Equal(t, StatePaymentCancelled, outcome.State)
	assert.True(t, cancelled)
	// Aucune écriture : ni client, ni commande, ni vidage panier, ni email.
	assert.Equal(t, 0, customers.Calls)
	assert.Equal(t, 0, orders.Calls)
	assert.Equal(t, 0, mailer.Calls)
	assert.Empty(t, cart.Cleared)
	assert.Contains(t, strings.Join(notices.Messages, "\n"), "annulé")
}

func TestComplete_EmailFailureIsNotFatal(t *testing.T) {
	svc, _, _, cart, mailer, _ := newTestService()
	mailer.Err = errors.New("provider 500")

	outcome, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "ref"}, testRequest())

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, 1, mailer.Calls)
	// L'échec email ne bloque ni le vidage du panier ni la confirmation.
	assert.Equal(t, []string{"user-42"}, cart.Cleared)
}

func TestComplete_SuccessHookReceivesOrder(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	var hooked models.Order
	svc.Hooks.OnSuccess = func(o models.Order) { hooked = o }

	outcome, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "ref"}, testRequest())

	require.NoError(t, err)
	assert.Equal(t, outcome.OrderID, hooked.ID)
	assert.Equal(t, outcome.OrderNumber, hooked.OrderNumber)
	// Le hook reçoit la commande complète : c'est elle qui alimente la
	// vue de confirmation d'un invité, sans relecture authentifiée.
	assert.Len(t, hooked.Items, 2)
	assert.Equal(t, hooked.Subtotal+hooked.ShippingFee, hooked.Total)
	assert.Equal(t, "ref", hooked.PaymentReference)
}

func TestComplete_OrderCurrencyIsTransactionCurrency(t *testing.T) {
	svc, customers, orders, _, _, _ := newTestService()
	req := testRequest()
	// Le profil est une saisie client : sa devise ne doit jamais décider
	// de celle de la commande enregistrée.
	req.Profile.Currency = "JPY"
	req.Currency = "NGN"

	_, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "ref"}, req)
	require.NoError(t, err)

	require.NotNil(t, orders.Created)
	assert.Equal(t, "NGN", orders.Created.Currency)
	// La préférence du client survit sur sa fiche, pas sur la commande.
	assert.Equal(t, "JPY", customers.Profile.Currency)
}

func TestComplete_ItemsAreDeepCopied(t *testing.T) {
	svc, _, orders, _, _, _ := newTestService()
	req := testRequest()

	_, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "ref"}, req)
	require.NoError(t, err)

	// Mutation du panier après coup : la commande enregistrée ne bouge pas.
	req.Items[0].Price = 1
	req.Items[0].Name = "modifié"

	require.NotNil(t, orders.Created)
	assert.Equal(t, 24999.50, orders.Created.Items[0].Price)
	assert.Equal(t, "Robe Ankara", orders.Created.Items[0].Name)
}

func TestComplete_GuestCheckoutSkipsCartClear(t *testing.T) {
	svc, _, _, cart, _, _ := newTestService()
	req := testRequest()
	req.UserID = ""

	outcome, err := svc.Complete(context.Background(), PaymentSuccess{Reference: "ref"}, req)

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, outcome.State)
	// Pas de panier serveur pour un invité : rien à vider.
	assert.Empty(t, cart.Cleared)
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		{Price: 10.50, Quantity: 2},
		{Price: 5, Quantity: 3},
	}
	assert.Equal(t, 36.0, Subtotal(items))
	assert.Equal(t, 0.0, Subtotal(nil))
}
