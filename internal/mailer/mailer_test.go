package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zuri_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:               "o-1",
		OrderNumber:      "ORD-1700000000000-42",
		Email:            "ada@example.com",
		Currency:         "NGN",
		Subtotal:         64999,
		ShippingFee:      0,
		Total:            64999,
		PaymentReference: "ZURI-refxyz",
		Items: []models.OrderItem{
			{Name: "Robe Ankara", Variant: "M", Quantity: 2, Price: 24999.50},
			{Name: "Sac Kente", Quantity: 1, Price: 15000},
		},
		ShippingAddress: models.ShippingAddress{Street: "12 Allen Avenue", City: "Lagos", PostalCode: "100001", Country: "NG"},
		CreatedAt:       time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderOrderConfirmation_Rows(t *testing.T) {
	html := RenderOrderConfirmation(sampleOrder(), "Ada", "")

	assert.Contains(t, html, "ORD-1700000000000-42")
	assert.Contains(t, html, "Robe Ankara (M)")
	assert.Contains(t, html, "Sac Kente")
	assert.Contains(t, html, "ZURI-refxyz")
	// Devise NGN : symbole naira sur les montants.
	assert.Contains(t, html, "₦64999.00")
}

func TestRenderOrderConfirmation_FreeShipping(t *testing.T) {
	html := RenderOrderConfirmation(sampleOrder(), "Ada", "")
	// Livraison à zéro : la ligne affiche FREE, jamais 0.00.
	assert.Contains(t, html, "FREE")
	assert.NotContains(t, html, "₦0.00")
}

func TestRenderOrderConfirmation_PaidShipping(t *testing.T) {
	o := sampleOrder()
	o.ShippingFee = 1500
	o.Total = o.Subtotal + o.ShippingFee
	html := RenderOrderConfirmation(o, "Ada", "")
	assert.Contains(t, html, "₦1500.00")
	assert.NotContains(t, html, "FREE")
}

func TestRenderOrderConfirmation_UnknownCurrencySymbolFallback(t *testing.T) {
	o := sampleOrder()
	o.Currency = "XOF"
	html := RenderOrderConfirmation(o, "Ada", "")
	// Devise hors jeu de symboles : on affiche le code brut.
	assert.Contains(t, html, "XOF64999.00")
}

func TestRenderOrderConfirmation_QRBlock(t *testing.T) {
	withQR := RenderOrderConfirmation(sampleOrder(), "Ada", "data:image/png;base64,AAAA")
	assert.Contains(t, withQR, "data:image/png;base64,AAAA")

	withoutQR := RenderOrderConfirmation(sampleOrder(), "Ada", "")
	assert.NotContains(t, withoutQR, "Track your order")
}

func TestClientSend_PayloadAndBearer(t *testing.T) {
	var gotAuth, gotType string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "re_key_123", "Zuri <orders@zuri.shop>")
	err := c.Send(context.Background(), "ada@example.com", "Hello", "<p>hi</p>")

	require.NoError(t, err)
	assert.Equal(t, "Bearer re_key_123", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "Zuri <orders@zuri.shop>", gotBody["from"])
	assert.Equal(t, []interface{}{"ada@example.com"}, gotBody["to"])
	assert.Equal(t, "<p>hi</p>", gotBody["html"])
}

func TestClientSend_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "re_key", "orders@zuri.shop")
	err := c.Send(context.Background(), "ada@example.com", "Hello", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
