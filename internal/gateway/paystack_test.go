package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWidgetConfig(t *testing.T) {
	cfg := BuildWidgetConfig("ada@example.com", 199.99, "NGN", []CustomField{
		{DisplayName: "Articles", VariableName: "items_count", Value: "3"},
	})

	assert.Equal(t, "ada@example.com", cfg.Email)
	assert.Equal(t, int64(19999), cfg.Amount)
	assert.Equal(t, "NGN", cfg.Currency)
	assert.NotEmpty(t, cfg.Reference)
	require.Len(t, cfg.Metadata.CustomFields, 1)
	assert.Equal(t, "items_count", cfg.Metadata.CustomFields[0].VariableName)
}

func TestBuildWidgetConfig_UnsupportedCurrencyFallsBack(t *testing.T) {
	cfg := BuildWidgetConfig("ada@example.com", 10, "JPY", nil)
	assert.Equal(t, "USD", cfg.Currency)
}

func TestNewReference_Unique(t *testing.T) {
	a, b := NewReference(), NewReference()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "ZURI-")
}

func TestMatchesOrder(t *testing.T) {
	tx := &VerifiedTransaction{Reference: "ZURI-m1", Amount: 19999, Currency: "NGN"}
	assert.NoError(t, tx.MatchesOrder(199.99))
}

func TestMatchesOrder_AmountMismatch(t *testing.T) {
	// Référence valide pour une charge de 100 kobo : ne doit jamais
	// valider un panier plein tarif.
	tx := &VerifiedTransaction{Reference: "ZURI-m2", Amount: 100, Currency: "NGN"}
	err := tx.MatchesOrder(64999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZURI-m2")
}

func TestMatchesOrder_UnsupportedCurrency(t *testing.T) {
	tx := &VerifiedTransaction{Reference: "ZURI-m3", Amount: 1000, Currency: "JPY"}
	err := tx.MatchesOrder(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JPY")
}

func TestVerifyTransaction_Success(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"reference": "ZURI-abc",
				"status":    "success",
				"amount":    19999,
				"currency":  "NGN",
			},
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("sk_test_xxx", srv.URL)
	tx, err := c.VerifyTransaction(context.Background(), "ZURI-abc")

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk_test_xxx", gotAuth)
	assert.Equal(t, "/transaction/verify/ZURI-abc", gotPath)
	assert.Equal(t, int64(19999), tx.Amount)
	assert.Equal(t, "NGN", tx.Currency)
}

func TestVerifyTransaction_FailedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data":   map[string]interface{}{"reference": "ZURI-ko", "status": "abandoned"},
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("sk", srv.URL)
	_, err := c.VerifyTransaction(context.Background(), "ZURI-ko")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abandoned")
}

func TestVerifyTransaction_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("sk", srv.URL)
	_, err := c.VerifyTransaction(context.Background(), "ZURI-x")
	require.Error(t, err)
}
