package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"zuri_back_end/internal/currency"

	"github.com/google/uuid"
)

const DefaultBaseURL = "https://api.paystack.co"

// WidgetConfig : configuration consommée telle quelle par le widget de
// paiement côté front. Montant en unités mineures, devise normalisée.
type WidgetConfig struct {
	Reference string   `json:"reference"`
	Email     string   `json:"email"`
	Amount    int64    `json:"amount"`
	Currency  string   `json:"currency"`
	PublicKey string   `json:"publicKey"`
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	CustomFields []CustomField `json:"custom_fields"`
}

type CustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

// NewReference génère une référence de transaction fraîche. Le gateway
// la reprend telle quelle dans ses callbacks et son API verify.
func NewReference() string {
	return "ZURI-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// BuildWidgetConfig arme le widget : devise passée au crible de
// Normalize, montant converti en unités mineures.
func BuildWidgetConfig(email string, amount float64, storeCurrency string, fields []CustomField) WidgetConfig {
	return WidgetConfig{
		Reference: NewReference(),
		Email:     email,
		Amount:    currency.ToMinorUnits(amount),
		Currency:  currency.Normalize(storeCurrency),
		PublicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),
		Metadata:  Metadata{CustomFields: fields},
	}
}

// VerifiedTransaction : sous-ensemble de la réponse verify qui nous sert.
type VerifiedTransaction struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
}

// MatchesOrder compare la transaction capturée au total attendu du
// panier. Une référence valide pour un autre montant (ou une devise hors
// du set supporté) ne doit jamais aboutir à une commande "payée".
func (t *VerifiedTransaction) MatchesOrder(total float64) error {
	expected := currency.ToMinorUnits(total)
	if t.Amount != expected {
		return fmt.Errorf("montant capturé %d ≠ attendu %d (référence %s)", t.Amount, expected, t.Reference)
	}
	if currency.Normalize(t.Currency) != t.Currency {
		return fmt.Errorf("devise capturée %q non supportée (référence %s)", t.Currency, t.Reference)
	}
	return nil
}

type verifyResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    VerifiedTransaction `json:"data"`
}

// Client : accès serveur à l'API du gateway (clé secrète, jamais exposée
// au front).
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

func NewClient(secret string) *Client {
	base := os.Getenv("PAYSTACK_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL: base,
		secret:  secret,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL sert aux tests (serveur httptest).
func NewClientWithBaseURL(secret, baseURL string) *Client {
	return &Client{baseURL: baseURL, secret: secret, http: &http.Client{Timeout: 15 * time.Second}}
}

// VerifyTransaction confirme côté serveur qu'une référence correspond
// bien à une transaction capturée. On ne fait jamais confiance au seul
// callback du widget.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifiedTransaction, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("appel gateway: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("gateway a répondu %d pour %s", res.StatusCode, reference)
	}

	var body verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("réponse gateway illisible: %v", err)
	}
	if !body.Status {
		return nil, fmt.Errorf("vérification refusée: %s", body.Message)
	}
	if body.Data.Status != "success" {
		return nil, fmt.Errorf("transaction %s non capturée (statut %s)", reference, body.Data.Status)
	}

	return &body.Data, nil
}
