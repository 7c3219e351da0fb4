package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Client : fournisseur d'emails transactionnels, JSON sur HTTP avec clé
// Bearer. Toute réponse non-2xx est une erreur.
type Client struct {
	baseURL string
	apiKey  string
	from    string
	http    *http.Client
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func NewClient() *Client {
	base := os.Getenv("EMAIL_API_URL")
	if base == "" {
		base = "https://api.resend.com"
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Zuri <orders@zuri.shop>"
	}
	return &Client{
		baseURL: base,
		apiKey:  os.Getenv("EMAIL_API_KEY"),
		from:    from,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL sert aux tests (serveur httptest).
func NewClientWithBaseURL(baseURL, apiKey, from string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey, from: from, http: &http.Client{Timeout: 15 * time.Second}}
}

func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(emailPayload{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("appel fournisseur email: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("fournisseur email a répondu %d", res.StatusCode)
	}
	return nil
}
