package checkout

import (
	"context"

	"zuri_back_end/internal/models"
)

// MockCustomerStore implémente CustomerStore pour les tests.
type MockCustomerStore struct {
	ID      string
	Err     error
	Calls   int
	Emails  []string
	Totals  []float64
	Profile models.CustomerProfile
}

func (m *MockCustomerStore) Upsert(_ context.Context, email string, profile models.CustomerProfile, orderTotal float64) (string, error) {
	m.Calls++
	m.Emails = append(m.Emails, email)
	m.Totals = append(m.Totals, orderTotal)
	m.Profile = profile
	if m.Err != nil {
		return "", m.Err
	}
	return m.ID, nil
}

// MockOrderStore implémente OrderStore pour les tests.
type MockOrderStore struct {
	Err     error
	Calls   int
	Created *models.Order // capture la commande passée à Create
}

func (m *MockOrderStore) Create(_ context.Context, order models.Order) (models.Order, error) {
	m.Calls++
	if m.Err != nil {
		return models.Order{}, m.Err
	}
	order.ID = "11111111-2222-3333-4444-555555555555"
	m.Created = &order
	return order, nil
}

// MockCartStore implémente CartStore pour les tests.
type MockCartStore struct {
	Err     error
	Cleared []string
}

func (m *MockCartStore) Clear(_ context.Context, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Cleared = append(m.Cleared, userID)
	return nil
}

// MockDispatcher implémente Dispatcher pour les tests.
type MockDispatcher struct {
	Err   error
	Calls int
	Order models.Order
}

func (m *MockDispatcher) SendConfirmation(_ context.Context, order models.Order, _ string) error {
	m.Calls++
	m.Order = order
	return m.Err
}

// MockNoticeSink capture les messages destinés à l'utilisateur.
type MockNoticeSink struct {
	Levels   []string
	Messages []string
}

func (m *MockNoticeSink) Notify(level, message string) {
	m.Levels = append(m.Levels, level)
	m.Messages = append(m.Messages, message)
}
