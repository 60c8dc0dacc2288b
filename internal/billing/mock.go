package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// MockProvider is a mock billing provider for testing.
// Simulates payment flows without calling the Stripe API.
type MockProvider struct {
	// CreatePaymentIntentFunc allows customizing intent creation behavior
	CreatePaymentIntentFunc func(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// ConfirmPaymentIntentFunc allows customizing confirmation behavior
	ConfirmPaymentIntentFunc func(ctx context.Context, params ConfirmPaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntentFunc allows customizing intent retrieval behavior
	GetPaymentIntentFunc func(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)

	// PaymentIntents stores created payment intents for retrieval
	PaymentIntents map[string]*PaymentIntent

	// CallLog tracks method calls for test assertions
	CallLog []string
}

// NewMockProvider creates a new mock billing provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		PaymentIntents: make(map[string]*PaymentIntent),
		CallLog:        []string{},
	}
}

// CreatePaymentIntent creates a mock payment intent.
func (m *MockProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	m.CallLog = append(m.CallLog, fmt.Sprintf("CreatePaymentIntent(%d, %s)", params.AmountCents, params.Currency))

	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(ctx, params)
	}

	// Default mock behavior: create an unconfirmed payment intent
	pi := &PaymentIntent{
		ID:           "pi_" + uuid.New().String(),
		ClientSecret: "pi_" + uuid.New().String() + "_secret_" + uuid.New().String(),
		AmountCents:  params.AmountCents,
		Currency:     params.Currency,
		Status:       domain.IntentRequiresPaymentMethod,
		CreatedAt:    time.Now(),
	}

	m.PaymentIntents[pi.ID] = pi
	return pi, nil
}

// ConfirmPaymentIntent confirms a mock payment intent.
func (m *MockProvider) ConfirmPaymentIntent(ctx context.Context, params ConfirmPaymentIntentParams) (*PaymentIntent, error) {
	m.CallLog = append(m.CallLog, fmt.Sprintf("ConfirmPaymentIntent(%s, %s)", params.PaymentIntentID, params.PaymentMethodID))

	if m.ConfirmPaymentIntentFunc != nil {
		return m.ConfirmPaymentIntentFunc(ctx, params)
	}

	pi, exists := m.PaymentIntents[params.PaymentIntentID]
	if !exists {
		return nil, domain.NotFound("billing.confirm_intent", "payment intent", params.PaymentIntentID)
	}

	// Default mock behavior: confirmation succeeds immediately
	pi.Status = domain.IntentSucceeded
	return pi, nil
}

// GetPaymentIntent retrieves a mock payment intent.
func (m *MockProvider) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	m.CallLog = append(m.CallLog, fmt.Sprintf("GetPaymentIntent(%s)", paymentIntentID))

	if m.GetPaymentIntentFunc != nil {
		return m.GetPaymentIntentFunc(ctx, paymentIntentID)
	}

	pi, exists := m.PaymentIntents[paymentIntentID]
	if !exists {
		return nil, domain.NotFound("billing.get_intent", "payment intent", paymentIntentID)
	}
	return pi, nil
}
