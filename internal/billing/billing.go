package billing

import (
	"context"
	"time"
)

// Provider defines the interface for payment processing.
// Implementations can use Stripe, PayPal, Square, etc.
type Provider interface {
	// CreatePaymentIntent creates a payment intent for one checkout attempt.
	// Returns the intent with the client_secret the card fields confirm against.
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// ConfirmPaymentIntent attaches a tokenized payment method and confirms
	// the intent. The returned status may be requires_action when the card
	// demands a 3-D Secure style challenge.
	ConfirmPaymentIntent(ctx context.Context, params ConfirmPaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntent retrieves an existing payment intent, used to resolve
	// the outcome of a challenge completed on the client.
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
}

// CreatePaymentIntentParams contains parameters for creating a payment intent.
type CreatePaymentIntentParams struct {
	// AmountCents is the amount in the smallest currency unit (centavos for BRL).
	AmountCents int64

	// Currency code (ISO 4217) - e.g., "brl", "usd"
	Currency string

	// Description appears on the customer's statement and in the provider dashboard
	Description string

	// Metadata for filtering and reporting (include user_id where known)
	Metadata map[string]string

	// IdempotencyKey prevents duplicate payment intents for the same attempt
	IdempotencyKey string
}

// ConfirmPaymentIntentParams contains parameters for confirming an intent.
type ConfirmPaymentIntentParams struct {
	PaymentIntentID string

	// PaymentMethodID is the tokenized card (pm_...) produced by the
	// client-side SDK once every card field reported complete.
	PaymentMethodID string
}

// PaymentIntent represents a single-use payment attempt at the provider.
type PaymentIntent struct {
	// ID is the provider's payment intent ID (pi_...)
	ID string

	// ClientSecret is used by the client SDK to confirm or complete a challenge
	ClientSecret string

	// AmountCents is the amount in smallest currency unit
	AmountCents int64

	// Currency code
	Currency string

	// Status: requires_payment_method, requires_action, succeeded, ...
	Status string

	// CreatedAt is when the payment intent was created
	CreatedAt time.Time

	// LastPaymentError contains details if a confirmation attempt failed
	LastPaymentError *PaymentError
}

// PaymentError contains details about a failed payment attempt.
type PaymentError struct {
	Code        string // provider error code
	Message     string // human-readable message
	DeclineCode string // reason the card was declined (if applicable)
}
