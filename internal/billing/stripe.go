package billing

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// StripeConfig contains configuration for the Stripe provider.
type StripeConfig struct {
	// APIKey is the Stripe secret key (sk_test_... or sk_live_...)
	APIKey string
}

// Validate checks that required configuration is present.
func (c *StripeConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("stripe: API key is required")
	}
	return nil
}

// IsTestMode returns true if using test mode API keys.
func (c *StripeConfig) IsTestMode() bool {
	return len(c.APIKey) > 7 && c.APIKey[:8] == "sk_test_"
}

// StripeProvider implements Provider using the Stripe Go SDK.
type StripeProvider struct {
	config StripeConfig
}

// NewStripeProvider creates a Stripe billing provider.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	stripe.Key = config.APIKey
	return &StripeProvider{config: config}, nil
}

// CreatePaymentIntent creates a Stripe payment intent.
func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	piParams := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(params.AmountCents),
		Currency:           stripe.String(params.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	piParams.Context = ctx
	if params.Description != "" {
		piParams.Description = stripe.String(params.Description)
	}
	if params.IdempotencyKey != "" {
		piParams.SetIdempotencyKey(params.IdempotencyKey)
	}
	for key, value := range params.Metadata {
		piParams.AddMetadata(key, value)
	}

	pi, err := paymentintent.New(piParams)
	if err != nil {
		return nil, mapStripeError(err, "billing.create_intent")
	}
	return convertPaymentIntent(pi), nil
}

// ConfirmPaymentIntent attaches the payment method and confirms the intent.
func (p *StripeProvider) ConfirmPaymentIntent(ctx context.Context, params ConfirmPaymentIntentParams) (*PaymentIntent, error) {
	confirmParams := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(params.PaymentMethodID),
	}
	confirmParams.Context = ctx

	pi, err := paymentintent.Confirm(params.PaymentIntentID, confirmParams)
	if err != nil {
		return nil, mapStripeError(err, "billing.confirm_intent")
	}
	return convertPaymentIntent(pi), nil
}

// GetPaymentIntent retrieves an existing payment intent.
func (p *StripeProvider) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	getParams := &stripe.PaymentIntentParams{}
	getParams.Context = ctx

	pi, err := paymentintent.Get(paymentIntentID, getParams)
	if err != nil {
		return nil, mapStripeError(err, "billing.get_intent")
	}
	return convertPaymentIntent(pi), nil
}

// convertPaymentIntent maps the SDK type onto the provider-neutral one.
func convertPaymentIntent(pi *stripe.PaymentIntent) *PaymentIntent {
	intent := &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		CreatedAt:    time.Unix(pi.Created, 0),
	}
	if pi.LastPaymentError != nil {
		intent.LastPaymentError = &PaymentError{
			Code:        string(pi.LastPaymentError.Code),
			Message:     pi.LastPaymentError.Msg,
			DeclineCode: string(pi.LastPaymentError.DeclineCode),
		}
	}
	return intent
}

// mapStripeError turns SDK errors into domain errors. Card failures become
// payment errors with the provider's message; everything else is internal.
func mapStripeError(err error, op string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeCard {
			return &domain.Error{
				Code:    domain.EPAYMENT,
				Op:      op,
				Message: stripeErr.Msg,
				Err:     err,
			}
		}
		return domain.Internal(err, op, "Payment provider error")
	}
	return domain.Internal(err, op, "Payment provider unreachable")
}
