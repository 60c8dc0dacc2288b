package checkout

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vitrinedev/vitrine/internal/billing"
	"github.com/vitrinedev/vitrine/internal/domain"
)

const defaultCurrency = "brl"

// CartSource is the slice of the cart service a checkout flow needs: the
// authoritative total when no amount was handed in, and clearing the cart
// after a successful charge. Both operate on the session carried in ctx.
type CartSource interface {
	Fetch(ctx context.Context) (*domain.Cart, error)
	Clear(ctx context.Context) error
}

// PrepareResult is returned when a payment intent is ready for card input.
type PrepareResult struct {
	ClientSecret string `json:"clientSecret"`
	IntentID     string `json:"-"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// SubmitResult reports the outcome of a card submission. When RequiresAction
// is set the client must complete the challenge with ClientSecret and then
// call Resolve; otherwise OrderID identifies the completed order.
type SubmitResult struct {
	ClientSecret   string `json:"clientSecret,omitempty"`
	RequiresAction bool   `json:"requiresAction"`
	OrderID        string `json:"orderId,omitempty"`
}

// Flow drives a single session's payment through its states. All methods are
// safe for concurrent use; a submission already in flight rejects a second
// one instead of double-charging.
type Flow struct {
	mu       sync.Mutex
	state    domain.CheckoutState
	intent   *billing.PaymentIntent
	currency string
	orderID  string

	provider billing.Provider
	carts    CartSource
	logger   *slog.Logger
}

func NewFlow(provider billing.Provider, carts CartSource, logger *slog.Logger) *Flow {
	return &Flow{
		state:    domain.CheckoutIdle,
		provider: provider,
		carts:    carts,
		logger:   logger,
	}
}

// State returns the current checkout state.
func (f *Flow) State() domain.CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OrderID returns the order identifier once the flow has succeeded.
func (f *Flow) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// Prepare resolves the charge amount and makes sure a payment intent for
// exactly that amount is awaiting card input. Re-entering with an unchanged
// amount reuses the intent; when the cart changed since the last entry a
// fresh intent replaces it, so the charge always matches what the shopper
// last saw. After a completed purchase Prepare starts the next one over.
//
// The lock is released around provider and cart calls so that State and the
// in-flight rejection in Submit stay responsive while the network is slow.
func (f *Flow) Prepare(ctx context.Context, req AmountRequest) (*PrepareResult, error) {
	const op = "checkout.prepare"

	f.mu.Lock()
	reentry := f.state == domain.CheckoutAwaitingCard && f.intentUsable()
	if !reentry {
		if err := f.transition(op, domain.CheckoutPreparingIntent); err != nil {
			f.mu.Unlock()
			return nil, err
		}
	}
	f.mu.Unlock()

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	amount, err := ResolveAmount(ctx, req, f.carts.Fetch)
	if err != nil {
		if !reentry {
			f.fail(op, err)
		}
		return nil, err
	}

	f.mu.Lock()
	if reentry && f.intent.AmountCents == amount && f.intent.Currency == currency {
		result := f.prepareResult()
		f.mu.Unlock()
		return result, nil
	}
	f.mu.Unlock()

	intent, err := f.provider.CreatePaymentIntent(ctx, billing.CreatePaymentIntentParams{
		AmountCents:    amount,
		Currency:       currency,
		Description:    "Compra na vitrine",
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		f.fail(op, err)
		return nil, err
	}

	f.mu.Lock()
	f.intent = intent
	f.currency = currency
	f.orderID = ""
	f.state = domain.CheckoutAwaitingCard
	result := f.prepareResult()
	f.mu.Unlock()
	return result, nil
}

// Submit confirms the intent with the given payment method. Only legal from
// AwaitingCard; a concurrent submission gets ErrSubmissionInFlight rather
// than a second confirmation attempt.
func (f *Flow) Submit(ctx context.Context, paymentMethodID string) (*SubmitResult, error) {
	const op = "checkout.submit"

	f.mu.Lock()
	if f.state.InFlight() {
		f.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}
	if paymentMethodID == "" {
		f.mu.Unlock()
		return nil, domain.ErrPaymentMethodMissing
	}
	if err := f.transition(op, domain.CheckoutSubmitting); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	intentID := f.intent.ID
	f.mu.Unlock()

	intent, err := f.provider.ConfirmPaymentIntent(ctx, billing.ConfirmPaymentIntentParams{
		PaymentIntentID: intentID,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		f.fail(op, err)
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent = intent

	switch intent.Status {
	case domain.IntentSucceeded:
		return f.succeed(ctx), nil
	case domain.IntentRequiresAction:
		f.state = domain.CheckoutConfirming
		return &SubmitResult{ClientSecret: intent.ClientSecret, RequiresAction: true}, nil
	default:
		err := paymentFailed(op, intent)
		f.failLocked(op, err)
		return nil, err
	}
}

// Resolve re-reads the intent after a client-side challenge and settles the
// flow one way or the other. Only legal from Confirming.
func (f *Flow) Resolve(ctx context.Context) (*SubmitResult, error) {
	const op = "checkout.resolve"

	f.mu.Lock()
	if f.state != domain.CheckoutConfirming {
		f.mu.Unlock()
		return nil, domain.ErrIllegalTransition
	}
	intentID := f.intent.ID
	f.mu.Unlock()

	intent, err := f.provider.GetPaymentIntent(ctx, intentID)
	if err != nil {
		f.fail(op, err)
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent = intent

	switch intent.Status {
	case domain.IntentSucceeded:
		return f.succeed(ctx), nil
	case domain.IntentProcessing:
		// Still settling on the provider side; stay in Confirming so the
		// client can poll again.
		return &SubmitResult{ClientSecret: intent.ClientSecret, RequiresAction: true}, nil
	default:
		err := paymentFailed(op, intent)
		f.failLocked(op, err)
		return nil, err
	}
}

// Retry moves a failed flow back to card input when the intent is still
// usable. When the intent is terminal it stays in Failed and the next
// Prepare creates a fresh intent.
func (f *Flow) Retry() domain.CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == domain.CheckoutFailed && f.intentUsable() {
		f.state = domain.CheckoutAwaitingCard
	}
	return f.state
}

func (f *Flow) prepareResult() *PrepareResult {
	return &PrepareResult{
		ClientSecret: f.intent.ClientSecret,
		IntentID:     f.intent.ID,
		AmountCents:  f.intent.AmountCents,
		Currency:     f.intent.Currency,
	}
}

// succeed is called with the lock held once the provider reports success.
// The cart clear is best effort: the payment already went through, so a
// clear failure is logged and the order still completes.
func (f *Flow) succeed(ctx context.Context) *SubmitResult {
	f.state = domain.CheckoutSucceeded
	f.orderID = uuid.NewString()

	if err := f.carts.Clear(ctx); err != nil {
		f.logger.Error("cart clear after successful payment failed",
			slog.String("order_id", f.orderID),
			slog.String("intent_id", f.intent.ID),
			slog.String("error", err.Error()),
		)
	}

	f.logger.Info("payment succeeded",
		slog.String("order_id", f.orderID),
		slog.String("intent_id", f.intent.ID),
		slog.Int64("amount_cents", f.intent.AmountCents),
	)
	return &SubmitResult{OrderID: f.orderID}
}

func (f *Flow) fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failLocked(op, err)
}

// failLocked requires f.mu to be held.
func (f *Flow) failLocked(op string, err error) {
	f.state = domain.CheckoutFailed
	f.logger.Warn("checkout failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

func (f *Flow) transition(op string, to domain.CheckoutState) error {
	if !domain.CanTransitionTo(f.state, to) {
		return domain.Errorf(domain.ECONFLICT, op, "cannot move from %s to %s", f.state, to)
	}
	f.state = to
	return nil
}

func (f *Flow) intentUsable() bool {
	return f.intent != nil &&
		f.intent.Status != domain.IntentSucceeded &&
		f.intent.Status != domain.IntentCanceled
}

func paymentFailed(op string, intent *billing.PaymentIntent) error {
	msg := "Payment was not completed. Check your card details and try again."
	if intent.LastPaymentError != nil && intent.LastPaymentError.Message != "" {
		msg = intent.LastPaymentError.Message
	}
	return &domain.Error{Code: domain.EPAYMENT, Message: msg, Op: op}
}
