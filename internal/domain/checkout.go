package domain

// Payment intent statuses reported by the payment provider.
const (
	IntentRequiresPaymentMethod = "requires_payment_method"
	IntentRequiresAction        = "requires_action"
	IntentProcessing            = "processing"
	IntentSucceeded             = "succeeded"
	IntentCanceled              = "canceled"
)

// CheckoutState identifies where a purchase attempt stands.
type CheckoutState string

const (
	CheckoutIdle            CheckoutState = "IDLE"
	CheckoutPreparingIntent CheckoutState = "PREPARING_INTENT"
	CheckoutAwaitingCard    CheckoutState = "AWAITING_CARD_INPUT"
	CheckoutSubmitting      CheckoutState = "SUBMITTING"
	CheckoutConfirming      CheckoutState = "CONFIRMING"
	CheckoutSucceeded       CheckoutState = "SUCCEEDED"
	CheckoutFailed          CheckoutState = "FAILED"
)

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}

// IsTerminal reports whether the attempt has settled. Settled states still
// admit a next attempt: Failed re-enters AwaitingCardInput or PreparingIntent
// depending on whether the intent is usable, Succeeded starts the next
// purchase over at PreparingIntent.
func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutSucceeded || s == CheckoutFailed
}

// InFlight reports whether a submission is being processed. The submit action
// is rejected in these states so a double-click can never create a second
// charge attempt.
func (s CheckoutState) InFlight() bool {
	return s == CheckoutSubmitting || s == CheckoutConfirming
}

// checkoutTransitions enumerates the legal state changes. Every transition is
// strictly sequential: intent creation completes before card confirmation,
// confirmation completes before cart clearing.
var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutIdle:            {CheckoutPreparingIntent},
	CheckoutPreparingIntent: {CheckoutAwaitingCard, CheckoutFailed},
	CheckoutAwaitingCard:    {CheckoutSubmitting, CheckoutFailed},
	CheckoutSubmitting:      {CheckoutConfirming, CheckoutSucceeded, CheckoutFailed},
	CheckoutConfirming:      {CheckoutSucceeded, CheckoutFailed},
	CheckoutSucceeded:       {CheckoutPreparingIntent},
	CheckoutFailed:          {CheckoutAwaitingCard, CheckoutPreparingIntent},
}

// CanTransitionTo reports whether moving from one checkout state to another
// is legal.
func CanTransitionTo(from, to CheckoutState) bool {
	for _, next := range checkoutTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var (
	ErrIllegalTransition    = &Error{Code: EINVALID, Message: "Illegal checkout state transition"}
	ErrSubmissionInFlight   = &Error{Code: ECONFLICT, Message: "A payment submission is already being processed"}
	ErrCartEmpty            = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrPaymentMethodMissing = &Error{Code: EINVALID, Message: "Card details are incomplete"}
)
