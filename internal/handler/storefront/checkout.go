package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vitrinedev/vitrine/internal/checkout"
	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/handler"
)

// CheckoutHandler drives the payment routes. Each signed-in user gets one
// checkout flow, looked up by session token.
type CheckoutHandler struct {
	flows          *checkout.Manager
	publishableKey string
}

func NewCheckoutHandler(flows *checkout.Manager, publishableKey string) *CheckoutHandler {
	return &CheckoutHandler{flows: flows, publishableKey: publishableKey}
}

// paymentRequest covers both payment routes. Amount is in minor units when
// given; Total is the decimal cart total the client navigated with. Both are
// optional: with neither, the authoritative cart is fetched.
type paymentRequest struct {
	PaymentMethodID string   `json:"paymentMethodId"`
	Amount          int64    `json:"amount"`
	Total           *float64 `json:"total"`
	Currency        string   `json:"currency"`
}

func (req *paymentRequest) amountRequest() checkout.AmountRequest {
	ar := checkout.AmountRequest{
		ExplicitCents: req.Amount,
		Currency:      req.Currency,
	}
	if req.Total != nil {
		ar.SnapshotTotal = *req.Total
		ar.HasSnapshot = true
	}
	return ar
}

// decodePayment tolerates an empty body: every field has a fallback.
func decodePayment(r *http.Request) (*paymentRequest, error) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, domain.Invalid("handler.checkout.decode", "Request body must be valid JSON")
	}
	return &req, nil
}

// Config handles GET /config
func (h *CheckoutHandler) Config(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]string{
		"publishableKey": h.publishableKey,
	})
}

// CreateIntent handles POST /create-payment-intent
func (h *CheckoutHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	req, err := decodePayment(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	flow := h.flowFor(r)
	flow.Retry()

	result, err := flow.Prepare(r.Context(), req.amountRequest())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, result)
}

// PayCard handles POST /criar-pagamento-cartao. It prepares the intent if
// needed and confirms it with the given payment method in one round trip.
func (h *CheckoutHandler) PayCard(w http.ResponseWriter, r *http.Request) {
	req, err := decodePayment(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if req.PaymentMethodID == "" {
		handler.RespondError(w, r, domain.ErrPaymentMethodMissing)
		return
	}

	flow := h.flowFor(r)
	flow.Retry()

	// Prepare realigns the intent with the amount being charged; with an
	// unchanged amount it reuses the one already awaiting card input.
	if flow.State() != domain.CheckoutConfirming {
		if _, err := flow.Prepare(r.Context(), req.amountRequest()); err != nil {
			handler.RespondError(w, r, err)
			return
		}
	}

	result, err := flow.Submit(r.Context(), req.PaymentMethodID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, result)
}

// Confirm handles POST /confirmar-pagamento, called after the client
// completed a card challenge.
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	flow := h.flowFor(r)

	result, err := flow.Resolve(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, result)
}

func (h *CheckoutHandler) flowFor(r *http.Request) *checkout.Flow {
	return h.flows.FlowFor(domain.TokenFromContext(r.Context()))
}
