// Package handler holds the JSON response and request-decoding helpers
// shared by the storefront and admin route handlers.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
	"github.com/vitrinedev/vitrine/internal/middleware"
)

// ErrorResponse is the JSON error envelope. Redirect, when set, tells the
// storefront client where to navigate: /login after an expired session,
// /error after a transport failure.
type ErrorResponse struct {
	Error    ErrorDetail `json:"error"`
	Redirect string      `json:"redirect,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// RespondError maps a domain error to its HTTP status and writes the error
// envelope. Expired sessions and unreachable-backend errors carry a redirect
// so the client lands on the right page.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := StatusForCode(code)

	redirect := ""
	switch {
	case errors.Is(err, gateway.ErrAuthExpired):
		redirect = "/login"
	case code == domain.ENETWORK:
		redirect = "/error?mensagem=" + url.QueryEscape(message)
	}

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if reqID := domain.RequestIDFromContext(r.Context()); reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}
	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request failed", attrs...)
	}

	RespondJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Fields:  domain.GetValidationFields(err),
		},
		Redirect: redirect,
	})
}

// StatusForCode maps domain error codes to HTTP statuses.
func StatusForCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EPAYMENT:
		return http.StatusPaymentRequired
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ENETWORK:
		return http.StatusBadGateway
	case domain.EINTERNAL:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
