// Package middleware holds the HTTP middleware for the storefront surface.
//
// Error responses here mirror the handler package's shapes but stay
// self-contained: handler imports middleware for GetLogger, so the reverse
// import would cycle.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// errorBody is the JSON error envelope the storefront client understands.
// Redirect, when set, tells the client where to navigate.
type errorBody struct {
	Error    errorDetail `json:"error"`
	Redirect string      `json:"redirect,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, r *http.Request, err error, redirect string) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	status := errorCodeToHTTPStatus(code)

	logger := GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if reqID := domain.RequestIDFromContext(r.Context()); reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}
	if status >= 500 {
		logger.Error("middleware error", attrs...)
	} else {
		logger.Info("middleware error", attrs...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{
		Error:    errorDetail{Code: code, Message: message},
		Redirect: redirect,
	})
}

// errorCodeToHTTPStatus maps domain error codes to HTTP statuses.
func errorCodeToHTTPStatus(code string) int {
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
