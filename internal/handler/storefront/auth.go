// Package storefront holds the shopper-facing route handlers.
package storefront

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// AuthHandler handles sign-in, sign-up and sign-out routes.
type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds service.Credentials
	if err := handler.Decode(r, &creds); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	sess, err := h.accounts.Login(r.Context(), creds)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, sess)
}

// Register handles POST /cadastro
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg service.Registration
	if err := handler.Decode(r, &reg); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.accounts.Register(r.Context(), reg); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "Cadastro realizado com sucesso",
	})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context()); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
