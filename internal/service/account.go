package service

import (
	"context"
	"log/slog"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
	"github.com/vitrinedev/vitrine/internal/session"
)

// AccountService handles sign-in, sign-up and sign-out against the backend,
// and owns the session lifecycle around them.
type AccountService struct {
	client   *gateway.Client
	sessions session.Store
	logger   *slog.Logger
}

func NewAccountService(client *gateway.Client, sessions session.Store, logger *slog.Logger) *AccountService {
	return &AccountService{client: client, sessions: sessions, logger: logger}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// Registration is the sign-up request body.
type Registration struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
}

// Login exchanges credentials for a session. On success the session is
// stored and returned; the caller hands the token to the client.
func (s *AccountService) Login(ctx context.Context, creds Credentials) (*domain.Session, error) {
	const op = "service.account.login"

	var sess domain.Session
	if err := s.client.Post(ctx, op, "/login", creds, &sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, domain.Internal(nil, op, "login response is missing a token")
	}
	if sess.Role == "" {
		sess.Role = domain.RoleCustomer
	}

	if err := s.sessions.Put(ctx, &sess); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "Could not store the session")
	}

	s.logger.Info("user signed in",
		slog.String("user_id", sess.UserID),
		slog.String("role", sess.Role),
	)
	return &sess, nil
}

// Register creates a new account. The backend signs nobody in on sign-up;
// the client follows up with Login.
func (s *AccountService) Register(ctx context.Context, reg Registration) error {
	const op = "service.account.register"
	return s.client.Post(ctx, op, "/cadastro", reg, nil)
}

// Logout destroys the session for the token in ctx. Destroying an already
// absent session is not an error.
func (s *AccountService) Logout(ctx context.Context) error {
	const op = "service.account.logout"

	token := domain.TokenFromContext(ctx)
	if token == "" {
		return nil
	}
	if err := s.sessions.Clear(ctx, token); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "Could not clear the session")
	}
	return nil
}
