package domain

// User roles as reported by the commerce backend.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "cliente"
)

// Session is the client-held proof of authentication plus cached user
// attributes. Created on successful login, destroyed on logout or when any
// authenticated call answers 401.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"usuarioId"`
	Name   string `json:"nomeUsuario"`
	Role   string `json:"tipoUsuario"`
}

// IsAdmin reports whether the session belongs to an administrator. This is a
// display affordance only; the backend remains the sole enforcement point.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

var ErrSessionNotFound = &Error{Code: EUNAUTHORIZED, Message: "Session not found"}
