package service

import (
	"context"
	"fmt"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// Access request review outcomes.
const (
	AccessPending  = "pendente"
	AccessApproved = "aprovado"
	AccessRejected = "rejeitado"
)

// AccessRequest is a customer's application for the administrator role,
// reviewed by an existing administrator.
type AccessRequest struct {
	ID          string `json:"_id"`
	UserID      string `json:"usuarioId"`
	Name        string `json:"nome"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	RequestedAt string `json:"dataSolicitacao"`
}

// RequestAccess files an access request for the signed-in customer. The
// backend keys requests by user, so filing twice answers 409.
func (s *AdminService) RequestAccess(ctx context.Context) (*AccessRequest, error) {
	const op = "service.admin.request_access"

	var req AccessRequest
	if err := s.client.Post(ctx, op, "/admin/solicitar-acesso", nil, &req); err != nil {
		return nil, err
	}

	s.logger.Info("admin access requested", "user_id", req.UserID)
	return &req, nil
}

// ListAccessRequests returns the pending access requests for review.
func (s *AdminService) ListAccessRequests(ctx context.Context) ([]AccessRequest, error) {
	const op = "service.admin.list_access_requests"

	var requests []AccessRequest
	if err := s.client.Get(ctx, op, "/admin/solicitacoes", &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []AccessRequest{}
	}
	return requests, nil
}

// ApproveAccessRequest grants the applicant the administrator role. The
// backend flips the request status and the account role together.
func (s *AdminService) ApproveAccessRequest(ctx context.Context, userID string) error {
	const op = "service.admin.approve_access_request"

	if userID == "" {
		return domain.NewValidationError(op, "usuarioId", "user id is required")
	}

	if err := s.client.Patch(ctx, op, fmt.Sprintf("/admin/solicitacoes/%s/aprovar", userID), nil, nil); err != nil {
		return err
	}

	s.logger.Info("admin access approved", "user_id", userID)
	return nil
}

// RejectAccessRequest declines and removes the applicant's request, leaving
// them free to apply again.
func (s *AdminService) RejectAccessRequest(ctx context.Context, userID string) error {
	const op = "service.admin.reject_access_request"

	if userID == "" {
		return domain.NewValidationError(op, "usuarioId", "user id is required")
	}

	if err := s.client.Delete(ctx, op, "/admin/solicitacoes/"+userID, nil); err != nil {
		return err
	}

	s.logger.Info("admin access rejected", "user_id", userID)
	return nil
}
