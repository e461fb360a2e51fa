package repository

import (
	"context"

	"horeca/internal/domain/entity"
	"horeca/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for invitation persistence.
var (
	// ErrInvitationNotFound is returned when an invitation is not found.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrDuplicateInvitationToken is returned when the token unique constraint is violated.
	ErrDuplicateInvitationToken = errors.New("invitation token already exists")
)

// InvitationRepository defines the interface for pending membership grant persistence.
type InvitationRepository interface {
	// CreateInvitation persists a new invitation.
	CreateInvitation(ctx context.Context, invitation *entity.Invitation) error

	// FindInvitationByToken retrieves an invitation by its opaque token.
	FindInvitationByToken(ctx context.Context, token string) (*entity.Invitation, error)

	// FindInvitationByID retrieves an invitation by its unique ID.
	FindInvitationByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)

	// FindInvitationsByMerchant retrieves all invitations issued for a merchant.
	FindInvitationsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Invitation, error)

	// UpdateInvitation modifies an existing invitation (acceptance timestamp).
	UpdateInvitation(ctx context.Context, invitation *entity.Invitation) error
}
