package usecase

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInvitationInput defines the data required to invite a new member.
type CreateInvitationInput struct {
	Email          string
	Role           entity.MerchantRole
	LocationAccess []uuid.UUID
}

// InvitationUsecase defines the interface for membership invitations.
//
// An invitation is a pending membership grant: accepting it creates the
// membership with the role and location access recorded at invite time.
type InvitationUsecase interface {
	// CreateInvitation issues a single-use, expiring invitation. Requires the
	// admin role; inviting an owner requires the owner role.
	CreateInvitation(ctx context.Context, actorID, merchantID uuid.UUID, input *CreateInvitationInput) (*entity.Invitation, error)

	// ListInvitations returns the merchant's invitations, newest first.
	// Requires the admin role.
	ListInvitations(ctx context.Context, actorID, merchantID uuid.UUID) ([]*entity.Invitation, error)

	// GetInvitationQR renders the invitation's acceptance link as a PNG QR
	// code. Requires the admin role.
	GetInvitationQR(ctx context.Context, actorID, merchantID, invitationID uuid.UUID) ([]byte, error)

	// AcceptInvitation consumes a pending invitation and creates the
	// membership, atomically. The accepting user's email must match the
	// invitation.
	AcceptInvitation(ctx context.Context, userID uuid.UUID, token string) (*entity.Membership, error)
}
