// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"horeca/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Locale   string
}

// LoginInput defines the data required for an email/password login.
type LoginInput struct {
	Email    string
	Password string
}

// IdentityLoginInput carries an ID token issued by the hosted identity
// provider. The account is created on first login.
type IdentityLoginInput struct {
	IDToken string
}

// RefreshTokenInput defines the data required to rotate a token pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to end a single session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with an email/password credential.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates an email/password credential and opens a session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginWithIdentity authenticates a hosted-provider ID token, creating
	// the local account on first login.
	LoginWithIdentity(ctx context.Context, input *IdentityLoginInput) (*LoginOutput, error)

	// RefreshToken rotates a valid refresh token into a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout ends the session identified by the refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// LogoutAllDevices ends every session the user holds.
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
}
