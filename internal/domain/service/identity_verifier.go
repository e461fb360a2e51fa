package service

import "context"

// IdentityUser represents user information verified against a hosted identity provider.
type IdentityUser struct {
	ID            string // Provider-specific user ID (the token's 'sub' claim).
	Email         string // User's email address.
	Name          string // User's display name, if the provider carries one.
	EmailVerified bool   // Whether the email is verified by the provider.
}

// IdentityVerifier defines the interface for verifying hosted-provider ID tokens.
// It is used when the client authenticates against an external identity service
// (e.g. Firebase Auth) and presents the resulting ID token directly.
type IdentityVerifier interface {
	// VerifyIDToken verifies an ID token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityUser, error)
}
