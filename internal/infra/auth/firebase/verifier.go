// Package firebase verifies Firebase Auth ID tokens for clients that
// authenticate against the hosted identity provider.
package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"horeca/config"
	"horeca/internal/domain/service"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewVerifier creates an identity verifier backed by Firebase Auth.
func NewVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityVerifier, error) {
	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken verifies an ID token and returns the identity it asserts.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityUser, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	identity := &service.IdentityUser{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	return identity, nil
}
