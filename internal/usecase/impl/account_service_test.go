package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"horeca/config"
	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	domainservice "horeca/internal/domain/service"
	mockservice "horeca/internal/mocks/service"
	"horeca/internal/usecase"
)

type accountMocks struct {
	factory      *stubRepoFactory
	hasher       *mockservice.MockPasswordHasher
	tokenService *mockservice.MockTokenService
	verifier     *mockservice.MockIdentityVerifier
}

func newAccountService(t *testing.T, cfg *config.Config) (usecase.AccountUsecase, accountMocks) {
	t.Helper()

	m := accountMocks{
		factory:      newStubRepoFactory(t),
		hasher:       mockservice.NewMockPasswordHasher(t),
		tokenService: mockservice.NewMockTokenService(t),
		verifier:     mockservice.NewMockIdentityVerifier(t),
	}

	svc := NewAccountService(AccountServiceParams{
		TxManager:        &stubTxManager{factory: m.factory},
		RefreshTokenRepo: m.factory.refreshRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		IdentityVerifier: m.verifier,
		Config:           cfg,
		Logger:           slog.Default(),
	})

	return svc, m
}

func TestAccountService_Register(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.hasher.EXPECT().Hash("wachtwoord123").Return("hashed-password", nil)
	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jan@example.be").
		Return(nil, repository.ErrAuthNotFound)
	m.factory.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.factory.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).Return(nil)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "jan@example.be",
		Password: "wachtwoord123",
		FullName: "Jan Peeters",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)

	assert.Equal(t, "jan@example.be", output.User.Email)
	assert.Equal(t, "Jan Peeters", output.User.FullName)
	assert.True(t, output.User.IsActive)
	assert.NotEqual(t, uuid.Nil, output.User.ID)

	// An unspecified locale defaults to the Flemish one.
	assert.Equal(t, "nl-BE", output.User.Locale)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.hasher.EXPECT().Hash("wachtwoord123").Return("hashed-password", nil)
	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jan@example.be").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "jan@example.be",
		Password: "wachtwoord123",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Login(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jan@example.be").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	m.hasher.EXPECT().Check("wachtwoord123", "stored-hash").Return(true)
	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "jan@example.be", IsActive: true}, nil)
	m.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	m.factory.refreshRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)
	m.factory.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "jan@example.be",
		Password: "wachtwoord123",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	require.NotNil(t, output.User)
	assert.NotNil(t, output.User.LastLoginAt)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jan@example.be").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	m.hasher.EXPECT().Check("verkeerd", "stored-hash").Return(false)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "jan@example.be",
		Password: "verkeerd",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "niemand@example.be").
		Return(nil, repository.ErrAuthNotFound)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "niemand@example.be",
		Password: "wachtwoord123",
	})

	// An unknown email reads as a bad credential, not as a missing account.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_DeactivatedAccount(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jan@example.be").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	m.hasher.EXPECT().Check("wachtwoord123", "stored-hash").Return(true)
	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, IsActive: false}, nil)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "jan@example.be",
		Password: "wachtwoord123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_SessionLimit(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{
		Auth: &config.AuthConfig{MaxActiveSessions: 2},
	})

	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jan@example.be").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
	m.hasher.EXPECT().Check("wachtwoord123", "stored-hash").Return(true)
	m.factory.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, IsActive: true}, nil)
	m.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	m.factory.refreshRepo.EXPECT().CountActiveSessionsByUserID(mock.Anything, userID).Return(2, nil)

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "jan@example.be",
		Password: "wachtwoord123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestAccountService_RefreshToken_Rotation(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&domainservice.Claims{UserID: userID, Type: "refresh"}, nil)
	m.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	m.factory.refreshRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)
	m.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	m.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	m.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	m.factory.refreshRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)

	// Rotation retires the presented token's session.
	m.factory.refreshRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "old-hash").Return(nil)

	output, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "old-refresh",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAccountService_RefreshToken_UnknownSession(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&domainservice.Claims{UserID: userID, Type: "refresh"}, nil)
	m.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	m.factory.refreshRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "old-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	// A syntactically valid token whose session row is gone (logged out,
	// rotated elsewhere) must not mint new credentials.
	_, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "old-refresh",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_RefreshToken_InvalidToken(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "garbage",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_Logout(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&domainservice.Claims{UserID: userID, Type: "refresh"}, nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.factory.refreshRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "refresh-hash").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh-token"}))
}

func TestAccountService_Logout_ExpiredTokenStillDeletesSession(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.tokenService.EXPECT().ValidateRefreshToken("expired").
		Return(nil, errors.New("token is expired"))
	m.tokenService.EXPECT().HashToken("expired").Return("expired-hash")
	m.factory.refreshRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, "expired-hash").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "expired"}))
}

func TestAccountService_LogoutAllDevices(t *testing.T) {
	userID := uuid.New()
	svc, m := newAccountService(t, &config.Config{})

	m.factory.refreshRepo.EXPECT().DeleteRefreshTokensByUserID(mock.Anything, userID).Return(nil)

	assert.NoError(t, svc.LogoutAllDevices(context.Background(), userID))
}

func TestAccountService_LoginWithIdentity_FirstLoginCreatesAccount(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.verifier.EXPECT().VerifyIDToken(mock.Anything, "firebase-id-token").
		Return(&domainservice.IdentityUser{
			ID:    "firebase-uid",
			Email: "an@example.be",
			Name:  "An Vermeulen",
		}, nil)
	m.factory.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeFirebase, "firebase-uid").
		Return(nil, repository.ErrAuthNotFound)
	m.factory.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.factory.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.Anything).Return(nil)
	m.tokenService.EXPECT().GenerateTokens(mock.Anything).Return("access-token", "refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	m.factory.refreshRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)
	m.factory.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	output, err := svc.LoginWithIdentity(context.Background(), &usecase.IdentityLoginInput{
		IDToken: "firebase-id-token",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", output.AccessToken)
	require.NotNil(t, output.User)
	assert.Equal(t, "an@example.be", output.User.Email)
	assert.Equal(t, "An Vermeulen", output.User.FullName)
	assert.True(t, output.User.IsActive)
}

func TestAccountService_LoginWithIdentity_BadToken(t *testing.T) {
	svc, m := newAccountService(t, &config.Config{})

	m.verifier.EXPECT().VerifyIDToken(mock.Anything, "garbage").
		Return(nil, errors.New("invalid signature"))

	_, err := svc.LoginWithIdentity(context.Background(), &usecase.IdentityLoginInput{IDToken: "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_LoginWithIdentity_NotConfigured(t *testing.T) {
	factory := newStubRepoFactory(t)
	svc := NewAccountService(AccountServiceParams{
		TxManager:        &stubTxManager{factory: factory},
		RefreshTokenRepo: factory.refreshRepo,
		Hasher:           mockservice.NewMockPasswordHasher(t),
		TokenService:     mockservice.NewMockTokenService(t),
		Config:           &config.Config{},
		Logger:           slog.Default(),
	})

	_, err := svc.LoginWithIdentity(context.Background(), &usecase.IdentityLoginInput{IDToken: "any"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
