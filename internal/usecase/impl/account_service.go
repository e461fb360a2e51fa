package impl

import (
	"context"
	"log/slog"
	"time"

	"horeca/config"
	deliverycontext "horeca/internal/delivery/context"
	"horeca/internal/domain/entity"
	domainerrors "horeca/internal/domain/errors"
	"horeca/internal/domain/repository"
	"horeca/internal/domain/service"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLocale = "nl-BE"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	identityVerifier  service.IdentityVerifier
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityVerifier service.IdentityVerifier `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		identityVerifier:  params.IdentityVerifier,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	locale := input.Locale
	if locale == "" {
		locale = defaultLocale
	}

	var registeredUser *entity.User

	// The user row and its credential are created in one transaction so a
	// half-registered account can never exist.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			ID:       uuid.New(),
			Email:    input.Email,
			Phone:    input.Phone,
			FullName: input.FullName,
			Locale:   locale,
			IsActive: true,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.log(ctx).Debug("Account registered successfully", slog.Any("user_id", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the email/password login process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			// Covers ErrAuthNotFound; an unknown email reads as a bad credential.
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}
		if !user.IsActive {
			return domainerrors.ErrInvalidCredentials.WrapMessage("account is deactivated")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := srv.storeRefreshToken(ctx, repoFactory, user.ID, refreshTokenString); err != nil {
			return err
		}

		now := time.Now()
		user.LastLoginAt = &now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to record login time")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("user_id", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// LoginWithIdentity authenticates a hosted-provider ID token, creating the
// local account on first login.
func (srv *accountService) LoginWithIdentity(ctx context.Context, input *usecase.IdentityLoginInput) (*usecase.LoginOutput, error) {
	if srv.identityVerifier == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("identity login is not configured")
	}

	identity, err := srv.identityVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Identity token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("identity token verification failed")
	}

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateIdentityUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return domainerrors.ErrInvalidCredentials.WrapMessage("account is deactivated")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := srv.storeRefreshToken(ctx, repoFactory, user.ID, refreshTokenString); err != nil {
			return err
		}

		now := time.Now()
		user.LastLoginAt = &now
		if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to record login time")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Identity login failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute identity login transaction")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken rotates a valid refresh token into a new token pair.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		oldHash := srv.tokenService.HashToken(input.RefreshToken)
		if _, err := refreshRepo.FindRefreshTokenByHash(ctx, oldHash); err != nil {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
		}

		var err error
		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			UserID:    claims.UserID,
			TokenHash: srv.tokenService.HashToken(newRefreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		// Rotation: the old session record dies with the old token.
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, oldHash); err != nil {
			srv.log(ctx).Warn("Failed to delete rotated refresh token", slog.Any("error", err))
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("user_id", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout ends the session identified by the refresh token.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Still delete the stored session; an expired token should not keep
		// its database row alive.
		srv.log(ctx).Debug("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Warn("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Debug("Successfully logged out")

	return nil
}

// LogoutAllDevices ends every session the user holds.
func (srv *accountService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to delete all refresh tokens", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to delete all refresh tokens")
	}
	srv.log(ctx).Info("Logged out from all devices", slog.Any("user_id", userID))

	return nil
}

// findOrCreateIdentityUser finds the local account linked to the provider
// identity, creating user and credential rows on first login.
func (srv *accountService) findOrCreateIdentityUser(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.IdentityUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeFirebase, identity.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user for identity login")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	srv.log(ctx).Info("Identity user not found, creating account", slog.String("email", identity.Email))

	newUser := &entity.User{
		ID:       uuid.New(),
		Email:    identity.Email,
		FullName: identity.Name,
		Locale:   defaultLocale,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.WithStack(err)
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderTypeFirebase,
		ProviderUserID: identity.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.WithStack(err)
	}

	return newUser, nil
}

// storeRefreshToken enforces the session limit and persists the new session.
func (srv *accountService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if srv.maxActiveSessions > 0 {
		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded.WrapMessage("active session limit exceeded")
		}
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
