package main

import (
	"context"
	"log/slog"
	"os"

	"horeca/config"
	"horeca/internal/delivery"
	"horeca/internal/delivery/http"
	"horeca/internal/delivery/http/middleware"
	"horeca/internal/delivery/http/router/handler"
	"horeca/internal/domain/service"
	"horeca/internal/infra/auth"
	"horeca/internal/infra/auth/firebase"
	"horeca/internal/infra/cache"
	logs "horeca/internal/infra/log"
	"horeca/internal/infra/persistence/postgres"
	"horeca/internal/infra/pubsub"
	"horeca/internal/infra/qrcode"
	"horeca/internal/infra/storage"
	"horeca/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.New,
			cache.NewAdminVerdictCache,
			newAssetStorage,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewMerchantRepository,
			postgres.NewLocationRepository,
			postgres.NewMembershipRepository,
			postgres.NewPersonnelRepository,
			postgres.NewInvitationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasherFromConfig,
			auth.NewJWTService,
			auth.NewGuardCookieSigner,
			newIdentityVerifier,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier creates the hosted-identity verifier when configured.
// Identity login stays disabled otherwise.
func newIdentityVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, nil // Hosted identity is optional
	}

	return firebase.NewVerifier(ctx, cfg.Firebase)
}

// newQRCodeService creates the invitation QR renderer when configured.
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	if cfg.Invitation == nil || cfg.Invitation.AcceptBaseURL == "" {
		return nil, nil // Invitation QR codes are optional
	}

	return qrcode.NewQRCodeService(cfg.Invitation)
}

// newAssetStorage opens the asset bucket when configured.
func newAssetStorage(params storage.Params) (service.AssetStorage, error) {
	if params.Config.Assets == nil || params.Config.Assets.BucketURL == "" {
		return nil, nil // Asset uploads are optional
	}

	return storage.New(params)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthorizationService,
			impl.NewPermissionService,
			impl.NewAccountService,
			impl.NewMerchantService,
			impl.NewLocationService,
			impl.NewMembershipService,
			impl.NewInvitationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMerchantHandler,
			handler.NewLocationHandler,
			handler.NewMembershipHandler,
			handler.NewInvitationHandler,
			handler.NewPermissionHandler,
			handler.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
