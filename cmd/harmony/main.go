package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"harmony/config"
	"harmony/internal/delivery"
	"harmony/internal/delivery/http"
	"harmony/internal/delivery/http/middleware"
	"harmony/internal/delivery/http/router/handler"
	"harmony/internal/domain/service"
	"harmony/internal/infra/auth"
	authfirebase "harmony/internal/infra/auth/firebase"
	logs "harmony/internal/infra/log"
	"harmony/internal/infra/notification"
	"harmony/internal/infra/payment"
	"harmony/internal/infra/persistence/postgres"
	"harmony/internal/infra/pubsub"
	"harmony/internal/infra/qrcode"
	"harmony/internal/infra/storage"
	"harmony/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMealRepository,
			postgres.NewReviewRepository,
			postgres.NewLikeRepository,
			postgres.NewRequestRepository,
			postgres.NewUpcomingMealRepository,
			postgres.NewPaymentRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewStripeGateway,
			storage.NewImageStore,
			newIdentityVerifier,
			newPushSender,
			newQRCodeService,
		),
	)
}

// newIdentityVerifier creates the Firebase ID token verifier.
func newIdentityVerifier(ctx context.Context, cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	verifier, err := authfirebase.NewVerifier(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity verifier: %w", err)
	}

	return verifier, nil
}

// newPushSender creates the Firebase messaging push sender.
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push notifications are optional
	}

	sender, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create push sender: %w", err)
	}

	return sender, nil
}

// newQRCodeService creates the pickup ticket QR code service.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewEngagementService,
			impl.NewRequestService,
			impl.NewUpcomingService,
			impl.NewPaymentService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewAdminHandler,
			handler.NewMealHandler,
			handler.NewReviewHandler,
			handler.NewRequestHandler,
			handler.NewUpcomingHandler,
			handler.NewPaymentHandler,
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
				os.Exit(1)
			}
		}()
	}
}
