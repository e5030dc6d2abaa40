package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "harmony/internal/delivery/context"
	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/domain/service"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager   repository.TransactionManager
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	qrService   service.QRCodeService
	pushSender  service.PushSender
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	RequestRepo repository.RequestRepository
	UserRepo    repository.UserRepository
	QRService   service.QRCodeService
	PushSender  service.PushSender `optional:"true"`
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:   params.TxManager,
		requestRepo: params.RequestRepo,
		userRepo:    params.UserRepo,
		qrService:   params.QRService,
		pushSender:  params.PushSender,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest places a request for a meal on behalf of a premium member.
// The request snapshots the meal so later catalog edits do not rewrite it,
// and copies the meal's engagement counters as its starting mirror values.
func (srv *requestService) CreateRequest(ctx context.Context, caller usecase.Caller, mealID uuid.UUID) (*entity.MealRequest, error) {
	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("requesting user not found")
		}

		return nil, errors.Wrap(err, "failed to load requesting user")
	}

	if !user.Tier.IsPremium() {
		return nil, domainerrors.ErrSubscriptionRequired.WrapMessage("base tier cannot request meals")
	}

	var request *entity.MealRequest
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		meal, err := repoFactory.MealRepo().FindByID(ctx, mealID)
		if err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound.WrapMessage("meal to request not found")
			}

			return errors.Wrap(err, "failed to load meal")
		}

		now := time.Now()
		request = &entity.MealRequest{
			ID:           uuid.New(),
			MealID:       meal.ID,
			UserID:       user.ID,
			UserName:     user.Name,
			UserEmail:    user.Email,
			Title:        meal.Title,
			Category:     meal.Category,
			Price:        meal.Price,
			ImageURL:     meal.ImageURL,
			Likes:        meal.Likes,
			Rating:       meal.Rating,
			ReviewsCount: meal.ReviewsCount,
			Status:       entity.RequestStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repoFactory.RequestRepo().Create(ctx, request); err != nil {
			if errors.Is(err, repository.ErrDuplicateRequest) {
				return domainerrors.ErrMealAlreadyRequested.WrapMessage("request already exists for this meal")
			}

			return errors.Wrap(err, "failed to create request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Meal requested",
		slog.String("request_id", request.ID.String()),
		slog.String("meal_id", mealID.String()),
		slog.String("user", user.Email))

	return request, nil
}

// ListMyRequests returns all of the caller's requests, any status.
func (srv *requestService) ListMyRequests(ctx context.Context, caller usecase.Caller) ([]*entity.MealRequest, error) {
	requests, err := srv.requestRepo.FindByUserEmail(ctx, caller.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list caller requests")
	}

	return requests, nil
}

// CancelRequest deletes the caller's pending request. The repository matches
// id, owner and pending status in one statement, so delivered or foreign
// requests surface uniformly as not found.
func (srv *requestService) CancelRequest(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	if err := srv.requestRepo.DeletePending(ctx, id, caller.Email); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound.WrapMessage("no cancellable request matched")
		}

		return errors.Wrap(err, "failed to cancel request")
	}

	srv.log(ctx).Info("Request cancelled", slog.String("request_id", id.String()), slog.String("user", caller.Email))

	return nil
}

// ListServeQueue returns all requests for the staff serve view, optionally
// filtered by meal title or requester name.
func (srv *requestService) ListServeQueue(ctx context.Context, search string) ([]*entity.MealRequest, error) {
	requests, err := srv.requestRepo.Search(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list serve queue")
	}

	return requests, nil
}

// MarkDelivered transitions a pending request to delivered and pushes a
// pickup notification to the requester. The push is best effort.
func (srv *requestService) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound.WrapMessage("request to deliver not found")
		}

		return errors.Wrap(err, "failed to load request")
	}

	if err := srv.requestRepo.MarkDelivered(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound.WrapMessage("request no longer pending")
		}

		return errors.Wrap(err, "failed to mark request delivered")
	}

	srv.log(ctx).Info("Request delivered",
		slog.String("request_id", id.String()),
		slog.String("user", request.UserEmail))

	srv.notifyDelivered(ctx, request)

	return nil
}

// notifyDelivered pushes the pickup notification to the requester's topic.
func (srv *requestService) notifyDelivered(ctx context.Context, request *entity.MealRequest) {
	if srv.pushSender == nil {
		return
	}

	err := srv.pushSender.SendToUserTopic(ctx, userTopic(request.UserEmail),
		"餐點已送達",
		request.Title+" 已準備完成，請出示取餐憑證領取",
		map[string]string{
			"request_id": request.ID.String(),
			"meal_id":    request.MealID.String(),
		})
	if err != nil {
		srv.log(ctx).Warn("Failed to push delivery notification",
			slog.String("request_id", request.ID.String()),
			slog.Any("error", err))
	}
}

// PickupTicket renders the PNG pickup QR for the caller's own request.
// Foreign requests surface as not found.
func (srv *requestService) PickupTicket(ctx context.Context, caller usecase.Caller, id uuid.UUID) ([]byte, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound.WrapMessage("request for ticket not found")
		}

		return nil, errors.Wrap(err, "failed to load request")
	}

	if request.UserEmail != caller.Email {
		return nil, domainerrors.ErrRequestNotFound.WrapMessage("request not owned by caller")
	}

	png, err := srv.qrService.GeneratePickupQR(request.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup ticket")
	}

	return png, nil
}

// userTopic maps an email to the per-user messaging topic the client app
// subscribes to after login. Topic names only allow a narrow character set.
func userTopic(email string) string {
	return "user-" + strings.NewReplacer("@", "_", ".", "_", "+", "_").Replace(email)
}
