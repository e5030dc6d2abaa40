// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByUserEmail retrieves the payment history for a user, newest first.
func (repo *paymentRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// TotalRevenue sums the amount over all payment records.
func (repo *paymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum payment revenue")
	}

	return total, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		UserEmail:     data.UserEmail,
		Amount:        data.Amount,
		Package:       entity.MembershipTier(data.Package),
		TransactionID: data.TransactionID,
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		UserEmail:     data.UserEmail,
		Amount:        data.Amount,
		Package:       string(data.Package),
		TransactionID: data.TransactionID,
		Status:        data.Status,
	}
}
