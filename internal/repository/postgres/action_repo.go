package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type ActionRepo struct {
	db *gorm.DB
}

func NewActionRepo(db *gorm.DB) *ActionRepo {
	return &ActionRepo{db: db}
}

func (r *ActionRepo) Create(ctx context.Context, action *models.NextBestAction) error {
	return translate(r.db.WithContext(ctx).Create(action).Error)
}

func (r *ActionRepo) CreateBatch(ctx context.Context, actions []models.NextBestAction) error {
	if len(actions) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Create(&actions).Error)
}

func (r *ActionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.NextBestAction, error) {
	var action models.NextBestAction
	if err := r.db.WithContext(ctx).First(&action, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &action, nil
}

func (r *ActionRepo) List(ctx context.Context) ([]models.NextBestAction, error) {
	var actions []models.NextBestAction
	if err := r.db.WithContext(ctx).
		Order("recommended_date DESC").
		Find(&actions).Error; err != nil {
		return nil, translate(err)
	}
	return actions, nil
}

// ListByCustomer returns actions for a customer, highest confidence first.
func (r *ActionRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, pendingOnly bool) ([]models.NextBestAction, error) {
	q := r.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if pendingOnly {
		q = q.Where("is_completed = ?", false)
	}

	var actions []models.NextBestAction
	if err := q.Order("confidence_score DESC").Find(&actions).Error; err != nil {
		return nil, translate(err)
	}
	return actions, nil
}

func (r *ActionRepo) Update(ctx context.Context, action *models.NextBestAction) error {
	return translate(r.db.WithContext(ctx).Save(action).Error)
}

func (r *ActionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.NextBestAction{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
