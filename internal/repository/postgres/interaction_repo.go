package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

func (r *InteractionRepo) Create(ctx context.Context, interaction *models.Interaction) error {
	return translate(r.db.WithContext(ctx).Create(interaction).Error)
}

func (r *InteractionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).First(&interaction, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &interaction, nil
}

// List returns interactions newest first, optionally scoped to a customer
// or a channel.
func (r *InteractionRepo) List(ctx context.Context, customerID *uuid.UUID, channel string) ([]models.Interaction, error) {
	q := r.db.WithContext(ctx).Model(&models.Interaction{})
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	if channel != "" {
		q = q.Where("channel = ?", channel)
	}

	var interactions []models.Interaction
	if err := q.Order("interaction_date DESC").Find(&interactions).Error; err != nil {
		return nil, translate(err)
	}
	return interactions, nil
}

func (r *InteractionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Interaction{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
