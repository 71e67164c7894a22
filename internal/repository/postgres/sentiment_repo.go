package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type SentimentRepo struct {
	db *gorm.DB
}

func NewSentimentRepo(db *gorm.DB) *SentimentRepo {
	return &SentimentRepo{db: db}
}

func (r *SentimentRepo) Create(ctx context.Context, analysis *models.SentimentAnalysis) error {
	return translate(r.db.WithContext(ctx).Create(analysis).Error)
}

func (r *SentimentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.SentimentAnalysis, error) {
	var analysis models.SentimentAnalysis
	if err := r.db.WithContext(ctx).First(&analysis, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &analysis, nil
}

func (r *SentimentRepo) List(ctx context.Context) ([]models.SentimentAnalysis, error) {
	var analyses []models.SentimentAnalysis
	if err := r.db.WithContext(ctx).
		Order("analyzed_date DESC").
		Find(&analyses).Error; err != nil {
		return nil, translate(err)
	}
	return analyses, nil
}

func (r *SentimentRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.SentimentAnalysis, error) {
	var analyses []models.SentimentAnalysis
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("analyzed_date DESC").
		Find(&analyses).Error; err != nil {
		return nil, translate(err)
	}
	return analyses, nil
}

func (r *SentimentRepo) ListByInteraction(ctx context.Context, interactionID uuid.UUID) ([]models.SentimentAnalysis, error) {
	var analyses []models.SentimentAnalysis
	if err := r.db.WithContext(ctx).
		Where("interaction_id = ?", interactionID).
		Order("analyzed_date DESC").
		Find(&analyses).Error; err != nil {
		return nil, translate(err)
	}
	return analyses, nil
}

func (r *SentimentRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.SentimentAnalysis, error) {
	var analyses []models.SentimentAnalysis
	if err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("analyzed_date DESC").
		Find(&analyses).Error; err != nil {
		return nil, translate(err)
	}
	return analyses, nil
}

func (r *SentimentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.SentimentAnalysis{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
