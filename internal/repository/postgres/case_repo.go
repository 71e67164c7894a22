package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type CaseRepo struct {
	db *gorm.DB
}

func NewCaseRepo(db *gorm.DB) *CaseRepo {
	return &CaseRepo{db: db}
}

func (r *CaseRepo) Create(ctx context.Context, c *models.Case) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

// FindByID loads a case together with its notes.
func (r *CaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	if err := r.db.WithContext(ctx).
		Preload("CaseNotes").
		First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CaseRepo) List(ctx context.Context, status, priority string, customerID *uuid.UUID) ([]models.Case, error) {
	q := r.db.WithContext(ctx).Model(&models.Case{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var cases []models.Case
	if err := q.Order("created_at DESC").Find(&cases).Error; err != nil {
		return nil, translate(err)
	}
	return cases, nil
}

func (r *CaseRepo) Update(ctx context.Context, c *models.Case) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *CaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Case{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CaseRepo) AddNote(ctx context.Context, note *models.CaseNote) error {
	return translate(r.db.WithContext(ctx).Create(note).Error)
}

func (r *CaseRepo) ListNotes(ctx context.Context, caseID uuid.UUID) ([]models.CaseNote, error) {
	var notes []models.CaseNote
	if err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, translate(err)
	}
	return notes, nil
}

func (r *CaseRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Case{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
