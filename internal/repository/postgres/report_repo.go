package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type ReportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) CreateTemplate(ctx context.Context, template *models.ReportTemplate) error {
	return translate(r.db.WithContext(ctx).Create(template).Error)
}

func (r *ReportRepo) FindTemplate(ctx context.Context, id uuid.UUID) (*models.ReportTemplate, error) {
	var template models.ReportTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &template, nil
}

func (r *ReportRepo) ListTemplates(ctx context.Context, activeOnly bool) ([]models.ReportTemplate, error) {
	q := r.db.WithContext(ctx).Model(&models.ReportTemplate{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var templates []models.ReportTemplate
	if err := q.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, translate(err)
	}
	return templates, nil
}

func (r *ReportRepo) UpdateTemplate(ctx context.Context, template *models.ReportTemplate) error {
	return translate(r.db.WithContext(ctx).Save(template).Error)
}

func (r *ReportRepo) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.ReportTemplate{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ReportRepo) CreateSchedule(ctx context.Context, schedule *models.ReportSchedule) error {
	return translate(r.db.WithContext(ctx).Create(schedule).Error)
}

func (r *ReportRepo) FindSchedule(ctx context.Context, id uuid.UUID) (*models.ReportSchedule, error) {
	var schedule models.ReportSchedule
	if err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &schedule, nil
}

func (r *ReportRepo) ListSchedules(ctx context.Context, templateID *uuid.UUID) ([]models.ReportSchedule, error) {
	q := r.db.WithContext(ctx).Model(&models.ReportSchedule{})
	if templateID != nil {
		q = q.Where("report_template_id = ?", *templateID)
	}

	var schedules []models.ReportSchedule
	if err := q.Order("created_at DESC").Find(&schedules).Error; err != nil {
		return nil, translate(err)
	}
	return schedules, nil
}

func (r *ReportRepo) UpdateSchedule(ctx context.Context, schedule *models.ReportSchedule) error {
	return translate(r.db.WithContext(ctx).Save(schedule).Error)
}

func (r *ReportRepo) CreateGenerated(ctx context.Context, report *models.GeneratedReport) error {
	return translate(r.db.WithContext(ctx).Create(report).Error)
}

func (r *ReportRepo) FindGenerated(ctx context.Context, id uuid.UUID) (*models.GeneratedReport, error) {
	var report models.GeneratedReport
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &report, nil
}

func (r *ReportRepo) ListGenerated(ctx context.Context, templateID *uuid.UUID) ([]models.GeneratedReport, error) {
	q := r.db.WithContext(ctx).Model(&models.GeneratedReport{})
	if templateID != nil {
		q = q.Where("report_template_id = ?", *templateID)
	}

	var reports []models.GeneratedReport
	if err := q.Order("generated_date DESC").Find(&reports).Error; err != nil {
		return nil, translate(err)
	}
	return reports, nil
}

func (r *ReportRepo) UpdateGenerated(ctx context.Context, report *models.GeneratedReport) error {
	return translate(r.db.WithContext(ctx).Save(report).Error)
}
