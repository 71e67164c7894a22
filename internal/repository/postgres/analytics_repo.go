package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wekeza-crm/internal/models"
)

// AnalyticsRepo loads full row sets for the dashboard aggregations. The
// aggregation itself happens in the service layer so the figures stay
// identical across database engines.
type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

func dateRange(q *gorm.DB, column string, start, end *time.Time) *gorm.DB {
	if start != nil {
		q = q.Where(column+" >= ?", *start)
	}
	if end != nil {
		q = q.Where(column+" <= ?", *end)
	}
	return q
}

func (r *AnalyticsRepo) AllCustomers(ctx context.Context, start, end *time.Time) ([]models.Customer, error) {
	var customers []models.Customer
	q := dateRange(r.db.WithContext(ctx), "created_at", start, end)
	if err := q.Find(&customers).Error; err != nil {
		return nil, translate(err)
	}
	return customers, nil
}

func (r *AnalyticsRepo) AllCases(ctx context.Context, start, end *time.Time) ([]models.Case, error) {
	var cases []models.Case
	q := dateRange(r.db.WithContext(ctx), "created_at", start, end)
	if err := q.Find(&cases).Error; err != nil {
		return nil, translate(err)
	}
	return cases, nil
}

func (r *AnalyticsRepo) AllInteractions(ctx context.Context, start, end *time.Time) ([]models.Interaction, error) {
	var interactions []models.Interaction
	q := dateRange(r.db.WithContext(ctx), "interaction_date", start, end)
	if err := q.Find(&interactions).Error; err != nil {
		return nil, translate(err)
	}
	return interactions, nil
}
