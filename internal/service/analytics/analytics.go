package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wekeza-crm/internal/domain/analytics"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo   *postgres.AnalyticsRepo
	logger *zap.Logger
}

func NewService(repo *postgres.AnalyticsRepo, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Range bounds are optional; a nil bound leaves that side open.
func (s *Service) CustomerAnalytics(ctx context.Context, start, end *time.Time) (*analytics.CustomerAnalytics, error) {
	customers, err := s.repo.AllCustomers(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := ComputeCustomerAnalytics(customers, time.Now().UTC())
	return &out, nil
}

func (s *Service) CaseAnalytics(ctx context.Context, start, end *time.Time) (*analytics.CaseAnalytics, error) {
	cases, err := s.repo.AllCases(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := ComputeCaseAnalytics(cases, time.Now().UTC())
	return &out, nil
}

func (s *Service) InteractionAnalytics(ctx context.Context, start, end *time.Time) (*analytics.InteractionAnalytics, error) {
	interactions, err := s.repo.AllInteractions(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := ComputeInteractionAnalytics(interactions, time.Now().UTC())
	return &out, nil
}

// Dashboard assembles the three aggregate views with a generation stamp.
func (s *Service) Dashboard(ctx context.Context, start, end *time.Time) (*analytics.Dashboard, error) {
	customers, err := s.CustomerAnalytics(ctx, start, end)
	if err != nil {
		return nil, err
	}
	cases, err := s.CaseAnalytics(ctx, start, end)
	if err != nil {
		return nil, err
	}
	interactions, err := s.InteractionAnalytics(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &analytics.Dashboard{
		Customers:    *customers,
		Cases:        *cases,
		Interactions: *interactions,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
