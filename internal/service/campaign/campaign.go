package campaign

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/campaign"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo      *postgres.CampaignRepo
	customers *postgres.CustomerRepo
	gen       ident.Generator
	logger    *zap.Logger
}

func NewService(repo *postgres.CampaignRepo, customers *postgres.CustomerRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, gen: gen, logger: logger}
}

func (s *Service) Create(ctx context.Context, actor string, req campaign.CreateRequest) (*models.Campaign, error) {
	now := time.Now().UTC()
	c := &models.Campaign{
		ID:              s.gen.NewID(),
		Name:            req.Name,
		Description:     req.Description,
		TargetSegment:   req.TargetSegment,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        true,
		TargetCustomers: req.TargetCustomers,
		CreatedAt:       now,
		CreatedBy:       actor,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create campaign", zap.Error(err))
		return nil, err
	}
	s.logger.Info("campaign created", zap.String("campaign_id", c.ID.String()))
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]models.Campaign, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *Service) Update(ctx context.Context, actor string, id uuid.UUID, req campaign.UpdateRequest) (*models.Campaign, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.TargetSegment != nil {
		c.TargetSegment = *req.TargetSegment
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.TargetCustomers != nil {
		c.TargetCustomers = *req.TargetCustomers
	}
	if req.ReachedCustomers != nil {
		c.ReachedCustomers = *req.ReachedCustomers
	}

	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = actor

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Enroll adds a customer to the campaign audience.
func (s *Service) Enroll(ctx context.Context, campaignID, customerID uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, campaignID)
	if err != nil {
		return err
	}
	cust, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if err := s.repo.Enroll(ctx, c, cust); err != nil {
		s.logger.Error("enroll customer", zap.Error(err))
		return err
	}
	s.logger.Info("customer enrolled",
		zap.String("campaign_id", campaignID.String()),
		zap.String("customer_id", customerID.String()))
	return nil
}

func (s *Service) ListCustomers(ctx context.Context, campaignID uuid.UUID) ([]models.Customer, error) {
	return s.repo.ListCustomers(ctx, campaignID)
}
