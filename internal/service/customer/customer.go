package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/customer"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo   *postgres.CustomerRepo
	gen    ident.Generator
	logger *zap.Logger
}

func NewService(repo *postgres.CustomerRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, gen: gen, logger: logger}
}

func (s *Service) Create(ctx context.Context, actor string, req customer.CreateRequest) (*models.Customer, error) {
	segment := models.CustomerSegment(req.Segment)
	if segment == "" {
		segment = models.SegmentRetail
	}
	kyc := models.KYCStatus(req.KYCStatus)
	if kyc == "" {
		kyc = models.KYCPending
	}

	now := time.Now().UTC()
	c := &models.Customer{
		ID:            s.gen.NewID(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Segment:       segment,
		KYCStatus:     kyc,
		CustomerRef:   s.gen.Reference("CUS"),
		CreditScore:   req.CreditScore,
		LifetimeValue: req.LifetimeValue,
		RiskScore:     req.RiskScore,
		IsActive:      true,
		CreatedAt:     now,
		CreatedBy:     actor,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create customer", zap.Error(err))
		return nil, err
	}
	s.logger.Info("customer created",
		zap.String("customer_id", c.ID.String()),
		zap.String("reference", c.CustomerRef))
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context, segment, kycStatus string) ([]models.Customer, error) {
	return s.repo.List(ctx, segment, kycStatus)
}

func (s *Service) Update(ctx context.Context, actor string, id uuid.UUID, req customer.UpdateRequest) (*models.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		c.DateOfBirth = req.DateOfBirth
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.City != nil {
		c.City = req.City
	}
	if req.Country != nil {
		c.Country = req.Country
	}
	if req.Segment != nil {
		c.Segment = models.CustomerSegment(*req.Segment)
	}
	if req.KYCStatus != nil {
		c.KYCStatus = models.KYCStatus(*req.KYCStatus)
	}
	if req.CreditScore != nil {
		c.CreditScore = req.CreditScore
	}
	if req.LifetimeValue != nil {
		c.LifetimeValue = req.LifetimeValue
	}
	if req.RiskScore != nil {
		c.RiskScore = req.RiskScore
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = actor

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update customer", zap.String("customer_id", id.String()), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}
