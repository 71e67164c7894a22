package interaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/interaction"
	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo      *postgres.InteractionRepo
	customers *postgres.CustomerRepo
	gen       ident.Generator
	logger    *zap.Logger
}

func NewService(repo *postgres.InteractionRepo, customers *postgres.CustomerRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, gen: gen, logger: logger}
}

func (s *Service) Create(ctx context.Context, actor string, req interaction.CreateRequest) (*models.Interaction, error) {
	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	now := time.Now().UTC()
	when := now
	if req.InteractionDate != nil {
		when = *req.InteractionDate
	}

	i := &models.Interaction{
		ID:              s.gen.NewID(),
		CustomerID:      req.CustomerID,
		Channel:         models.InteractionChannel(req.Channel),
		Subject:         req.Subject,
		Description:     req.Description,
		InteractionDate: when,
		DurationMinutes: req.DurationMinutes,
		UserID:          req.UserID,
		CreatedAt:       now,
		CreatedBy:       actor,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		s.logger.Error("create interaction", zap.Error(err))
		return nil, err
	}
	return i, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Interaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, channel string) ([]models.Interaction, error) {
	return s.repo.List(ctx, nil, channel)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Interaction, error) {
	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return s.repo.List(ctx, &customerID, "")
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
