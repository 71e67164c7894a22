package action

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/action"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo        *postgres.ActionRepo
	customers   *postgres.CustomerRepo
	recommender Recommender
	gen         ident.Generator
	logger      *zap.Logger
}

func NewService(repo *postgres.ActionRepo, customers *postgres.CustomerRepo, recommender Recommender, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, recommender: recommender, gen: gen, logger: logger}
}

func (s *Service) Create(ctx context.Context, actor string, req action.CreateRequest) (*models.NextBestAction, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &models.NextBestAction{
		ID:                 s.gen.NewID(),
		CustomerID:         customer.ID,
		ActionType:         models.ActionType(req.ActionType),
		Title:              req.Title,
		Description:        req.Description,
		ConfidenceScore:    req.ConfidenceScore,
		RecommendedProduct: req.RecommendedProduct,
		RecommendedDate:    now,
		CreatedAt:          now,
		CreatedBy:          actor,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create next best action", zap.Error(err))
		return nil, err
	}
	return a, nil
}

// Generate asks the recommendation engine for suggestions and persists
// them as pending actions for the customer.
func (s *Service) Generate(ctx context.Context, actor string, customerID uuid.UUID) ([]models.NextBestAction, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	recs := s.recommender.Recommend(customer)

	actions := make([]models.NextBestAction, 0, len(recs))
	for _, rec := range recs {
		version := rec.ModelVersion
		actions = append(actions, models.NextBestAction{
			ID:                 s.gen.NewID(),
			CustomerID:         customerID,
			ActionType:         rec.ActionType,
			Title:              rec.Title,
			Description:        rec.Description,
			ConfidenceScore:    rec.ConfidenceScore,
			RecommendedProduct: rec.RecommendedProduct,
			RecommendedDate:    now,
			AIModelVersion:     &version,
			CreatedAt:          now,
			CreatedBy:          actor,
			UpdatedAt:          now,
		})
	}

	if err := s.repo.CreateBatch(ctx, actions); err != nil {
		s.logger.Error("persist generated actions", zap.Error(err))
		return nil, err
	}
	s.logger.Info("actions generated",
		zap.String("customer_id", customerID.String()),
		zap.Int("count", len(actions)))
	return actions, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.NextBestAction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.NextBestAction, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID, pendingOnly bool) ([]models.NextBestAction, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.repo.ListByCustomer(ctx, customerID, pendingOnly)
}

// Complete marks the action done and records the outcome.
func (s *Service) Complete(ctx context.Context, actor string, id uuid.UUID, req action.CompleteRequest) (*models.NextBestAction, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.IsCompleted = true
	a.CompletedDate = &now
	a.Outcome = req.Outcome
	a.UpdatedAt = now
	a.UpdatedBy = actor

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
