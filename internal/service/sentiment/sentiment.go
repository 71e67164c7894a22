package sentiment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/sentiment"
	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo      *postgres.SentimentRepo
	customers *postgres.CustomerRepo
	analyzer  Analyzer
	gen       ident.Generator
	logger    *zap.Logger
}

func NewService(repo *postgres.SentimentRepo, customers *postgres.CustomerRepo, analyzer Analyzer, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, analyzer: analyzer, gen: gen, logger: logger}
}

// Analyze runs the analyzer over the text and stores the outcome.
func (s *Service) Analyze(ctx context.Context, actor string, req sentiment.AnalyzeRequest) (*models.SentimentAnalysis, error) {
	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	result := s.analyzer.Analyze(req.Text)

	now := time.Now().UTC()
	analysis := &models.SentimentAnalysis{
		ID:             s.gen.NewID(),
		CustomerID:     req.CustomerID,
		InteractionID:  req.InteractionID,
		CaseID:         req.CaseID,
		SentimentType:  result.Type,
		SentimentScore: result.Score,
		TextAnalyzed:   req.Text,
		AnalyzedDate:   now,
		KeyPhrases:     result.KeyPhrases,
		CreatedAt:      now,
		CreatedBy:      actor,
	}

	if err := s.repo.Create(ctx, analysis); err != nil {
		s.logger.Error("store sentiment analysis", zap.Error(err))
		return nil, err
	}
	s.logger.Info("sentiment analyzed",
		zap.String("customer_id", req.CustomerID.String()),
		zap.String("sentiment", string(result.Type)))
	return analysis, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.SentimentAnalysis, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.SentimentAnalysis, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.SentimentAnalysis, error) {
	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) ListByInteraction(ctx context.Context, interactionID uuid.UUID) ([]models.SentimentAnalysis, error) {
	return s.repo.ListByInteraction(ctx, interactionID)
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.SentimentAnalysis, error) {
	return s.repo.ListByCase(ctx, caseID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
