package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/account"
	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo      *postgres.AccountRepo
	customers *postgres.CustomerRepo
	gen       ident.Generator
	logger    *zap.Logger
}

func NewService(repo *postgres.AccountRepo, customers *postgres.CustomerRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, gen: gen, logger: logger}
}

func (s *Service) Create(ctx context.Context, actor string, req account.CreateRequest) (*models.Account, error) {
	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}

	now := time.Now().UTC()
	a := &models.Account{
		ID:            s.gen.NewID(),
		CustomerID:    req.CustomerID,
		AccountNumber: s.gen.Reference("ACC"),
		AccountType:   req.AccountType,
		Balance:       req.Balance,
		Currency:      currency,
		IsActive:      true,
		CreatedAt:     now,
		CreatedBy:     actor,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create account", zap.Error(err))
		return nil, err
	}
	s.logger.Info("account created",
		zap.String("account_id", a.ID.String()),
		zap.String("account_number", a.AccountNumber))
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.Account, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Account, error) {
	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

// Close deactivates the account and stamps the closing time.
func (s *Service) Close(ctx context.Context, actor string, id uuid.UUID) (*models.Account, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.IsActive = false
	a.ClosedAt = &now
	a.UpdatedAt = now
	a.UpdatedBy = actor

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("account closed", zap.String("account_id", id.String()))
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// RecordTransaction appends a transaction and moves the account balance.
func (s *Service) RecordTransaction(ctx context.Context, actor string, accountID uuid.UUID, req account.CreateTransactionRequest) (*models.Transaction, error) {
	a, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	when := now
	if req.TransactionDate != nil {
		when = *req.TransactionDate
	}

	a.Balance += req.Amount
	a.UpdatedAt = now
	a.UpdatedBy = actor

	tx := &models.Transaction{
		ID:              s.gen.NewID(),
		AccountID:       accountID,
		TransactionRef:  s.gen.Reference("TXN"),
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		BalanceAfter:    a.Balance,
		TransactionDate: when,
		Description:     req.Description,
		CreatedAt:       now,
		CreatedBy:       actor,
	}

	if err := s.repo.RecordTransaction(ctx, a, tx); err != nil {
		s.logger.Error("record transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	if _, err := s.repo.FindByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, accountID)
}
