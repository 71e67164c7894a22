package cases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/cases"
	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo      *postgres.CaseRepo
	customers *postgres.CustomerRepo
	gen       ident.Generator
	logger    *zap.Logger
}

func NewService(repo *postgres.CaseRepo, customers *postgres.CustomerRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, customers: customers, gen: gen, logger: logger}
}

func (s *Service) Create(ctx context.Context, actor string, req cases.CreateRequest) (*models.Case, error) {
	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	priority := models.CasePriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now().UTC()
	c := &models.Case{
		ID:               s.gen.NewID(),
		CustomerID:       req.CustomerID,
		CaseNumber:       s.gen.Reference("CASE"),
		Title:            req.Title,
		Description:      req.Description,
		Status:           models.CaseOpen,
		Priority:         priority,
		Category:         req.Category,
		SubCategory:      req.SubCategory,
		AssignedToUserID: req.AssignedToUserID,
		SLADurationHours: req.SLADurationHours,
		CreatedAt:        now,
		CreatedBy:        actor,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create case", zap.Error(err))
		return nil, err
	}
	s.logger.Info("case created",
		zap.String("case_id", c.ID.String()),
		zap.String("case_number", c.CaseNumber))
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status, priority string) ([]models.Case, error) {
	return s.repo.List(ctx, status, priority, nil)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Case, error) {
	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return s.repo.List(ctx, "", "", &customerID)
}

// UpdateStatus moves a case to the requested status. Resolved stamps the
// resolution fields, Closed stamps the closing time. Any transition is
// accepted; there is no reachability validation.
func (s *Service) UpdateStatus(ctx context.Context, actor string, id uuid.UUID, req cases.UpdateStatusRequest) (*models.Case, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.Status = models.CaseStatus(req.Status)

	switch c.Status {
	case models.CaseResolved:
		c.ResolvedAt = &now
		c.Resolution = req.Resolution
	case models.CaseClosed:
		c.ClosedAt = &now
	}

	c.UpdatedAt = now
	c.UpdatedBy = actor

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("case status updated",
		zap.String("case_id", id.String()),
		zap.String("status", string(c.Status)))
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddNote(ctx context.Context, actor string, caseID uuid.UUID, req cases.CreateNoteRequest) (*models.CaseNote, error) {
	ok, err := s.repo.Exists(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}

	note := &models.CaseNote{
		ID:         s.gen.NewID(),
		CaseID:     caseID,
		Note:       req.Note,
		IsInternal: req.IsInternal,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  actor,
	}

	if err := s.repo.AddNote(ctx, note); err != nil {
		s.logger.Error("add case note", zap.Error(err))
		return nil, err
	}
	return note, nil
}

func (s *Service) ListNotes(ctx context.Context, caseID uuid.UUID) ([]models.CaseNote, error) {
	ok, err := s.repo.Exists(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return s.repo.ListNotes(ctx, caseID)
}
