package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wekeza-crm/internal/domain/workflow"
	"wekeza-crm/internal/models"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/repository/postgres"
)

type Service struct {
	repo   *postgres.WorkflowRepo
	gen    ident.Generator
	logger *zap.Logger
}

func NewService(repo *postgres.WorkflowRepo, gen ident.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, gen: gen, logger: logger}
}

func (s *Service) CreateDefinition(ctx context.Context, actor string, req workflow.CreateDefinitionRequest) (*models.WorkflowDefinition, error) {
	now := time.Now().UTC()
	def := &models.WorkflowDefinition{
		ID:                s.gen.NewID(),
		Name:              req.Name,
		Description:       req.Description,
		TriggerType:       req.TriggerType,
		TriggerConditions: req.TriggerConditions,
		Actions:           req.Actions,
		IsActive:          true,
		ExecutionOrder:    req.ExecutionOrder,
		CreatedAt:         now,
		CreatedBy:         actor,
		UpdatedAt:         now,
	}

	if err := s.repo.CreateDefinition(ctx, def); err != nil {
		s.logger.Error("create workflow definition", zap.Error(err))
		return nil, err
	}
	return def, nil
}

func (s *Service) GetDefinition(ctx context.Context, id uuid.UUID) (*models.WorkflowDefinition, error) {
	return s.repo.FindDefinition(ctx, id)
}

func (s *Service) ListDefinitions(ctx context.Context, activeOnly bool) ([]models.WorkflowDefinition, error) {
	return s.repo.ListDefinitions(ctx, activeOnly)
}

func (s *Service) UpdateDefinition(ctx context.Context, actor string, id uuid.UUID, req workflow.UpdateDefinitionRequest) (*models.WorkflowDefinition, error) {
	def, err := s.repo.FindDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		def.Name = *req.Name
	}
	if req.Description != nil {
		def.Description = *req.Description
	}
	if req.TriggerType != nil {
		def.TriggerType = *req.TriggerType
	}
	if req.TriggerConditions != nil {
		def.TriggerConditions = *req.TriggerConditions
	}
	if req.Actions != nil {
		def.Actions = *req.Actions
	}
	if req.IsActive != nil {
		def.IsActive = *req.IsActive
	}
	if req.ExecutionOrder != nil {
		def.ExecutionOrder = *req.ExecutionOrder
	}

	def.UpdatedAt = time.Now().UTC()
	def.UpdatedBy = actor

	if err := s.repo.UpdateDefinition(ctx, def); err != nil {
		return nil, err
	}
	return def, nil
}

func (s *Service) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDefinition(ctx, id)
}

// Trigger starts a new instance of a workflow definition.
func (s *Service) Trigger(ctx context.Context, actor string, req workflow.TriggerRequest) (*models.WorkflowInstance, error) {
	def, err := s.repo.FindDefinition(ctx, req.WorkflowDefinitionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	step := "start"
	instance := &models.WorkflowInstance{
		ID:                   s.gen.NewID(),
		WorkflowDefinitionID: def.ID,
		CustomerID:           req.CustomerID,
		CaseID:               req.CaseID,
		Status:               models.WorkflowActive,
		StartedAt:            now,
		CurrentStep:          &step,
		ExecutionContext:     req.ExecutionContext,
		CreatedAt:            now,
		CreatedBy:            actor,
		UpdatedAt:            now,
	}

	if err := s.repo.CreateInstance(ctx, instance); err != nil {
		s.logger.Error("trigger workflow", zap.Error(err))
		return nil, err
	}
	s.logger.Info("workflow triggered",
		zap.String("definition_id", def.ID.String()),
		zap.String("instance_id", instance.ID.String()))
	return instance, nil
}

func (s *Service) GetInstance(ctx context.Context, id uuid.UUID) (*models.WorkflowInstance, error) {
	return s.repo.FindInstance(ctx, id)
}

func (s *Service) ListInstances(ctx context.Context, status string) ([]models.WorkflowInstance, error) {
	return s.repo.ListInstances(ctx, nil, nil, status)
}

func (s *Service) ListInstancesByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.WorkflowInstance, error) {
	return s.repo.ListInstances(ctx, nil, &customerID, "")
}

// UpdateInstanceStatus moves an instance through its lifecycle. Terminal
// statuses stamp CompletedAt.
func (s *Service) UpdateInstanceStatus(ctx context.Context, actor string, id uuid.UUID, req workflow.UpdateInstanceStatusRequest) (*models.WorkflowInstance, error) {
	instance, err := s.repo.FindInstance(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	instance.Status = models.WorkflowStatus(req.Status)
	if req.CurrentStep != nil {
		instance.CurrentStep = req.CurrentStep
	}
	if req.ErrorMessage != nil {
		instance.ErrorMessage = req.ErrorMessage
	}

	switch instance.Status {
	case models.WorkflowCompleted, models.WorkflowFailed, models.WorkflowCancelled:
		instance.CompletedAt = &now
	}

	instance.UpdatedAt = now
	instance.UpdatedBy = actor

	if err := s.repo.UpdateInstance(ctx, instance); err != nil {
		return nil, err
	}
	return instance, nil
}
