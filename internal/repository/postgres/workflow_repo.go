package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wekeza-crm/internal/models"
	xerrors "wekeza-crm/internal/pkg/errors"
)

type WorkflowRepo struct {
	db *gorm.DB
}

func NewWorkflowRepo(db *gorm.DB) *WorkflowRepo {
	return &WorkflowRepo{db: db}
}

func (r *WorkflowRepo) CreateDefinition(ctx context.Context, def *models.WorkflowDefinition) error {
	return translate(r.db.WithContext(ctx).Create(def).Error)
}

func (r *WorkflowRepo) FindDefinition(ctx context.Context, id uuid.UUID) (*models.WorkflowDefinition, error) {
	var def models.WorkflowDefinition
	if err := r.db.WithContext(ctx).First(&def, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &def, nil
}

// ListDefinitions returns definitions in execution order.
func (r *WorkflowRepo) ListDefinitions(ctx context.Context, activeOnly bool) ([]models.WorkflowDefinition, error) {
	q := r.db.WithContext(ctx).Model(&models.WorkflowDefinition{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var defs []models.WorkflowDefinition
	if err := q.Order("execution_order ASC").Find(&defs).Error; err != nil {
		return nil, translate(err)
	}
	return defs, nil
}

func (r *WorkflowRepo) UpdateDefinition(ctx context.Context, def *models.WorkflowDefinition) error {
	return translate(r.db.WithContext(ctx).Save(def).Error)
}

func (r *WorkflowRepo) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.WorkflowDefinition{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *WorkflowRepo) CreateInstance(ctx context.Context, instance *models.WorkflowInstance) error {
	return translate(r.db.WithContext(ctx).Create(instance).Error)
}

func (r *WorkflowRepo) FindInstance(ctx context.Context, id uuid.UUID) (*models.WorkflowInstance, error) {
	var instance models.WorkflowInstance
	if err := r.db.WithContext(ctx).First(&instance, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &instance, nil
}

func (r *WorkflowRepo) ListInstances(ctx context.Context, definitionID, customerID *uuid.UUID, status string) ([]models.WorkflowInstance, error) {
	q := r.db.WithContext(ctx).Model(&models.WorkflowInstance{})
	if definitionID != nil {
		q = q.Where("workflow_definition_id = ?", *definitionID)
	}
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var instances []models.WorkflowInstance
	if err := q.Order("started_at DESC").Find(&instances).Error; err != nil {
		return nil, translate(err)
	}
	return instances, nil
}

func (r *WorkflowRepo) UpdateInstance(ctx context.Context, instance *models.WorkflowInstance) error {
	return translate(r.db.WithContext(ctx).Save(instance).Error)
}
