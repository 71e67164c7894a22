// Package workflow holds request payloads for workflow definitions and
// their running instances.
package workflow

import "github.com/google/uuid"

type CreateDefinitionRequest struct {
	Name              string `json:"name" binding:"required,max=255"`
	Description       string `json:"description"`
	TriggerType       string `json:"trigger_type" binding:"required,max=100"`
	TriggerConditions string `json:"trigger_conditions"`
	Actions           string `json:"actions"`
	ExecutionOrder    int    `json:"execution_order"`
}

// UpdateDefinitionRequest uses pointer fields; absent fields stay unchanged.
type UpdateDefinitionRequest struct {
	Name              *string `json:"name" binding:"omitempty,max=255"`
	Description       *string `json:"description"`
	TriggerType       *string `json:"trigger_type" binding:"omitempty,max=100"`
	TriggerConditions *string `json:"trigger_conditions"`
	Actions           *string `json:"actions"`
	IsActive          *bool   `json:"is_active"`
	ExecutionOrder    *int    `json:"execution_order"`
}

type TriggerRequest struct {
	WorkflowDefinitionID uuid.UUID  `json:"workflow_definition_id" binding:"required"`
	CustomerID           *uuid.UUID `json:"customer_id"`
	CaseID               *uuid.UUID `json:"case_id"`
	ExecutionContext     *string    `json:"execution_context"`
}

type UpdateInstanceStatusRequest struct {
	Status       string  `json:"status" binding:"required,oneof=Active Completed Failed Cancelled"`
	CurrentStep  *string `json:"current_step"`
	ErrorMessage *string `json:"error_message"`
}
