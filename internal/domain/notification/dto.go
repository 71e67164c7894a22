// Package notification holds request payloads for notifications.
package notification

import "github.com/google/uuid"

type CreateRequest struct {
	UserID     *uuid.UUID `json:"user_id"`
	CustomerID *uuid.UUID `json:"customer_id"`
	Type       string     `json:"type" binding:"required,oneof=System CaseUpdate CustomerUpdate CampaignUpdate WorkflowUpdate"`
	Title      string     `json:"title" binding:"required,max=255"`
	Message    string     `json:"message" binding:"required"`
	ActionURL  *string    `json:"action_url"`
	Metadata   *string    `json:"metadata"`
}
