// Package cases holds request payloads for support cases and case notes.
package cases

import "github.com/google/uuid"

type CreateRequest struct {
	CustomerID       uuid.UUID  `json:"customer_id" binding:"required"`
	Title            string     `json:"title" binding:"required,max=255"`
	Description      string     `json:"description"`
	Priority         string     `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	Category         string     `json:"category" binding:"omitempty,max=100"`
	SubCategory      string     `json:"sub_category" binding:"omitempty,max=100"`
	AssignedToUserID *uuid.UUID `json:"assigned_to_user_id"`
	SLADurationHours *int       `json:"sla_duration_hours"`
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=Open InProgress PendingCustomer Escalated Resolved Closed"`
	Resolution *string `json:"resolution"`
}

type CreateNoteRequest struct {
	Note       string `json:"note" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}
