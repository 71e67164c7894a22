// Package campaign holds request payloads for marketing campaigns.
package campaign

import "time"

type CreateRequest struct {
	Name            string    `json:"name" binding:"required,max=255"`
	Description     string    `json:"description"`
	TargetSegment   string    `json:"target_segment" binding:"omitempty,max=50"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	TargetCustomers int       `json:"target_customers"`
}

// UpdateRequest uses pointer fields; absent fields stay unchanged.
type UpdateRequest struct {
	Name             *string    `json:"name" binding:"omitempty,max=255"`
	Description      *string    `json:"description"`
	TargetSegment    *string    `json:"target_segment" binding:"omitempty,max=50"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsActive         *bool      `json:"is_active"`
	TargetCustomers  *int       `json:"target_customers"`
	ReachedCustomers *int       `json:"reached_customers"`
}
