// Package interaction holds request payloads for customer interactions.
package interaction

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequest struct {
	CustomerID      uuid.UUID  `json:"customer_id" binding:"required"`
	Channel         string     `json:"channel" binding:"required,oneof=Branch CallCenter Email SMS WhatsApp MobileApp Web ATM"`
	Subject         string     `json:"subject" binding:"required,max=255"`
	Description     string     `json:"description"`
	InteractionDate *time.Time `json:"interaction_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	UserID          *uuid.UUID `json:"user_id"`
}
