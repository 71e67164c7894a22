// Package sentiment holds request payloads for sentiment analysis.
package sentiment

import "github.com/google/uuid"

type AnalyzeRequest struct {
	CustomerID    uuid.UUID  `json:"customer_id" binding:"required"`
	Text          string     `json:"text" binding:"required"`
	InteractionID *uuid.UUID `json:"interaction_id"`
	CaseID        *uuid.UUID `json:"case_id"`
}
