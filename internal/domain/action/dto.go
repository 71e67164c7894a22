// Package action holds request payloads for next best actions.
package action

import "github.com/google/uuid"

type CreateRequest struct {
	CustomerID         uuid.UUID `json:"customer_id" binding:"required"`
	ActionType         string    `json:"action_type" binding:"required,oneof=ProductRecommendation FollowUpCall SendEmail SendSMS ScheduleMeeting UpgradeAccount CrossSell RetentionOffer RiskReview"`
	Title              string    `json:"title" binding:"required,max=255"`
	Description        string    `json:"description"`
	ConfidenceScore    float64   `json:"confidence_score" binding:"gte=0,lte=1"`
	RecommendedProduct *string   `json:"recommended_product"`
}

type CompleteRequest struct {
	Outcome *string `json:"outcome"`
}
