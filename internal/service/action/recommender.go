package action

import "wekeza-crm/internal/models"

// Recommendation is one suggested action for a customer, produced by a
// recommendation engine.
type Recommendation struct {
	ActionType         models.ActionType
	Title              string
	Description        string
	ConfidenceScore    float64
	RecommendedProduct *string
	ModelVersion       string
}

// Recommender produces next best actions for a customer. The production
// engine lives elsewhere; the default implementation simulates it.
type Recommender interface {
	Recommend(customer *models.Customer) []Recommendation
}

const simulationModelVersion = "v1.0-simulation"

// SimulatedRecommender returns a fixed pair of recommendations for every
// customer: a product upsell and a follow-up call.
type SimulatedRecommender struct{}

func NewSimulatedRecommender() *SimulatedRecommender {
	return &SimulatedRecommender{}
}

func (SimulatedRecommender) Recommend(customer *models.Customer) []Recommendation {
	product := "Premium Savings Account"
	return []Recommendation{
		{
			ActionType:         models.ActionProductRecommendation,
			Title:              "Recommend Premium Savings Account",
			Description:        "Customer profile suggests a strong fit for a premium savings product.",
			ConfidenceScore:    0.85,
			RecommendedProduct: &product,
			ModelVersion:       simulationModelVersion,
		},
		{
			ActionType:      models.ActionFollowUpCall,
			Title:           "Schedule follow-up call",
			Description:     "Recent activity indicates the customer would benefit from a check-in call.",
			ConfidenceScore: 0.72,
			ModelVersion:    simulationModelVersion,
		},
	}
}
