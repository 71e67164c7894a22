package action

import (
	"testing"

	"wekeza-crm/internal/models"
)

func TestSimulatedRecommender(t *testing.T) {
	recs := NewSimulatedRecommender().Recommend(&models.Customer{})

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	upsell := recs[0]
	if upsell.ActionType != models.ActionProductRecommendation {
		t.Fatalf("first action type = %s", upsell.ActionType)
	}
	if upsell.ConfidenceScore != 0.85 {
		t.Fatalf("upsell confidence = %v, want 0.85", upsell.ConfidenceScore)
	}
	if upsell.RecommendedProduct == nil || *upsell.RecommendedProduct != "Premium Savings Account" {
		t.Fatalf("unexpected product %v", upsell.RecommendedProduct)
	}

	followUp := recs[1]
	if followUp.ActionType != models.ActionFollowUpCall {
		t.Fatalf("second action type = %s", followUp.ActionType)
	}
	if followUp.ConfidenceScore != 0.72 {
		t.Fatalf("follow-up confidence = %v, want 0.72", followUp.ConfidenceScore)
	}

	for _, rec := range recs {
		if rec.ModelVersion != "v1.0-simulation" {
			t.Fatalf("model version = %q", rec.ModelVersion)
		}
	}
}
