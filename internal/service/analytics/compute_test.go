package analytics

import (
	"testing"
	"time"

	"wekeza-crm/internal/models"
)

func TestComputeCaseAnalytics(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	resolved := created.Add(5 * time.Hour)

	cases := []models.Case{
		{Status: models.CaseOpen, Priority: models.PriorityHigh, CreatedAt: created},
		{Status: models.CaseInProgress, Priority: models.PriorityLow, CreatedAt: created},
		{Status: models.CaseResolved, Priority: models.PriorityHigh, CreatedAt: created, ResolvedAt: &resolved},
		{Status: models.CaseClosed, Priority: models.PriorityMedium, CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := ComputeCaseAnalytics(cases, now)

	if out.TotalCases != 4 {
		t.Fatalf("total = %d, want 4", out.TotalCases)
	}
	if out.OpenCases != 2 {
		t.Fatalf("open = %d, want 2", out.OpenCases)
	}
	if out.ResolvedCases != 2 {
		t.Fatalf("resolved = %d, want 2", out.ResolvedCases)
	}
	if out.NewCasesThisMonth != 3 {
		t.Fatalf("new this month = %d, want 3", out.NewCasesThisMonth)
	}
	if out.AvgResolutionHours != 5.0 {
		t.Fatalf("avg resolution = %v, want 5.0", out.AvgResolutionHours)
	}
	if out.CasesByPriority["High"] != 2 {
		t.Fatalf("high priority = %d, want 2", out.CasesByPriority["High"])
	}
	if out.CasesByStatus["Open"] != 1 {
		t.Fatalf("open status = %d, want 1", out.CasesByStatus["Open"])
	}
}

func TestComputeCustomerAnalytics(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC)

	customers := []models.Customer{
		{Segment: models.SegmentRetail, KYCStatus: models.KYCVerified, IsActive: true, CreatedAt: thisMonth},
		{Segment: models.SegmentRetail, KYCStatus: models.KYCPending, IsActive: false, CreatedAt: lastMonth},
		{Segment: models.SegmentCorporate, KYCStatus: models.KYCVerified, IsActive: true, CreatedAt: lastMonth},
	}

	out := ComputeCustomerAnalytics(customers, now)

	if out.TotalCustomers != 3 {
		t.Fatalf("total = %d, want 3", out.TotalCustomers)
	}
	if out.ActiveCustomers != 2 {
		t.Fatalf("active = %d, want 2", out.ActiveCustomers)
	}
	if out.NewCustomersThisMonth != 1 {
		t.Fatalf("new this month = %d, want 1", out.NewCustomersThisMonth)
	}
	if out.CustomersBySegment["Retail"] != 2 {
		t.Fatalf("retail = %d, want 2", out.CustomersBySegment["Retail"])
	}
	if out.CustomersByKYCStatus["Verified"] != 2 {
		t.Fatalf("verified = %d, want 2", out.CustomersByKYCStatus["Verified"])
	}
}

func TestComputeInteractionAnalytics(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	d10 := 10
	d20 := 20

	interactions := []models.Interaction{
		{Channel: models.ChannelEmail, InteractionDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), DurationMinutes: &d10},
		{Channel: models.ChannelEmail, InteractionDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), DurationMinutes: &d20},
		{Channel: models.ChannelWhatsApp, InteractionDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
	}

	out := ComputeInteractionAnalytics(interactions, now)

	if out.TotalInteractions != 3 {
		t.Fatalf("total = %d, want 3", out.TotalInteractions)
	}
	if out.InteractionsThisMonth != 2 {
		t.Fatalf("this month = %d, want 2", out.InteractionsThisMonth)
	}
	if out.AvgDurationMinutes != 15.0 {
		t.Fatalf("avg duration = %v, want 15.0", out.AvgDurationMinutes)
	}
	if out.InteractionsByChannel["Email"] != 2 {
		t.Fatalf("email = %d, want 2", out.InteractionsByChannel["Email"])
	}
}
