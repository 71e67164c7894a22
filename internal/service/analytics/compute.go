package analytics

import (
	"time"

	"wekeza-crm/internal/domain/analytics"
	"wekeza-crm/internal/models"
)

// startOfMonth truncates a time to the first day of its month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ComputeCustomerAnalytics aggregates customer figures in a single pass.
func ComputeCustomerAnalytics(customers []models.Customer, now time.Time) analytics.CustomerAnalytics {
	monthStart := startOfMonth(now)

	out := analytics.CustomerAnalytics{
		CustomersBySegment:   make(map[string]int),
		CustomersByKYCStatus: make(map[string]int),
	}

	for _, c := range customers {
		out.TotalCustomers++
		if c.IsActive {
			out.ActiveCustomers++
		}
		if !c.CreatedAt.Before(monthStart) {
			out.NewCustomersThisMonth++
		}
		out.CustomersBySegment[string(c.Segment)]++
		out.CustomersByKYCStatus[string(c.KYCStatus)]++
	}
	return out
}

// ComputeCaseAnalytics aggregates case figures. Open counts Open and
// InProgress, resolved counts Resolved and Closed, and the mean
// resolution time spans cases with a recorded resolution only.
func ComputeCaseAnalytics(cases []models.Case, now time.Time) analytics.CaseAnalytics {
	monthStart := startOfMonth(now)

	out := analytics.CaseAnalytics{
		CasesByPriority: make(map[string]int),
		CasesByStatus:   make(map[string]int),
	}

	var resolutionHours float64
	var resolvedWithTime int

	for _, c := range cases {
		out.TotalCases++
		switch c.Status {
		case models.CaseOpen, models.CaseInProgress:
			out.OpenCases++
		case models.CaseResolved, models.CaseClosed:
			out.ResolvedCases++
		}
		if !c.CreatedAt.Before(monthStart) {
			out.NewCasesThisMonth++
		}
		if c.ResolvedAt != nil {
			resolutionHours += c.ResolvedAt.Sub(c.CreatedAt).Hours()
			resolvedWithTime++
		}
		out.CasesByPriority[string(c.Priority)]++
		out.CasesByStatus[string(c.Status)]++
	}

	if resolvedWithTime > 0 {
		out.AvgResolutionHours = resolutionHours / float64(resolvedWithTime)
	}
	return out
}

// ComputeInteractionAnalytics aggregates interaction figures. The mean
// duration spans interactions with a recorded duration only.
func ComputeInteractionAnalytics(interactions []models.Interaction, now time.Time) analytics.InteractionAnalytics {
	monthStart := startOfMonth(now)

	out := analytics.InteractionAnalytics{
		InteractionsByChannel: make(map[string]int),
	}

	var totalMinutes int
	var withDuration int

	for _, i := range interactions {
		out.TotalInteractions++
		if !i.InteractionDate.Before(monthStart) {
			out.InteractionsThisMonth++
		}
		if i.DurationMinutes != nil {
			totalMinutes += *i.DurationMinutes
			withDuration++
		}
		out.InteractionsByChannel[string(i.Channel)]++
	}

	if withDuration > 0 {
		out.AvgDurationMinutes = float64(totalMinutes) / float64(withDuration)
	}
	return out
}
