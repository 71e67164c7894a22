// Package analytics holds the aggregate figures served by the dashboard
// endpoints.
package analytics

import "time"

type CustomerAnalytics struct {
	TotalCustomers        int            `json:"total_customers"`
	ActiveCustomers       int            `json:"active_customers"`
	NewCustomersThisMonth int            `json:"new_customers_this_month"`
	CustomersBySegment    map[string]int `json:"customers_by_segment"`
	CustomersByKYCStatus  map[string]int `json:"customers_by_kyc_status"`
}

type CaseAnalytics struct {
	TotalCases         int            `json:"total_cases"`
	OpenCases          int            `json:"open_cases"`
	ResolvedCases      int            `json:"resolved_cases"`
	NewCasesThisMonth  int            `json:"new_cases_this_month"`
	AvgResolutionHours float64        `json:"avg_resolution_hours"`
	CasesByPriority    map[string]int `json:"cases_by_priority"`
	CasesByStatus      map[string]int `json:"cases_by_status"`
}

type InteractionAnalytics struct {
	TotalInteractions     int            `json:"total_interactions"`
	InteractionsThisMonth int            `json:"interactions_this_month"`
	AvgDurationMinutes    float64        `json:"avg_duration_minutes"`
	InteractionsByChannel map[string]int `json:"interactions_by_channel"`
}

type Dashboard struct {
	Customers    CustomerAnalytics    `json:"customers"`
	Cases        CaseAnalytics        `json:"cases"`
	Interactions InteractionAnalytics `json:"interactions"`
	GeneratedAt  time.Time            `json:"generated_at"`
}
