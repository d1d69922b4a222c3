package dto

import "ovacare/internal/analytics"

// PatientAnalyticsResponse carries everything the patient dashboard renders
// from the ovarian CSV in one payload.
type PatientAnalyticsResponse struct {
	Total             int                         `json:"total"`
	HighRisk          int                         `json:"high_risk"`
	GrowthRatePercent float64                     `json:"growth_rate_percent"`
	Monthly           []analytics.MonthlyCount    `json:"monthly"`
	RiskDistribution  map[string]int              `json:"risk_distribution"`
	AgeRiskMatrix     map[string]map[string]int   `json:"age_risk_matrix"`
	Regions           []analytics.RegionBreakdown `json:"regions"`
	Features          []string                    `json:"features"`
}

type InventoryAnalyticsResponse struct {
	Items  []analytics.InventoryItem `json:"items"`
	Totals analytics.InventoryTotals `json:"totals"`
}

type TreatmentAnalyticsResponse struct {
	Treatments   []analytics.Row `json:"treatments"`
	ByManagement map[string]int  `json:"by_management"`
	Total        int             `json:"total"`
}
