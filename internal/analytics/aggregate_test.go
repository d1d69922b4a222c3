package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastSixMonths(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	months := LastSixMonths(now)

	require.Len(t, months, 6)
	assert.Equal(t, "Oct", months[0].Label)
	assert.Equal(t, 2025, months[0].Year)
	assert.Equal(t, "Mar", months[5].Label)
	assert.Equal(t, 2026, months[5].Year)
	// Window crosses the year boundary in order.
	labels := make([]string, 0, 6)
	for _, m := range months {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, labels)
}

func TestMonthlyCounts(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{ColDateOfExam: "2026-03-02"},
		{ColDateOfExam: "2026-03-28"},
		{ColDateOfExam: "2025-10-01"},
		{ColDateOfExam: "2025-03-02"}, // same month last year: out of window
		{ColDateOfExam: "2025-09-30"}, // before the window
		{ColDateOfExam: "not a date"},
		{},
	}

	counts := MonthlyCounts(rows, ColDateOfExam, now)

	require.Len(t, counts, 6)
	assert.Equal(t, 1, counts[0].Count) // Oct 2025
	assert.Equal(t, 0, counts[1].Count)
	assert.Equal(t, 2, counts[5].Count) // Mar 2026
}

func TestRiskDistribution(t *testing.T) {
	rows := []Row{
		{ColManagement: "Referral"},
		{ColManagement: "Referral"},
		{ColManagement: "Surgery"},
		{ColManagement: "Medication"},
		{ColManagement: "Observation"},
		{ColManagement: "Unmapped"},
		{},
	}

	dist := RiskDistribution(rows)

	assert.Equal(t, 2, dist[RiskHigh])
	assert.Equal(t, 1, dist[RiskMedium])
	assert.Equal(t, 1, dist[RiskLow])
	assert.Equal(t, 1, dist[RiskModerate])
	assert.Len(t, dist, 4) // unknown rows never appear
}

func TestAgeRiskMatrix(t *testing.T) {
	rows := []Row{
		{ColAge: "45", ColManagement: "Referral"},
		{ColAge: "45", ColManagement: "Surgery"},
		{ColAge: "25", ColManagement: "Medication"},
		{ColAge: "oops", ColManagement: "Observation"}, // non-numeric -> "<30"
		{ColAge: "60", ColManagement: "nothing known"}, // unknown risk dropped
	}

	matrix := AgeRiskMatrix(rows)

	require.Len(t, matrix, 4)
	assert.Equal(t, 1, matrix["40-49"][RiskHigh])
	assert.Equal(t, 1, matrix["40-49"][RiskMedium])
	assert.Equal(t, 1, matrix["<30"][RiskLow])
	assert.Equal(t, 1, matrix["<30"][RiskModerate])
	assert.Equal(t, 0, matrix["50+"][RiskHigh])
}

func TestRegionFeatureBreakdown(t *testing.T) {
	rows := []Row{
		{ColRegion: "Nairobi", ColMenopause: "Pre-menopausal", ColUltrasound: "Simple cyst"},
		{ColRegion: "Nairobi", ColMenopause: "Pre-menopausal", ColUltrasound: "Simple cyst"},
		{ColRegion: "Nairobi", ColMenopause: "Post-menopausal", ColUltrasound: "Solid mass"},
		{ColRegion: "", ColMenopause: "", ColUltrasound: ""},
	}

	breakdown, features := RegionFeatureBreakdown(rows)

	require.Len(t, breakdown, 3)
	assert.Equal(t, "Nairobi", breakdown[0].Region)
	assert.Equal(t, "Post", breakdown[0].Menopause)
	assert.Equal(t, map[string]int{"Solid mass": 1}, breakdown[0].Features)
	assert.Equal(t, "Pre", breakdown[1].Menopause)
	assert.Equal(t, 2, breakdown[1].Features["Simple cyst"])
	assert.Equal(t, "Unknown", breakdown[2].Region)
	assert.Equal(t, []string{"Simple cyst", "Solid mass", "Unknown"}, features)
}

func TestInventorySummary(t *testing.T) {
	rows := []Row{
		{ColItem: "Ultrasound gel", ColStock: "10", ColThreshold: "10", ColCost: "450.50"},
		{ColItem: "CA-125 kits", ColStock: "3", ColThreshold: "10"},
		{ColItem: "Gloves", ColStock: "200", ColThreshold: "50"},
		{ColItem: "Syringes", ColStock: "", ColThreshold: ""}, // defaults: 0 / 10
		{ColStock: "99"}, // no item name: skipped
	}

	items, totals := InventorySummary(rows)

	require.Len(t, items, 4)
	assert.Equal(t, StatusLow, items[0].Status) // boundary inclusive
	assert.Equal(t, "450.5", items[0].Cost.String())
	assert.Equal(t, StatusCritical, items[1].Status)
	assert.Equal(t, StatusGood, items[2].Status)
	assert.Equal(t, StatusCritical, items[3].Status)

	assert.Equal(t, InventoryTotals{Items: 4, Low: 1, Critical: 2, Restock: 3}, totals)
}

func TestCountBy(t *testing.T) {
	rows := []Row{
		{ColManagement: "Surgery"},
		{ColManagement: "Surgery"},
		{ColManagement: "Medication"},
		{},
	}

	counts := CountBy(rows, ColManagement)

	assert.Equal(t, map[string]int{"Surgery": 2, "Medication": 1, "Unknown": 1}, counts)
}
