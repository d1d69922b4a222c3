package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLabel(t *testing.T) {
	tests := []struct {
		management string
		want       string
	}{
		{"Referral", RiskHigh},
		{"Surgery", RiskMedium},
		{"Medication", RiskLow},
		{"Observation", RiskModerate},
		{"", RiskUnknown},
		{"referral", RiskUnknown}, // matching is case-sensitive
		{"Chemotherapy", RiskUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLabel(tt.management), "management=%q", tt.management)
	}
}

func TestAgeBucket(t *testing.T) {
	tests := []struct {
		age  string
		want string
	}{
		{"17", "<30"},
		{"29", "<30"},
		{"30", "30-39"},
		{"39", "30-39"},
		{"40", "40-49"},
		{"49", "40-49"},
		{"50", "50+"},
		{"83", "50+"},
		{"", "<30"},        // non-numeric falls to the lowest bucket
		{"unknown", "<30"}, // same quirk
		{" 45 ", "40-49"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeBucket(tt.age), "age=%q", tt.age)
	}
}

func TestInventoryStatus(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      string
	}{
		{"zero stock", 0, 10, StatusCritical},
		{"at critical boundary", 5, 10, StatusCritical},
		{"just above critical", 6, 10, StatusLow},
		{"at threshold boundary", 10, 10, StatusLow},
		{"above threshold", 11, 10, StatusGood},
		{"tiny threshold", 3, 3, StatusCritical},
		{"plenty", 100, 10, StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InventoryStatus(tt.stock, tt.threshold))
		})
	}
}

func TestMenopauseGroup(t *testing.T) {
	assert.Equal(t, "Pre", MenopauseGroup("Pre-menopausal"))
	assert.Equal(t, "Pre", MenopauseGroup("premenopausal"))
	assert.Equal(t, "Post", MenopauseGroup("Post-menopausal"))
	assert.Equal(t, "Post", MenopauseGroup(""))
}

func TestExampleScenarioRow(t *testing.T) {
	row := Row{"Recommended Management": "Referral", "Age": "45"}

	assert.Equal(t, RiskHigh, RiskLabel(row.Get(ColManagement)))
	assert.Equal(t, "40-49", AgeBucket(row.Get(ColAge)))
}
