// Package analytics holds the pure derivation and aggregation rules shared
// by every reporting view. The dashboard pages all parameterize over these
// functions so there is exactly one source of truth for risk mapping, age
// bucketing and inventory status.
package analytics

import (
	"strconv"
	"strings"
)

// Risk labels derived from the "Recommended Management" column.
const (
	RiskHigh     = "High"
	RiskMedium   = "Medium"
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskUnknown  = "-"
)

// RiskLevels lists the known labels in display order.
var RiskLevels = []string{RiskLow, RiskMedium, RiskHigh, RiskModerate}

// RiskLabel maps a recommended-management value to a risk label. Matching is
// exact and case-sensitive; any other value, including empty, is unknown.
func RiskLabel(management string) string {
	switch management {
	case "Referral":
		return RiskHigh
	case "Surgery":
		return RiskMedium
	case "Medication":
		return RiskLow
	case "Observation":
		return RiskModerate
	default:
		return RiskUnknown
	}
}

// Age buckets in display order.
var AgeBuckets = []string{"<30", "30-39", "40-49", "50+"}

// AgeBucket places an age string into its bucket. Non-numeric ages fall into
// the lowest bucket.
func AgeBucket(age string) string {
	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return "<30"
	}
	switch {
	case n < 30:
		return "<30"
	case n < 40:
		return "30-39"
	case n < 50:
		return "40-49"
	default:
		return "50+"
	}
}

// Inventory status labels derived from stock against threshold.
const (
	StatusCritical = "critical"
	StatusLow      = "low"
	StatusGood     = "good"
)

// InventoryStatus derives an item status. The boundary at exactly threshold
// resolves to low, not good; at or below five units it is critical.
func InventoryStatus(stock, threshold int) string {
	if stock <= threshold {
		if stock <= 5 {
			return StatusCritical
		}
		return StatusLow
	}
	return StatusGood
}

// MenopauseGroup collapses a free-text menopause status into Pre or Post.
// Any value containing "pre" (case-insensitive) is Pre; everything else,
// including empty, is Post.
func MenopauseGroup(status string) string {
	if strings.Contains(strings.ToLower(status), "pre") {
		return "Pre"
	}
	return "Post"
}
