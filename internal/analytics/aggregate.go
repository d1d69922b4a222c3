package analytics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one spreadsheet row: a mapping from column header to cell value.
type Row map[string]string

// Get returns the trimmed cell value for a column, or "" when the column is
// missing. Downstream code must coalesce missing columns defensively.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Column headers of the patient (ovarian) sheet.
const (
	ColPatientID  = "Patient ID"
	ColAge        = "Age"
	ColRegion     = "Region"
	ColMenopause  = "Menopause Status"
	ColUltrasound = "Ultrasound Features"
	ColManagement = "Recommended Management"
	ColDateOfExam = "Date of Exam"
)

// Column headers of the inventory sheet.
const (
	ColItem        = "Item"
	ColStock       = "Available Stock"
	ColThreshold   = "Threshold"
	ColCategory    = "Category"
	ColFacility    = "Facility"
	ColCost        = "Cost"
	ColLastRestock = "Last Restock"
	ColSupplier    = "Supplier"
)

// Month identifies one calendar month of the reporting window.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"-"`
	Label string     `json:"label"`
}

// LastSixMonths returns the six calendar months ending at now's month,
// oldest first.
func LastSixMonths(now time.Time) []Month {
	months := make([]Month, 0, 6)
	for i := 5; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		months = append(months, Month{
			Year:  d.Year(),
			Month: d.Month(),
			Label: d.Format("Jan"),
		})
	}
	return months
}

// MonthlyCount is the number of rows whose date column fell in one month of
// the window.
type MonthlyCount struct {
	Month
	Count int `json:"count"`
}

// MonthlyCounts buckets rows into the last six calendar months by the given
// date column. Rows with unparseable or out-of-window dates are dropped.
// Buckets are keyed by (year, month), so a January from last year never
// counts into this year's January.
func MonthlyCounts(rows []Row, dateColumn string, now time.Time) []MonthlyCount {
	months := LastSixMonths(now)
	counts := make([]MonthlyCount, len(months))
	for i, m := range months {
		counts[i] = MonthlyCount{Month: m}
	}

	for _, row := range rows {
		d, ok := parseSheetDate(row.Get(dateColumn))
		if !ok {
			continue
		}
		for i := range counts {
			if counts[i].Year == d.Year() && counts[i].Month.Month == d.Month() {
				counts[i].Count++
				break
			}
		}
	}
	return counts
}

// RiskDistribution counts rows per derived risk label. Unknown rows are
// excluded; all four known labels are always present in the result.
func RiskDistribution(rows []Row) map[string]int {
	counts := map[string]int{RiskLow: 0, RiskMedium: 0, RiskHigh: 0, RiskModerate: 0}
	for _, row := range rows {
		risk := RiskLabel(row.Get(ColManagement))
		if risk == RiskUnknown {
			continue
		}
		counts[risk]++
	}
	return counts
}

// AgeRiskMatrix counts rows per (age bucket, risk label). All cells exist
// even when zero so chart series stay aligned.
func AgeRiskMatrix(rows []Row) map[string]map[string]int {
	matrix := make(map[string]map[string]int, len(AgeBuckets))
	for _, bucket := range AgeBuckets {
		matrix[bucket] = map[string]int{RiskLow: 0, RiskMedium: 0, RiskHigh: 0, RiskModerate: 0}
	}
	for _, row := range rows {
		risk := RiskLabel(row.Get(ColManagement))
		if risk == RiskUnknown {
			continue
		}
		matrix[AgeBucket(row.Get(ColAge))][risk]++
	}
	return matrix
}

// RegionBreakdown is one (region, menopause group) cell of the regional
// ultrasound-feature chart.
type RegionBreakdown struct {
	Region    string         `json:"region"`
	Menopause string         `json:"menopause"`
	Features  map[string]int `json:"features"`
}

// RegionFeatureBreakdown groups rows by region and menopause group and counts
// ultrasound features inside each cell. Missing region or feature values are
// bucketed as "Unknown". The result is sorted by region then menopause, and
// the second return value lists every feature seen, sorted.
func RegionFeatureBreakdown(rows []Row) ([]RegionBreakdown, []string) {
	type key struct{ region, menopause string }
	cells := make(map[key]map[string]int)
	featureSet := make(map[string]struct{})

	for _, row := range rows {
		region := row.Get(ColRegion)
		if region == "" {
			region = "Unknown"
		}
		feature := row.Get(ColUltrasound)
		if feature == "" {
			feature = "Unknown"
		}
		k := key{region: region, menopause: MenopauseGroup(row.Get(ColMenopause))}
		if cells[k] == nil {
			cells[k] = make(map[string]int)
		}
		cells[k][feature]++
		featureSet[feature] = struct{}{}
	}

	breakdown := make([]RegionBreakdown, 0, len(cells))
	for k, features := range cells {
		breakdown = append(breakdown, RegionBreakdown{Region: k.region, Menopause: k.menopause, Features: features})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Region != breakdown[j].Region {
			return breakdown[i].Region < breakdown[j].Region
		}
		return breakdown[i].Menopause < breakdown[j].Menopause
	})

	features := make([]string, 0, len(featureSet))
	for f := range featureSet {
		features = append(features, f)
	}
	sort.Strings(features)

	return breakdown, features
}

// InventoryItem is one inventory row with its derived status.
type InventoryItem struct {
	Item        string          `json:"item"`
	Stock       int             `json:"stock"`
	Threshold   int             `json:"threshold"`
	Category    string          `json:"category"`
	Facility    string          `json:"facility"`
	Cost        decimal.Decimal `json:"cost"`
	LastRestock string          `json:"last_restock"`
	Supplier    string          `json:"supplier"`
	Status      string          `json:"status"`
}

// InventoryTotals summarizes derived statuses across all items.
type InventoryTotals struct {
	Items    int `json:"items"`
	Low      int `json:"low"`
	Critical int `json:"critical"`
	Restock  int `json:"restock"`
}

// InventorySummary derives per-item status for every row carrying an Item
// value. Missing stock defaults to 0 and missing threshold to 10, matching
// the dashboard's coalescing rules. Restock counts every non-good item.
func InventorySummary(rows []Row) ([]InventoryItem, InventoryTotals) {
	var items []InventoryItem
	var totals InventoryTotals

	for _, row := range rows {
		name := row.Get(ColItem)
		if name == "" {
			continue
		}
		stock := atoiDefault(row.Get(ColStock), 0)
		threshold := atoiDefault(row.Get(ColThreshold), 10)
		cost, err := decimal.NewFromString(row.Get(ColCost))
		if err != nil {
			cost = decimal.Zero
		}

		item := InventoryItem{
			Item:        name,
			Stock:       stock,
			Threshold:   threshold,
			Category:    row.Get(ColCategory),
			Facility:    row.Get(ColFacility),
			Cost:        cost,
			LastRestock: row.Get(ColLastRestock),
			Supplier:    row.Get(ColSupplier),
			Status:      InventoryStatus(stock, threshold),
		}
		items = append(items, item)

		totals.Items++
		switch item.Status {
		case StatusLow:
			totals.Low++
			totals.Restock++
		case StatusCritical:
			totals.Critical++
			totals.Restock++
		}
	}
	return items, totals
}

// CountBy tallies rows by the values of one column. Empty cells are counted
// under "Unknown".
func CountBy(rows []Row, column string) map[string]int {
	counts := make(map[string]int)
	for _, row := range rows {
		v := row.Get(column)
		if v == "" {
			v = "Unknown"
		}
		counts[v]++
	}
	return counts
}

var sheetDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"1/2/2006",
	"2006/01/02",
	"02-01-2006",
}

func parseSheetDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range sheetDateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
