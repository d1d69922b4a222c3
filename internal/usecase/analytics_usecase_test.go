package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ovacare/config"
	"ovacare/internal/analytics"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	rows map[string][]analytics.Row
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]analytics.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[url], nil
}

func newAnalyticsForTest(fetcher *fakeFetcher, now time.Time) *analyticsUsecase {
	return &analyticsUsecase{
		log:     logrus.New(),
		fetcher: fetcher,
		cfg: config.SheetsConfig{
			OvarianDataURL:   "ovarian",
			InventoryDataURL: "inventory",
			TreatmentDataURL: "treatment",
		},
		now: func() time.Time { return now },
	}
}

func TestAnalyticsPatients(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{rows: map[string][]analytics.Row{
		"ovarian": {
			{analytics.ColDateOfExam: "2026-08-02", analytics.ColManagement: "Referral", analytics.ColAge: "52", analytics.ColRegion: "Nairobi"},
			{analytics.ColDateOfExam: "2026-08-20", analytics.ColManagement: "Surgery", analytics.ColAge: "44", analytics.ColRegion: "Nairobi"},
			{analytics.ColDateOfExam: "2026-07-10", analytics.ColManagement: "Observation", analytics.ColAge: "29", analytics.ColRegion: "Kisumu"},
			{analytics.ColDateOfExam: "2026-07-11", analytics.ColManagement: "Referral", analytics.ColAge: "61", analytics.ColRegion: "Kisumu"},
		},
	}}

	u := newAnalyticsForTest(fetcher, now)

	resp, err := u.Patients(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 2, resp.HighRisk)
	require.Len(t, resp.Monthly, 6)
	// July had 2 exams, August has 2: flat month over month.
	assert.Equal(t, 2, resp.Monthly[4].Count)
	assert.Equal(t, 2, resp.Monthly[5].Count)
	assert.Equal(t, 0.0, resp.GrowthRatePercent)
	assert.Equal(t, 2, resp.RiskDistribution[analytics.RiskHigh])
}

func TestAnalyticsPatientsGrowthRate(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{rows: map[string][]analytics.Row{
		"ovarian": {
			{analytics.ColDateOfExam: "2026-07-01", analytics.ColManagement: "Observation"},
			{analytics.ColDateOfExam: "2026-07-02", analytics.ColManagement: "Observation"},
			{analytics.ColDateOfExam: "2026-08-01", analytics.ColManagement: "Observation"},
			{analytics.ColDateOfExam: "2026-08-02", analytics.ColManagement: "Observation"},
			{analytics.ColDateOfExam: "2026-08-03", analytics.ColManagement: "Observation"},
		},
	}}

	u := newAnalyticsForTest(fetcher, now)

	resp, err := u.Patients(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 50.0, resp.GrowthRatePercent, 0.001)
}

func TestAnalyticsPatientsEmptyPreviousMonth(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{rows: map[string][]analytics.Row{
		"ovarian": {
			{analytics.ColDateOfExam: "2026-08-01", analytics.ColManagement: "Observation"},
		},
	}}

	u := newAnalyticsForTest(fetcher, now)

	resp, err := u.Patients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.GrowthRatePercent)
}

func TestAnalyticsSheetUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	u := newAnalyticsForTest(fetcher, time.Now())

	_, err := u.Patients(context.Background())
	assert.ErrorIs(t, err, ErrSheetUnavailable)

	_, err = u.Inventory(context.Background())
	assert.ErrorIs(t, err, ErrSheetUnavailable)

	_, err = u.Treatments(context.Background())
	assert.ErrorIs(t, err, ErrSheetUnavailable)
}

func TestAnalyticsTreatments(t *testing.T) {
	fetcher := &fakeFetcher{rows: map[string][]analytics.Row{
		"treatment": {
			{analytics.ColManagement: "Surgery"},
			{analytics.ColManagement: "Surgery"},
			{analytics.ColManagement: "Medication"},
		},
	}}

	u := newAnalyticsForTest(fetcher, time.Now())

	resp, err := u.Treatments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.ByManagement["Surgery"])
	assert.Equal(t, 1, resp.ByManagement["Medication"])
}
