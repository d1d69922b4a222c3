package usecase

import (
	"context"
	"errors"
	"time"

	"ovacare/config"
	"ovacare/internal/analytics"
	"ovacare/internal/delivery/dto"
	"ovacare/internal/infrastructure/sheet"

	"github.com/sirupsen/logrus"
)

var ErrSheetUnavailable = errors.New("analytics source is unavailable")

type AnalyticsUsecase interface {
	Patients(ctx context.Context) (*dto.PatientAnalyticsResponse, error)
	Inventory(ctx context.Context) (*dto.InventoryAnalyticsResponse, error)
	Treatments(ctx context.Context) (*dto.TreatmentAnalyticsResponse, error)
}

type analyticsUsecase struct {
	log     *logrus.Logger
	fetcher sheet.Fetcher
	cfg     config.SheetsConfig
	now     func() time.Time
}

func NewAnalyticsUsecase(log *logrus.Logger, fetcher sheet.Fetcher, cfg config.SheetsConfig) AnalyticsUsecase {
	return &analyticsUsecase{
		log:     log,
		fetcher: fetcher,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Patients assembles every aggregate the patient dashboard renders from one
// snapshot of the ovarian CSV.
func (u *analyticsUsecase) Patients(ctx context.Context) (*dto.PatientAnalyticsResponse, error) {
	rows, err := u.fetch(ctx, u.cfg.OvarianDataURL)
	if err != nil {
		return nil, err
	}

	now := u.now()
	monthly := analytics.MonthlyCounts(rows, analytics.ColDateOfExam, now)
	regions, features := analytics.RegionFeatureBreakdown(rows)
	distribution := analytics.RiskDistribution(rows)

	return &dto.PatientAnalyticsResponse{
		Total:             len(rows),
		HighRisk:          distribution[analytics.RiskHigh],
		GrowthRatePercent: growthRate(monthly),
		Monthly:           monthly,
		RiskDistribution:  distribution,
		AgeRiskMatrix:     analytics.AgeRiskMatrix(rows),
		Regions:           regions,
		Features:          features,
	}, nil
}

func (u *analyticsUsecase) Inventory(ctx context.Context) (*dto.InventoryAnalyticsResponse, error) {
	rows, err := u.fetch(ctx, u.cfg.InventoryDataURL)
	if err != nil {
		return nil, err
	}

	items, totals := analytics.InventorySummary(rows)
	return &dto.InventoryAnalyticsResponse{
		Items:  items,
		Totals: totals,
	}, nil
}

func (u *analyticsUsecase) Treatments(ctx context.Context) (*dto.TreatmentAnalyticsResponse, error) {
	rows, err := u.fetch(ctx, u.cfg.TreatmentDataURL)
	if err != nil {
		return nil, err
	}

	return &dto.TreatmentAnalyticsResponse{
		Treatments:   rows,
		ByManagement: analytics.CountBy(rows, analytics.ColManagement),
		Total:        len(rows),
	}, nil
}

func (u *analyticsUsecase) fetch(ctx context.Context, url string) ([]analytics.Row, error) {
	rows, err := u.fetcher.Fetch(ctx, url)
	if err != nil {
		u.log.Warnf("Failed to fetch sheet %s: %+v", url, err)
		return nil, ErrSheetUnavailable
	}
	return rows, nil
}

// growthRate compares the newest month against the one before it, in
// percent. A zero previous month yields 0 rather than a division blowup.
func growthRate(monthly []analytics.MonthlyCount) float64 {
	if len(monthly) < 2 {
		return 0
	}
	current := monthly[len(monthly)-1].Count
	previous := monthly[len(monthly)-2].Count
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
