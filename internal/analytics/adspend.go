package analytics

import (
	"log/slog"

	"storelens/internal/aggregate"
	"storelens/internal/normalize"
)

// Advertising spend report column headers. The daily column carries a
// trailing dot ("2024.01.05."), which the date normalizer strips.
const (
	colAdDate       = "일별"
	colAdCost       = "총비용(VAT포함,원)"
	colCampaignType = "캠페인유형"
	colCampaign     = "캠페인"
)

// AdSpend analyzes the advertising spend report: daily and per-campaign-type
// cost summaries plus totals. The report is machine-generated, so dates are
// coerced in place without dropping rows.
func (s *Service) AdSpend(startDate, endDate string) (*AdSpendData, error) {
	f, err := s.loadFrame(s.paths.AdSpendFile, "광고비")
	if err != nil {
		return nil, err
	}

	normalize.Dates(f, colAdDate, false)
	normalize.Numbers(f, colAdCost)
	applyDateRange(f, colAdDate, startDate, endDate)

	dailyRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colAdDate},
		Sum:     []string{colAdCost},
	})
	daily := make([]DailyCost, 0, len(dailyRecords))
	dailyCosts := make([]float64, 0, len(dailyRecords))
	for _, rec := range dailyRecords {
		cost := rec.Float(colAdCost)
		daily = append(daily, DailyCost{Date: rec.Date(colAdDate), TotalCost: cost})
		dailyCosts = append(dailyCosts, cost)
	}

	campaignRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colCampaignType},
		Sum:     []string{colAdCost},
	})
	campaigns := make([]CampaignCost, 0, len(campaignRecords))
	for _, rec := range campaignRecords {
		campaigns = append(campaigns, CampaignCost{
			CampaignType: rec.String(colCampaignType),
			TotalCost:    rec.Float(colAdCost),
		})
	}

	stats := AdSpendStats{
		TotalAdCost: aggregate.SumColumn(f.Rows, colAdCost),
		// Average over daily totals, not over report rows.
		DailyAverage:  aggregate.Mean(dailyCosts),
		CampaignCount: aggregate.Distinct(f.Rows, colCampaign),
	}

	s.logger.Info("ad spend analysis complete",
		slog.Int("row_count", len(f.Rows)),
		slog.Int("daily_buckets", len(daily)),
		slog.Int("campaign_count", stats.CampaignCount))

	return &AdSpendData{
		TotalStats:      stats,
		CampaignSummary: campaigns,
		DailySummary:    daily,
	}, nil
}
