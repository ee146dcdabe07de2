package analytics

import (
	"log/slog"
	"math"
	"time"

	"storelens/internal/aggregate"
	"storelens/internal/frame"
	"storelens/internal/normalize"
)

// Settlement ledger column headers as written by the marketplace export.
const (
	colPaymentDate  = "결제일"
	colSettleStatus = "정산상태"
	colGrossAmount  = "정산기준금액"
	colNetAmount    = "정산예정금액"
	colNaverFee     = "네이버페이 주문관리 수수료"
	colSalesFee     = "매출 연동 수수료 합계"
)

// Settlement statuses used for the order counts.
const (
	statusCancelled = "정산전 취소"
	statusRegular   = "일반정산"
	statusFast      = "빠른정산"
)

// Settlement analyzes the settlement ledger: totals, per-status and daily
// summaries. The ledger is pre-validated upstream, so dates are coerced in
// place and rows are never dropped; undated rows still count toward the
// totals but cannot appear in the daily summary.
func (s *Service) Settlement(startDate, endDate string) (*SettlementData, error) {
	f, err := s.loadFrame(s.paths.SettlementFile, "정산")
	if err != nil {
		return nil, err
	}

	normalize.Dates(f, colPaymentDate, false)
	normalize.Numbers(f, colGrossAmount, colNetAmount, colNaverFee, colSalesFee)
	applyDateRange(f, colPaymentDate, startDate, endDate)

	statusRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colSettleStatus},
		Sum:     []string{colGrossAmount, colNetAmount},
		Count:   "order_count",
	})
	statusSummary := make([]StatusSummary, 0, len(statusRecords))
	for _, rec := range statusRecords {
		statusSummary = append(statusSummary, StatusSummary{
			Status:     rec.String(colSettleStatus),
			GrossSales: rec.Float(colGrossAmount),
			NetSales:   rec.Float(colNetAmount),
			OrderCount: rec.Int("order_count"),
		})
	}

	dailyRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colPaymentDate},
		Sum:     []string{colGrossAmount, colNetAmount, colNaverFee, colSalesFee},
		Count:   "order_count",
	})
	dailySummary := make([]SettlementDaily, 0, len(dailyRecords))
	for _, rec := range dailyRecords {
		dailySummary = append(dailySummary, SettlementDaily{
			Date:       rec.Date(colPaymentDate),
			GrossSales: rec.Float(colGrossAmount),
			NetSales:   rec.Float(colNetAmount),
			NaverFee:   rec.Float(colNaverFee),
			SalesFee:   rec.Float(colSalesFee),
			OrderCount: rec.Int("order_count"),
		})
	}

	totalNaverFee := aggregate.SumColumn(f.Rows, colNaverFee)
	totalSalesFee := aggregate.SumColumn(f.Rows, colSalesFee)
	totalNetSales := aggregate.SumColumn(f.Rows, colNetAmount)
	totalFees := totalNaverFee + totalSalesFee

	cancelled, settled := 0, 0
	for _, row := range f.Rows {
		switch row.String(colSettleStatus) {
		case statusCancelled:
			cancelled++
		case statusRegular, statusFast:
			settled++
		}
	}

	stats := SettlementStats{
		TotalGrossSales: aggregate.SumColumn(f.Rows, colGrossAmount),
		TotalNetSales:   totalNetSales,
		TotalNaverFee:   totalNaverFee,
		TotalSalesFee:   totalSalesFee,
		TotalOrders:     len(f.Rows),
		CancelledOrders: cancelled,
		SettledOrders:   settled,
		// The marketplace nets its fees out of the settlement, so the fee
		// total acts as the effective discount against net sales.
		ActualDiscountRate: aggregate.GuardedRate(
			math.Abs(totalFees), totalNetSales+math.Abs(totalFees)),
	}

	s.logger.Info("settlement analysis complete",
		slog.Int("order_count", stats.TotalOrders),
		slog.Int("daily_buckets", len(dailySummary)))

	return &SettlementData{
		TotalStats:    stats,
		StatusSummary: statusSummary,
		DailySummary:  dailySummary,
	}, nil
}

// SettlementMonthly aggregates the settlement ledger by calendar month over
// the full file.
func (s *Service) SettlementMonthly() ([]SettlementMonthly, error) {
	f, err := s.loadFrame(s.paths.SettlementFile, "정산")
	if err != nil {
		return nil, err
	}

	normalize.Dates(f, colPaymentDate, false)
	normalize.Numbers(f, colGrossAmount, colNetAmount, colNaverFee, colSalesFee)

	// Derive the month key; undated rows keep a nil key and stay out of
	// the monthly buckets.
	for _, row := range f.Rows {
		if t, ok := row.Date(colPaymentDate); ok {
			row["month"] = t.Format("2006-01")
		} else {
			row["month"] = nil
		}
	}

	records := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{"month"},
		Sum:     []string{colGrossAmount, colNetAmount, colNaverFee, colSalesFee},
		Count:   "order_count",
	})

	monthly := make([]SettlementMonthly, 0, len(records))
	for _, rec := range records {
		monthly = append(monthly, SettlementMonthly{
			Month:      rec.String("month"),
			GrossSales: rec.Float(colGrossAmount),
			NetSales:   rec.Float(colNetAmount),
			NaverFee:   rec.Float(colNaverFee),
			SalesFee:   rec.Float(colSalesFee),
			OrderCount: rec.Int("order_count"),
		})
	}
	return monthly, nil
}

// rowsDateSpan returns the inclusive day span between the oldest and newest
// dated rows, 0 when no row carries a date.
func rowsDateSpan(rows []frame.Row, col string) int {
	var min, max time.Time
	found := false
	for _, row := range rows {
		t, ok := row.Date(col)
		if !ok {
			continue
		}
		if !found {
			min, max = t, t
			found = true
			continue
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	if !found {
		return 0
	}
	return int(max.Sub(min).Hours()/24) + 1
}
