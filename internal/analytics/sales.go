package analytics

import (
	"log/slog"

	"storelens/internal/aggregate"
	"storelens/internal/normalize"
)

// Sales performance log column headers.
const (
	colSalesDate   = "날짜"
	colPayAmount   = "결제금액"
	colCouponTotal = "쿠폰합계"
	colRefund      = "환불금액"
)

// Sales analyzes the sales performance log. The log is assembled by hand
// and may contain malformed dates; those rows are dropped before any
// aggregation.
func (s *Service) Sales(startDate, endDate string) (*SalesData, error) {
	f, err := s.loadFrame(s.paths.SalesFile, "판매성과")
	if err != nil {
		return nil, err
	}

	normalize.Dates(f, colSalesDate, true)
	normalize.Numbers(f, colPayAmount, colCouponTotal, colRefund)
	applyDateRange(f, colSalesDate, startDate, endDate)

	records := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colSalesDate},
		Sum:     []string{colPayAmount, colCouponTotal, colRefund},
	})

	daily := make([]SalesDaily, 0, len(records))
	for _, rec := range records {
		gross := rec.Float(colPayAmount)
		refund := rec.Float(colRefund)
		daily = append(daily, SalesDaily{
			Date:         rec.Date(colSalesDate),
			GrossSales:   gross,
			CouponTotal:  rec.Float(colCouponTotal),
			RefundAmount: refund,
			NetSales:     gross - refund,
		})
	}

	totalGross := aggregate.SumColumn(f.Rows, colPayAmount)
	totalCoupon := aggregate.SumColumn(f.Rows, colCouponTotal)
	totalRefund := aggregate.SumColumn(f.Rows, colRefund)
	totalNet := totalGross - totalRefund

	stats := SalesStats{
		TotalGrossSales:    totalGross,
		TotalNetSales:      totalNet,
		TotalCoupon:        totalCoupon,
		TotalRefund:        totalRefund,
		ActualDiscountRate: aggregate.GuardedRate(totalCoupon, totalNet+totalCoupon),
	}

	s.logger.Info("sales performance analysis complete",
		slog.Int("row_count", len(f.Rows)),
		slog.Int("daily_buckets", len(daily)))

	return &SalesData{TotalStats: stats, DailySummary: daily}, nil
}
