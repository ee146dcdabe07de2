package analytics

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/config"
	"storelens/internal/errors"
)

// newTestService builds a Service over a temp data dir and returns both,
// so tests can drop source files in place.
func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(t.TempDir(), "data")
	paths, err := config.NewPaths(cfg.Paths, cfg.History)
	require.NoError(t, err)
	return NewService(paths, nil), paths.DataDir
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""+content), 0644))
}

func TestSettlement(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SettleCaseByCase.csv",
		"결제일,정산상태,정산기준금액,정산예정금액,네이버페이 주문관리 수수료,매출 연동 수수료 합계\n"+
			"2024.01.01,일반정산,60,50,-10,0\n"+
			"2024.01.01,빠른정산,60,50,-5,0\n"+
			"2024.01.02,정산전 취소,0,0,0,0\n")

	data, err := svc.Settlement("", "")
	require.NoError(t, err)

	stats := data.TotalStats
	assert.Equal(t, 120.0, stats.TotalGrossSales)
	assert.Equal(t, 100.0, stats.TotalNetSales)
	assert.Equal(t, -15.0, stats.TotalNaverFee)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.CancelledOrders)
	assert.Equal(t, 2, stats.SettledOrders)
	// |fees| / (net + |fees|) * 100 = 15/115*100
	assert.InDelta(t, 13.04, stats.ActualDiscountRate, 0.01)

	require.Len(t, data.DailySummary, 2)
	assert.Equal(t, "2024-01-01", data.DailySummary[0].Date)
	assert.Equal(t, 120.0, data.DailySummary[0].GrossSales)
	assert.Equal(t, 2, data.DailySummary[0].OrderCount)

	require.Len(t, data.StatusSummary, 3)
}

func TestSettlement_UndatedRowInTotalsOnly(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SettleCaseByCase.csv",
		"결제일,정산상태,정산기준금액,정산예정금액,네이버페이 주문관리 수수료,매출 연동 수수료 합계\n"+
			"2024.01.01,일반정산,100,90,0,0\n"+
			"not-a-date,일반정산,50,40,0,0\n")

	data, err := svc.Settlement("", "")
	require.NoError(t, err)

	assert.Equal(t, 150.0, data.TotalStats.TotalGrossSales)
	assert.Equal(t, 2, data.TotalStats.TotalOrders)
	require.Len(t, data.DailySummary, 1)
}

func TestSettlement_DateFilter(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SettleCaseByCase.csv",
		"결제일,정산상태,정산기준금액,정산예정금액,네이버페이 주문관리 수수료,매출 연동 수수료 합계\n"+
			"2024.01.01,일반정산,100,90,0,0\n"+
			"2024.01.05,일반정산,200,180,0,0\n"+
			"2024.01.10,일반정산,300,270,0,0\n")

	data, err := svc.Settlement("2024-01-02", "2024-01-09")
	require.NoError(t, err)

	assert.Equal(t, 200.0, data.TotalStats.TotalGrossSales)
	require.Len(t, data.DailySummary, 1)
	assert.Equal(t, "2024-01-05", data.DailySummary[0].Date)
}

func TestSettlement_UnparsableBoundaryIgnored(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SettleCaseByCase.csv",
		"결제일,정산상태,정산기준금액,정산예정금액,네이버페이 주문관리 수수료,매출 연동 수수료 합계\n"+
			"2024.01.01,일반정산,100,90,0,0\n")

	data, err := svc.Settlement("whenever", "")
	require.NoError(t, err)
	assert.Equal(t, 1, data.TotalStats.TotalOrders)
}

func TestSettlement_MissingFile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Settlement("", "")
	require.Error(t, err)
	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestSettlementMonthly(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SettleCaseByCase.csv",
		"결제일,정산상태,정산기준금액,정산예정금액,네이버페이 주문관리 수수료,매출 연동 수수료 합계\n"+
			"2024.01.15,일반정산,100,90,0,0\n"+
			"2024.02.01,일반정산,200,180,0,0\n"+
			"2024.01.20,일반정산,50,45,0,0\n")

	monthly, err := svc.SettlementMonthly()
	require.NoError(t, err)

	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-01", monthly[0].Month)
	assert.Equal(t, 150.0, monthly[0].GrossSales)
	assert.Equal(t, 2, monthly[0].OrderCount)
	assert.Equal(t, "2024-02", monthly[1].Month)
}

func TestSales(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SalesPerformance.csv",
		"날짜,결제금액,쿠폰합계,환불금액\n"+
			"2024.01.01,\"1,000\",100,200\n"+
			"2024-01-01,500,,0\n"+
			"malformed,999,0,0\n"+
			"2024.01.02,300,abc,100\n")

	data, err := svc.Sales("", "")
	require.NoError(t, err)

	// malformed-date row dropped entirely
	assert.Equal(t, 1800.0, data.TotalStats.TotalGrossSales)
	assert.Equal(t, 300.0, data.TotalStats.TotalRefund)
	assert.Equal(t, 1500.0, data.TotalStats.TotalNetSales)
	assert.Equal(t, 100.0, data.TotalStats.TotalCoupon)
	// coupon / (net + coupon) * 100 = 100/1600*100
	assert.InDelta(t, 6.25, data.TotalStats.ActualDiscountRate, 1e-9)

	require.Len(t, data.DailySummary, 2)
	day1 := data.DailySummary[0]
	assert.Equal(t, "2024-01-01", day1.Date)
	assert.Equal(t, 1500.0, day1.GrossSales)
	assert.Equal(t, 1300.0, day1.NetSales)
}

func TestSales_ZeroDenominatorRate(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SalesPerformance.csv",
		"날짜,결제금액,쿠폰합계,환불금액\n"+
			"2024.01.01,0,0,0\n")

	data, err := svc.Sales("", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, data.TotalStats.ActualDiscountRate)
}

func TestAdSpend(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "AdMultipleReport.csv",
		"일별,캠페인유형,캠페인,\"총비용(VAT포함,원)\"\n"+
			"2024.01.01.,파워링크,브랜드A,\"1,000\"\n"+
			"2024.01.02.,쇼핑검색,브랜드A,\"2,000\"\n")

	data, err := svc.AdSpend("", "")
	require.NoError(t, err)

	assert.Equal(t, 3000.0, data.TotalStats.TotalAdCost)
	assert.Equal(t, 1500.0, data.TotalStats.DailyAverage)
	assert.Equal(t, 1, data.TotalStats.CampaignCount)

	require.Len(t, data.DailySummary, 2)
	assert.Equal(t, "2024-01-01", data.DailySummary[0].Date)
	assert.Equal(t, 1000.0, data.DailySummary[0].TotalCost)
	assert.Equal(t, 2000.0, data.DailySummary[1].TotalCost)

	require.Len(t, data.CampaignSummary, 2)
	assert.Equal(t, "쇼핑검색", data.CampaignSummary[0].CampaignType)
}

func TestAdSpend_EmptyFileZeroAverage(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "AdMultipleReport.csv",
		"일별,캠페인유형,캠페인,\"총비용(VAT포함,원)\"\n")

	data, err := svc.AdSpend("", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, data.TotalStats.DailyAverage)
	assert.Equal(t, 0, data.TotalStats.CampaignCount)
}

func timeslotCSV() string {
	return "날짜,시간대,요일,채널그룹,채널명,채널상세,고객수,유입수\n" +
		"2024.01.07,10시,일,검색,네이버,키워드A,5,10\n" +
		"2024.01.07,10시,일,검색,네이버,키워드A,3,6\n" +
		"2024.01.08,23시,월,소셜,인스타그램,,2,4\n" +
		"2024.01.09,09시,화,검색,구글,,1,2\n" +
		"bad-date,10시,일,검색,네이버,키워드A,100,200\n" +
		"2024.01.10,10시,공휴일,검색,네이버,키워드A,50,60\n"
}

func TestTimeslot(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "timeslot.csv", timeslotCSV())

	data, err := svc.Timeslot("", "")
	require.NoError(t, err)

	// bad-date and unknown-weekday rows are gone from every aggregate
	assert.Equal(t, 11, data.TotalStats.TotalCustomers)
	assert.Equal(t, 22, data.TotalStats.TotalInflows)
	assert.Equal(t, 2, data.TotalStats.UniqueChannels)
	assert.Equal(t, 3, data.TotalStats.DateRangeDays)
	assert.Equal(t, weekdayOrder, data.WeekdayOrder)

	require.Len(t, data.HeatmapData, 3)
	assert.Equal(t, "일", data.HeatmapData[0].Weekday)
	assert.Equal(t, 10, data.HeatmapData[0].Hour)
	assert.Equal(t, 8, data.HeatmapData[0].Customers)
	assert.Equal(t, "월", data.HeatmapData[1].Weekday)
	assert.Equal(t, "화", data.HeatmapData[2].Weekday)

	// absent channel detail is grouped under "" rather than dropped
	require.Len(t, data.ChannelHourly, 3)
	assert.Equal(t, 9, data.ChannelHourly[0].Hour)
	assert.Equal(t, "", data.ChannelHourly[0].ChannelDetail)
}

func TestTimeslot_UnparsableBoundaryIgnored(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "timeslot.csv", timeslotCSV())

	data, err := svc.Timeslot("not-a-date", "2024-01-07")
	require.NoError(t, err)

	// start boundary ignored, end boundary applied
	assert.Equal(t, 8, data.TotalStats.TotalCustomers)
	assert.Equal(t, 1, data.TotalStats.DateRangeDays)
}

func TestLoadFrame_CacheDoesNotLeakNormalization(t *testing.T) {
	svc, dir := newTestService(t)
	writeSource(t, dir, "SalesPerformance.csv",
		"날짜,결제금액,쿠폰합계,환불금액\n2024.01.01,\"1,000\",0,0\n")

	first, err := svc.Sales("", "")
	require.NoError(t, err)
	second, err := svc.Sales("", "")
	require.NoError(t, err)

	assert.Equal(t, first.TotalStats, second.TotalStats)
	assert.Equal(t, first.DailySummary, second.DailySummary)
}
