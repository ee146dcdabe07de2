package analytics

// SettlementStats are the settlement ledger totals.
type SettlementStats struct {
	TotalGrossSales    float64 `json:"total_gross_sales"`
	TotalNetSales      float64 `json:"total_net_sales"`
	TotalNaverFee      float64 `json:"total_naver_fee"`
	TotalSalesFee      float64 `json:"total_sales_fee"`
	TotalOrders        int     `json:"total_orders"`
	CancelledOrders    int     `json:"cancelled_orders"`
	SettledOrders      int     `json:"settled_orders"`
	ActualDiscountRate float64 `json:"actual_discount_rate"`
}

// StatusSummary is the settlement ledger grouped by settlement status.
type StatusSummary struct {
	Status     string  `json:"status"`
	GrossSales float64 `json:"gross_sales"`
	NetSales   float64 `json:"net_sales"`
	OrderCount int     `json:"order_count"`
}

// SettlementDaily is one day of the settlement ledger.
type SettlementDaily struct {
	Date       string  `json:"date"`
	GrossSales float64 `json:"gross_sales"`
	NetSales   float64 `json:"net_sales"`
	NaverFee   float64 `json:"naver_fee"`
	SalesFee   float64 `json:"sales_fee"`
	OrderCount int     `json:"order_count"`
}

// SettlementMonthly is one calendar month of the settlement ledger.
type SettlementMonthly struct {
	Month      string  `json:"month"`
	GrossSales float64 `json:"gross_sales"`
	NetSales   float64 `json:"net_sales"`
	NaverFee   float64 `json:"naver_fee"`
	SalesFee   float64 `json:"sales_fee"`
	OrderCount int     `json:"order_count"`
}

// SettlementData is the full settlement analysis result.
type SettlementData struct {
	TotalStats    SettlementStats   `json:"total_stats"`
	StatusSummary []StatusSummary   `json:"status_summary"`
	DailySummary  []SettlementDaily `json:"daily_summary"`
}

// SalesStats are the sales performance totals.
type SalesStats struct {
	TotalGrossSales    float64 `json:"total_gross_sales"`
	TotalNetSales      float64 `json:"total_net_sales"`
	TotalCoupon        float64 `json:"total_coupon"`
	TotalRefund        float64 `json:"total_refund"`
	ActualDiscountRate float64 `json:"actual_discount_rate"`
}

// SalesDaily is one day of the sales performance log.
type SalesDaily struct {
	Date         string  `json:"date"`
	GrossSales   float64 `json:"gross_sales"`
	CouponTotal  float64 `json:"coupon_total"`
	RefundAmount float64 `json:"refund_amount"`
	NetSales     float64 `json:"net_sales"`
}

// SalesData is the full sales performance analysis result.
type SalesData struct {
	TotalStats   SalesStats   `json:"total_stats"`
	DailySummary []SalesDaily `json:"daily_summary"`
}

// AdSpendStats are the advertising spend totals.
type AdSpendStats struct {
	TotalAdCost   float64 `json:"total_ad_cost"`
	DailyAverage  float64 `json:"daily_average"`
	CampaignCount int     `json:"campaign_count"`
}

// CampaignCost is the ad spend grouped by campaign type.
type CampaignCost struct {
	CampaignType string  `json:"campaign_type"`
	TotalCost    float64 `json:"total_cost"`
}

// DailyCost is one day of advertising spend.
type DailyCost struct {
	Date      string  `json:"date"`
	TotalCost float64 `json:"total_cost"`
}

// AdSpendData is the full advertising spend analysis result.
type AdSpendData struct {
	TotalStats      AdSpendStats   `json:"total_stats"`
	CampaignSummary []CampaignCost `json:"campaign_summary"`
	DailySummary    []DailyCost    `json:"daily_summary"`
}

// TimeslotStats are the hourly traffic totals.
type TimeslotStats struct {
	TotalCustomers int `json:"total_customers"`
	TotalInflows   int `json:"total_inflows"`
	UniqueChannels int `json:"unique_channels"`
	DateRangeDays  int `json:"date_range_days"`
}

// HeatmapCell is the traffic of one weekday and hour.
type HeatmapCell struct {
	Weekday      string `json:"weekday"`
	WeekdayIndex int    `json:"weekday_index"`
	Hour         int    `json:"hour"`
	Customers    int    `json:"customers"`
	Inflows      int    `json:"inflows"`
}

// ChannelHourly is the traffic of one channel in one hour of day.
type ChannelHourly struct {
	Hour          int    `json:"hour"`
	ChannelGroup  string `json:"channel_group"`
	ChannelName   string `json:"channel_name"`
	ChannelDetail string `json:"channel_detail"`
	Customers     int    `json:"customers"`
	Inflows       int    `json:"inflows"`
}

// ChannelWeekdayHourly is the traffic of one channel in one weekday-hour
// slot, used for detail filtering in the dashboard.
type ChannelWeekdayHourly struct {
	Weekday       string `json:"weekday"`
	WeekdayIndex  int    `json:"weekday_index"`
	Hour          int    `json:"hour"`
	ChannelGroup  string `json:"channel_group"`
	ChannelName   string `json:"channel_name"`
	ChannelDetail string `json:"channel_detail"`
	Customers     int    `json:"customers"`
	Inflows       int    `json:"inflows"`
}

// TimeslotData is the full hourly traffic analysis result.
type TimeslotData struct {
	TotalStats           TimeslotStats          `json:"total_stats"`
	HeatmapData          []HeatmapCell          `json:"heatmap_data"`
	ChannelHourly        []ChannelHourly        `json:"channel_hourly"`
	ChannelWeekdayHourly []ChannelWeekdayHourly `json:"channel_weekday_hourly"`
	WeekdayOrder         []string               `json:"weekday_order"`
}
