// Package history implements the append-only analysis history: an ordered,
// capped log of past manual analyses with filter, statistics and
// spreadsheet-export operations over an injected storage backend.
package history

// Inputs are the operator-entered figures of one analysis. Every field is
// optional in the persisted JSON and defaults to zero.
type Inputs struct {
	SalesAmount     float64 `json:"sales_amount"`
	RefundAmount    float64 `json:"refund_amount"`
	TotalDiscount   float64 `json:"total_discount"`
	AdvertisingCost float64 `json:"advertising_cost"`
	TargetRatio     float64 `json:"target_ratio"`
}

// Results are the figures the analysis module derived from the inputs.
type Results struct {
	NetSales                    float64 `json:"net_sales"`
	DailyAvgNetSales            float64 `json:"daily_avg_net_sales"`
	EffectiveDiscount           float64 `json:"effective_discount"`
	EffectiveDiscountRatio      float64 `json:"effective_discount_ratio"`
	SalesAdvertisingRatio       float64 `json:"sales_advertising_ratio"`
	CorrectedRatio              float64 `json:"corrected_ratio"`
	AppropriateAdvertising      float64 `json:"appropriate_advertising"`
	DailyAppropriateAdvertising float64 `json:"daily_appropriate_advertising"`
}

// Metadata describes the analysis period.
type Metadata struct {
	Period    string `json:"period"`
	TotalDays int    `json:"total_days"`
}

// Record is one persisted analysis. Immutable after creation; identified
// and deleted only by ID.
type Record struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Module    string   `json:"module"`
	Inputs    Inputs   `json:"inputs"`
	Results   Results  `json:"results"`
	Metadata  Metadata `json:"metadata"`
}

// Statistics summarizes the full log.
type Statistics struct {
	TotalRecords        int     `json:"total_records"`
	TotalSales          float64 `json:"total_sales"`
	TotalNetSales       float64 `json:"total_net_sales"`
	AvgAdvertisingRatio float64 `json:"avg_advertising_ratio"`
	AvgRefundRatio      float64 `json:"avg_refund_ratio"`
	AvgDiscountRatio    float64 `json:"avg_discount_ratio"`
}
