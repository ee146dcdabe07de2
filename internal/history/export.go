package history

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"storelens/internal/errors"
)

// exportSheet is the single worksheet of the exported workbook.
const exportSheet = "분석기록"

// exportHeaders is the fixed column set of the export, one row per record.
var exportHeaders = []any{
	"ID", "날짜", "모듈", "기간", "총일수",
	"매출액", "환불액", "총할인액", "광고비", "목표광고비율",
	"순매출", "일평균순매출", "실할인액", "실할인률",
	"매출대비광고비율", "보정광고비율", "적정광고비", "일당적정광고비",
}

// Export flattens every record into one spreadsheet row and returns the
// workbook bytes plus a timestamped download name. An empty log is a
// not-found condition: there is nothing to export.
func (s *Store) Export() ([]byte, string, error) {
	records, err := s.storage.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load history: %w", err)
	}
	if len(records) == 0 {
		return nil, "", errors.NotFound("내보낼 데이터가 없습니다.")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name export sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, "", fmt.Errorf("failed to write export header: %w", err)
	}

	for i, rec := range records {
		row := []any{
			rec.ID,
			rec.Timestamp,
			rec.Module,
			rec.Metadata.Period,
			rec.Metadata.TotalDays,
			rec.Inputs.SalesAmount,
			rec.Inputs.RefundAmount,
			rec.Inputs.TotalDiscount,
			rec.Inputs.AdvertisingCost,
			rec.Inputs.TargetRatio,
			rec.Results.NetSales,
			rec.Results.DailyAvgNetSales,
			rec.Results.EffectiveDiscount,
			rec.Results.EffectiveDiscountRatio,
			rec.Results.SalesAdvertisingRatio,
			rec.Results.CorrectedRatio,
			rec.Results.AppropriateAdvertising,
			rec.Results.DailyAppropriateAdvertising,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to serialize export workbook: %w", err)
	}

	filename := fmt.Sprintf("analysis_history_%s.xlsx", s.now().Format("20060102_150405"))
	s.logger.Info("history exported",
		slog.Int("record_count", len(records)),
		slog.String("filename", filename))
	return buf.Bytes(), filename, nil
}
