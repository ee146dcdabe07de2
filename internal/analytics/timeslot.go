package analytics

import (
	"log/slog"
	"regexp"
	"strconv"

	"storelens/internal/aggregate"
	"storelens/internal/normalize"
)

// Hourly traffic log column headers.
const (
	colTrafficDate   = "날짜"
	colTimeslot      = "시간대"
	colWeekday       = "요일"
	colChannelGroup  = "채널그룹"
	colChannelName   = "채널명"
	colChannelDetail = "채널상세"
	colCustomers     = "고객수"
	colInflows       = "유입수"
)

// Derived columns added during normalization.
const (
	colHour         = "시간"
	colWeekdayIndex = "요일_순서"
)

// weekdayOrder fixes the output ordering of weekday aggregates, Sunday
// through Saturday as the storefront displays them.
var weekdayOrder = []string{"일", "월", "화", "수", "목", "금", "토"}

var hourPattern = regexp.MustCompile(`\d+`)

// Timeslot analyzes the hourly traffic log: weekday-by-hour heatmap,
// per-channel hourly breakdowns and overall traffic totals. Rows with an
// unparseable date, timeslot or weekday are dropped; an absent channel
// detail becomes the empty string so its traffic still counts.
func (s *Service) Timeslot(startDate, endDate string) (*TimeslotData, error) {
	f, err := s.loadFrame(s.paths.TimeslotFile, "시간대")
	if err != nil {
		return nil, err
	}

	normalize.Dates(f, colTrafficDate, true)
	normalize.Numbers(f, colCustomers, colInflows)
	applyDateRange(f, colTrafficDate, startDate, endDate)

	weekdayIndex := make(map[string]int, len(weekdayOrder))
	for i, day := range weekdayOrder {
		weekdayIndex[day] = i
	}

	// Derive the hour ("00시" -> 0) and the weekday sort index; rows that
	// yield neither are unusable for any timeslot aggregate.
	kept := f.Rows[:0]
	for _, row := range f.Rows {
		digits := hourPattern.FindString(row.String(colTimeslot))
		if digits == "" {
			continue
		}
		hour, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		idx, known := weekdayIndex[row.String(colWeekday)]
		if !known {
			continue
		}
		row[colHour] = float64(hour)
		row[colWeekdayIndex] = float64(idx)
		kept = append(kept, row)
	}
	f.Rows = kept

	normalize.FillEmpty(f, colChannelDetail)

	heatmapRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colWeekday, colWeekdayIndex, colHour},
		Sum:     []string{colCustomers, colInflows},
		OrderBy: []string{colWeekdayIndex, colHour},
	})
	heatmap := make([]HeatmapCell, 0, len(heatmapRecords))
	for _, rec := range heatmapRecords {
		heatmap = append(heatmap, HeatmapCell{
			Weekday:      rec.String(colWeekday),
			WeekdayIndex: int(rec.Float(colWeekdayIndex)),
			Hour:         int(rec.Float(colHour)),
			Customers:    int(rec.Float(colCustomers)),
			Inflows:      int(rec.Float(colInflows)),
		})
	}

	hourlyRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colHour, colChannelGroup, colChannelName, colChannelDetail},
		Sum:     []string{colCustomers, colInflows},
	})
	channelHourly := make([]ChannelHourly, 0, len(hourlyRecords))
	for _, rec := range hourlyRecords {
		channelHourly = append(channelHourly, ChannelHourly{
			Hour:          int(rec.Float(colHour)),
			ChannelGroup:  rec.String(colChannelGroup),
			ChannelName:   rec.String(colChannelName),
			ChannelDetail: rec.String(colChannelDetail),
			Customers:     int(rec.Float(colCustomers)),
			Inflows:       int(rec.Float(colInflows)),
		})
	}

	detailRecords := aggregate.Aggregate(f.Rows, aggregate.Spec{
		GroupBy: []string{colWeekday, colWeekdayIndex, colHour, colChannelGroup, colChannelName, colChannelDetail},
		Sum:     []string{colCustomers, colInflows},
		OrderBy: []string{colWeekdayIndex, colHour, colChannelGroup, colChannelName, colChannelDetail},
	})
	channelWeekdayHourly := make([]ChannelWeekdayHourly, 0, len(detailRecords))
	for _, rec := range detailRecords {
		channelWeekdayHourly = append(channelWeekdayHourly, ChannelWeekdayHourly{
			Weekday:       rec.String(colWeekday),
			WeekdayIndex:  int(rec.Float(colWeekdayIndex)),
			Hour:          int(rec.Float(colHour)),
			ChannelGroup:  rec.String(colChannelGroup),
			ChannelName:   rec.String(colChannelName),
			ChannelDetail: rec.String(colChannelDetail),
			Customers:     int(rec.Float(colCustomers)),
			Inflows:       int(rec.Float(colInflows)),
		})
	}

	stats := TimeslotStats{
		TotalCustomers: int(aggregate.SumColumn(f.Rows, colCustomers)),
		TotalInflows:   int(aggregate.SumColumn(f.Rows, colInflows)),
		UniqueChannels: aggregate.Distinct(f.Rows, colChannelGroup),
		DateRangeDays:  rowsDateSpan(f.Rows, colTrafficDate),
	}

	s.logger.Info("timeslot analysis complete",
		slog.Int("row_count", len(f.Rows)),
		slog.Int("heatmap_cells", len(heatmap)),
		slog.Int("channel_groups", stats.UniqueChannels))

	return &TimeslotData{
		TotalStats:           stats,
		HeatmapData:          heatmap,
		ChannelHourly:        channelHourly,
		ChannelWeekdayHourly: channelWeekdayHourly,
		WeekdayOrder:         weekdayOrder,
	}, nil
}
