package history

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// timestampFormat is a fixed-width UTC ISO-8601 layout, so the string-range
// filters in List stay consistent with chronological order.
const timestampFormat = "2006-01-02T15:04:05.000000Z"

// DefaultMaxRecords caps the log at the most recent thousand analyses.
const DefaultMaxRecords = 1000

// Store provides the history operations over an injected storage backend.
type Store struct {
	storage    Storage
	logger     *slog.Logger
	maxRecords int

	// overridable for deterministic tests
	now   func() time.Time
	newID func() string
}

// NewStore creates a history store. A nil logger falls back to
// slog.Default; a non-positive maxRecords falls back to DefaultMaxRecords.
func NewStore(storage Storage, logger *slog.Logger, maxRecords int) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &Store{
		storage:    storage,
		logger:     logger.With(slog.String("component", "history")),
		maxRecords: maxRecords,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
}

// Save appends a new analysis record, truncates the log to the most recent
// maxRecords entries and persists it. Returns the assigned id.
func (s *Store) Save(module string, inputs Inputs, results Results, metadata Metadata) (string, error) {
	if module == "" {
		module = "unknown"
	}

	records, err := s.storage.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load history: %w", err)
	}

	rec := Record{
		ID:        s.newID(),
		Timestamp: s.now().UTC().Format(timestampFormat),
		Module:    module,
		Inputs:    inputs,
		Results:   results,
		Metadata:  metadata,
	}
	records = append(records, rec)

	// Evict by append position, oldest first.
	if len(records) > s.maxRecords {
		records = records[len(records)-s.maxRecords:]
	}

	if err := s.storage.Save(records); err != nil {
		return "", fmt.Errorf("failed to persist history: %w", err)
	}

	s.logger.Info("analysis saved",
		slog.String("id", rec.ID),
		slog.String("module", module),
		slog.Int("log_size", len(records)))
	return rec.ID, nil
}

// ListFilter narrows a List call. Zero values mean no filtering; a Limit
// that does not parse as a non-negative integer is ignored.
type ListFilter struct {
	Module    string
	StartDate string
	EndDate   string
	Limit     string
}

// List returns the log sorted descending by timestamp, optionally filtered.
func (s *Store) List(filter ListFilter) ([]Record, error) {
	records, err := s.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if filter.Module != "" && rec.Module != filter.Module {
			continue
		}
		if filter.StartDate != "" && rec.Timestamp < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && rec.Timestamp > filter.EndDate {
			continue
		}
		filtered = append(filtered, rec)
	}

	if filter.Limit != "" {
		if n, err := strconv.Atoi(filter.Limit); err == nil && n >= 0 && n < len(filtered) {
			filtered = filtered[:n]
		}
	}
	return filtered, nil
}

// Delete removes the record with the given id and persists the log. A
// missing id is a no-op, not an error.
func (s *Store) Delete(id string) error {
	records, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}

	if err := s.storage.Save(kept); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}

	s.logger.Info("history record deleted",
		slog.String("id", id),
		slog.Bool("existed", len(kept) < len(records)))
	return nil
}

// Statistics aggregates the full log. An empty log yields an all-zero
// summary.
func (s *Store) Statistics() (*Statistics, error) {
	records, err := s.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	stats := &Statistics{TotalRecords: len(records)}
	if len(records) == 0 {
		return stats, nil
	}

	var adRatioSum, refundRatioSum, discountRatioSum float64
	for _, rec := range records {
		stats.TotalSales += rec.Inputs.SalesAmount
		stats.TotalNetSales += rec.Results.NetSales
		adRatioSum += rec.Results.SalesAdvertisingRatio
		discountRatioSum += rec.Results.EffectiveDiscountRatio
		if rec.Inputs.SalesAmount > 0 {
			refundRatioSum += rec.Inputs.RefundAmount / rec.Inputs.SalesAmount
		}
	}

	n := float64(len(records))
	stats.AvgAdvertisingRatio = adRatioSum / n
	stats.AvgRefundRatio = refundRatioSum / n
	stats.AvgDiscountRatio = discountRatioSum / n
	return stats, nil
}
