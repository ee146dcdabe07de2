package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"storelens/internal/analytics"
	"storelens/internal/config"
	"storelens/internal/infrastructure"
)

// report runs the four source analyses offline and writes each result as a
// JSON document, for inspecting an extract set without starting the server.
func main() {
	outDir := flag.String("out", "", "output directory for report files (defaults to <data_dir>/reports)")
	startDate := flag.String("start", "", "optional range start, YYYY-MM-DD")
	endDate := flag.String("end", "", "optional range end, YYYY-MM-DD")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := infrastructure.NewLogger(cfg.Logging)

	paths, err := config.NewPaths(cfg.Paths, cfg.History)
	if err != nil {
		logger.Error("failed to resolve data paths", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *outDir == "" {
		*outDir = filepath.Join(paths.DataDir, "reports")
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("failed to create output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	service := analytics.NewService(paths, logger)

	reports := []struct {
		name string
		run  func() (any, error)
	}{
		{"settlement", func() (any, error) { return service.Settlement(*startDate, *endDate) }},
		{"settlement_monthly", func() (any, error) { return service.SettlementMonthly() }},
		{"sales_performance", func() (any, error) { return service.Sales(*startDate, *endDate) }},
		{"ad_spend", func() (any, error) { return service.AdSpend(*startDate, *endDate) }},
		{"timeslot", func() (any, error) { return service.Timeslot(*startDate, *endDate) }},
	}

	failures := 0
	for _, rep := range reports {
		data, err := rep.run()
		if err != nil {
			// A missing extract skips that report without failing the rest.
			logger.Warn("report skipped",
				slog.String("report", rep.name),
				slog.String("error", err.Error()))
			failures++
			continue
		}

		path := filepath.Join(*outDir, rep.name+".json")
		if err := writeJSON(path, data); err != nil {
			logger.Error("failed to write report",
				slog.String("report", rep.name),
				slog.String("error", err.Error()))
			failures++
			continue
		}
		logger.Info("report written", slog.String("path", path))
	}

	if failures == len(reports) {
		logger.Error("no reports produced", slog.String("data_dir", paths.DataDir))
		os.Exit(1)
	}
	fmt.Printf("reports written to %s\n", *outDir)
}

func writeJSON(path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return os.WriteFile(path, encoded, 0644)
}
