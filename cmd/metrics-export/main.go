package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"fundpulse/internal/config"
	"fundpulse/internal/dataprocessing"
	"fundpulse/internal/exporter"
	"fundpulse/internal/metrics"
)

func main() {
	format := flag.String("format", "csv", "export format: csv or excel")
	output := flag.String("out", "", "output file name (defaults to metrics_snapshot.<ext> under the reports directory)")
	from := flag.String("from", "", "filter invoices from this date (YYYY-MM-DD, inclusive)")
	to := flag.String("to", "", "filter invoices up to this date (YYYY-MM-DD, inclusive)")
	statuses := flag.String("status", "", "comma-separated payment statuses to include")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}

	filter, err := buildFilter(*from, *to, *statuses)
	if err != nil {
		slog.Error("Invalid filter", "error", err)
		os.Exit(1)
	}

	loader := dataprocessing.NewLoader(paths, slog.Default())
	dataset, err := loader.Load(context.Background())
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	calculator := metrics.NewCalculator(slog.Default())
	snapshot := calculator.Calculate(filter.Apply(dataset.Invoices), dataset.CreditNotes)

	switch *format {
	case "csv":
		name := *output
		if name == "" {
			name = "metrics_snapshot.csv"
		}
		writer := exporter.NewCSVWriter(paths)
		if err := writer.WriteSnapshotCSV(name, snapshot); err != nil {
			slog.Error("Failed to write CSV export", "error", err)
			os.Exit(1)
		}
		trendsName := strings.TrimSuffix(name, ".csv") + "_monthly.csv"
		if err := writer.WriteMonthlyTrendsCSV(trendsName, snapshot); err != nil {
			slog.Error("Failed to write monthly trends export", "error", err)
			os.Exit(1)
		}
		slog.Info("Metrics exported", "format", "csv", "file", name)
	case "excel":
		name := *output
		if name == "" {
			name = "metrics_snapshot.xlsx"
		}
		writer := exporter.NewExcelWriter(paths)
		if err := writer.WriteSnapshot(name, snapshot); err != nil {
			slog.Error("Failed to write Excel export", "error", err)
			os.Exit(1)
		}
		slog.Info("Metrics exported", "format", "excel", "file", name)
	default:
		slog.Error("Unknown export format", "format", *format)
		os.Exit(1)
	}
}

func buildFilter(from, to, statuses string) (metrics.Filter, error) {
	var filter metrics.Filter

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, err
		}
		filter.From = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, err
		}
		filter.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	for _, s := range strings.Split(statuses, ",") {
		if s = strings.TrimSpace(s); s != "" {
			filter.Statuses = append(filter.Statuses, s)
		}
	}
	return filter, nil
}
