package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fundpulse/internal/config"
	"fundpulse/internal/dataprocessing"
	"fundpulse/internal/quality"
)

func main() {
	outputPath := flag.String("out", "", "write the report to a file instead of stdout")
	asJSON := flag.Bool("json", false, "emit the report as JSON instead of plain text")
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

	loader := dataprocessing.NewLoader(paths, slog.Default())
	dataset, err := loader.Load(context.Background())
	if err != nil {
		// A missing or unreadable file aborts the whole run; a partial
		// quality report would be misleading.
		fmt.Fprintf(os.Stderr, "ERROR: Error loading data: %v\n", err)
		os.Exit(1)
	}

	report := quality.BuildReport(dataset)

	var output []byte
	if *asJSON {
		output, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			slog.Error("Failed to marshal report", "error", err)
			os.Exit(1)
		}
		output = append(output, '\n')
	} else {
		output = []byte(report.Render())
	}

	if *outputPath == "" {
		os.Stdout.Write(output)
		return
	}

	fullPath := *outputPath
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(paths.ReportsDir, fullPath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		slog.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(fullPath, output, 0644); err != nil {
		slog.Error("Failed to write report", "error", err)
		os.Exit(1)
	}
	slog.Info("Quality report written", "path", fullPath, "grade", report.Grade)
}
