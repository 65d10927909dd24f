package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths holds the resolved absolute locations of the two CSV inputs and the
// directories the tools write to. All resolution happens here so every
// command sees the same layout.
type Paths struct {
	BaseDir         string
	DataDir         string
	InvoicesFile    string
	CreditNotesFile string
	ReportsDir      string
	LogsDir         string
}

// ResolvePaths builds the path set from configuration, anchoring relative
// paths at the current working directory.
func ResolvePaths(cfg PathsConfig) (*Paths, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	dataDir := resolve(base, cfg.DataDir)

	return &Paths{
		BaseDir:         base,
		DataDir:         dataDir,
		InvoicesFile:    resolve(dataDir, cfg.InvoicesFile),
		CreditNotesFile: resolve(dataDir, cfg.CreditNotesFile),
		ReportsDir:      resolve(base, cfg.ReportsDir),
		LogsDir:         resolve(base, cfg.LogsDir),
	}, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// EnsureDirectories creates the writable directories if they do not exist.
// The data directory is deliberately not created: a missing input directory
// should surface as a load error, not be papered over with an empty one.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// LogPathResolution logs the resolved paths for startup debugging.
func (p *Paths) LogPathResolution() {
	slog.Info("Resolved application paths",
		slog.String("base_dir", p.BaseDir),
		slog.String("data_dir", p.DataDir),
		slog.String("invoices_file", p.InvoicesFile),
		slog.String("credit_notes_file", p.CreditNotesFile),
		slog.String("reports_dir", p.ReportsDir),
		slog.String("logs_dir", p.LogsDir))
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
