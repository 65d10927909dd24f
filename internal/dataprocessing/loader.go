package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"fundpulse/internal/config"
	"fundpulse/internal/infrastructure"
	"fundpulse/pkg/contracts/domain"
)

// Dataset is one consistent snapshot of both files: the coerced frames for
// quality analysis plus the typed records for metrics.
type Dataset struct {
	Invoices     []domain.Invoice
	CreditNotes  []domain.CreditNote
	InvoiceFrame *Frame
	CreditFrame  *Frame
	LoadedAt     time.Time
}

type cacheEntry struct {
	dataset        *Dataset
	invoiceModTime time.Time
	creditModTime  time.Time
}

// Loader loads and caches the dataset pair. A cached snapshot is reused until
// either file's modification time changes on disk or Invalidate is called;
// concurrent loads for the same state are collapsed into one read.
type Loader struct {
	paths  *config.Paths
	logger *slog.Logger

	mu    sync.RWMutex
	entry *cacheEntry
	group singleflight.Group
}

// NewLoader creates a Loader for the configured data files.
func NewLoader(paths *config.Paths, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{paths: paths, logger: logger}
}

// Load returns the current dataset, reading from disk only when the cached
// snapshot is stale. Either file failing to load fails the whole call; the
// dashboard never serves half a dataset.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	invoiceMod, creditMod, statErr := l.statModTimes()

	if statErr == nil {
		l.mu.RLock()
		entry := l.entry
		l.mu.RUnlock()
		if entry != nil && entry.invoiceModTime.Equal(invoiceMod) && entry.creditModTime.Equal(creditMod) {
			return entry.dataset, nil
		}
	}

	result, err, _ := l.group.Do("dataset", func() (interface{}, error) {
		return l.loadFromDisk(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Dataset), nil
}

// Invalidate drops the cached snapshot. The next Load re-reads from disk.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.entry = nil
	l.mu.Unlock()
	l.logger.Info("Dataset cache invalidated")
}

func (l *Loader) statModTimes() (invoice, credit time.Time, err error) {
	invInfo, err := os.Stat(l.paths.InvoicesFile)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	crInfo, err := os.Stat(l.paths.CreditNotesFile)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return invInfo.ModTime(), crInfo.ModTime(), nil
}

func (l *Loader) loadFromDisk(ctx context.Context) (*Dataset, error) {
	logger := l.logger
	if traceID := infrastructure.GetTraceID(ctx); traceID != "" {
		logger = logger.With("trace_id", traceID)
	}
	start := time.Now()

	invoiceMod, creditMod, statErr := l.statModTimes()

	invoiceFrame, err := LoadInvoiceFrame(l.paths.InvoicesFile, logger)
	if err != nil {
		logger.Error("Failed to load invoice dataset",
			slog.String("path", l.paths.InvoicesFile),
			slog.String("error", err.Error()))
		return nil, err
	}

	creditFrame, err := LoadCreditNoteFrame(l.paths.CreditNotesFile, logger)
	if err != nil {
		logger.Error("Failed to load credit note dataset",
			slog.String("path", l.paths.CreditNotesFile),
			slog.String("error", err.Error()))
		return nil, err
	}

	dataset := &Dataset{
		Invoices:     ExtractInvoices(invoiceFrame),
		CreditNotes:  ExtractCreditNotes(creditFrame),
		InvoiceFrame: invoiceFrame,
		CreditFrame:  creditFrame,
		LoadedAt:     time.Now(),
	}

	if statErr == nil {
		l.mu.Lock()
		l.entry = &cacheEntry{
			dataset:        dataset,
			invoiceModTime: invoiceMod,
			creditModTime:  creditMod,
		}
		l.mu.Unlock()
	}

	logger.Info("Dataset loaded",
		slog.Int("invoices", len(dataset.Invoices)),
		slog.Int("credit_notes", len(dataset.CreditNotes)),
		slog.Duration("duration", time.Since(start)))

	return dataset, nil
}
