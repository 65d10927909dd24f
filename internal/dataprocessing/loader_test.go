package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundpulse/internal/config"
)

func setupLoader(t *testing.T) (*Loader, string) {
	t.Helper()
	dir := t.TempDir()

	invoicePath := filepath.Join(dir, "funding_invoices.csv")
	creditPath := filepath.Join(dir, "funding_invoice_credit_notes.csv")
	require.NoError(t, os.WriteFile(invoicePath, []byte(invoiceCSV), 0644))
	require.NoError(t, os.WriteFile(creditPath, []byte(creditCSV), 0644))

	paths := &config.Paths{
		BaseDir:         dir,
		DataDir:         dir,
		InvoicesFile:    invoicePath,
		CreditNotesFile: creditPath,
		ReportsDir:      filepath.Join(dir, "reports"),
		LogsDir:         filepath.Join(dir, "logs"),
	}
	return NewLoader(paths, slog.Default()), invoicePath
}

func TestLoaderLoad(t *testing.T) {
	loader, _ := setupLoader(t)

	ds, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Invoices, 3)
	assert.Len(t, ds.CreditNotes, 2)
	assert.NotNil(t, ds.InvoiceFrame)
	assert.NotNil(t, ds.CreditFrame)
	assert.False(t, ds.LoadedAt.IsZero())
}

func TestLoaderCachesUntilFileChanges(t *testing.T) {
	loader, invoicePath := setupLoader(t)
	ctx := context.Background()

	first, err := loader.Load(ctx)
	require.NoError(t, err)

	second, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second, "unchanged files reuse the cached snapshot")

	// Rewrite the invoice file with a newer mtime
	shorter := "id,total,payment_status\n1,50.00,P\n"
	require.NoError(t, os.WriteFile(invoicePath, []byte(shorter), 0644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(invoicePath, future, future))

	third, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Len(t, third.Invoices, 1)
}

func TestLoaderInvalidate(t *testing.T) {
	loader, _ := setupLoader(t)
	ctx := context.Background()

	first, err := loader.Load(ctx)
	require.NoError(t, err)

	loader.Invalidate()

	second, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, second, "invalidation forces a fresh read")
}

func TestLoaderMissingFileFails(t *testing.T) {
	loader, invoicePath := setupLoader(t)
	require.NoError(t, os.Remove(invoicePath))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
}
