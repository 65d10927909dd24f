package dataprocessing

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fundpulse/internal/errors"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFrame(t *testing.T) {
	path := writeTempCSV(t, "data.csv",
		"id,total,note\n1,100.50,ok\n2,,\n")

	f, err := ReadFrame(path, "test")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "total", "note"}, f.Headers)
	require.Equal(t, 2, f.RowCount())
	assert.Equal(t, "100.50", f.Rows[0][1].Raw)
	assert.True(t, f.Rows[1][1].Missing)
	assert.True(t, f.Rows[1][2].Missing)
}

func TestReadFrameRaggedRows(t *testing.T) {
	path := writeTempCSV(t, "ragged.csv", "a,b,c\n1,2\n")

	f, err := ReadFrame(path, "test")
	require.NoError(t, err)

	require.Equal(t, 1, f.RowCount())
	assert.Equal(t, "2", f.Rows[0][1].Raw)
	assert.True(t, f.Rows[0][2].Missing, "short row pads with missing cells")
}

func TestReadFrameMissingFile(t *testing.T) {
	_, err := ReadFrame(filepath.Join(t.TempDir(), "nope.csv"), "invoices")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestReadFrameEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "empty.csv", "")

	_, err := ReadFrame(path, "invoices")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
}

const invoiceCSV = `id,invoice_number,display_name,user_id,invoice_date,due_date,created,modified,total,amount_paid,due_amount,gst,sub_total,total_hours,total_course_units,payment_status
10,INV-001,Alice Smith,u1,2024-01-10,2024-02-10,2024-01-10 08:00:00,2024-01-10 08:00:00,100.00,100.00,0.00,10.00,90.00,5,1,P
11,INV-002,Bob Jones,u2,2024-02-15,2024-03-15,2024-02-15 09:00:00,2024-02-15 09:00:00,200.00,0.00,200.00,20.00,180.00,8,2,U
12,INV-003,Carol White,u3,not-a-date,2024-04-01,2024-03-01 10:00:00,2024-03-01 10:00:00,abc,,,,,,,
`

func TestLoadInvoiceFrameAndExtract(t *testing.T) {
	path := writeTempCSV(t, "funding_invoices.csv", invoiceCSV)

	f, err := LoadInvoiceFrame(path, slog.Default())
	require.NoError(t, err)

	invoices := ExtractInvoices(f)
	require.Len(t, invoices, 3)

	first := invoices[0]
	assert.Equal(t, "10", first.ID.Value)
	assert.Equal(t, "Paid", first.PaymentStatus.Value)
	assert.True(t, first.Total.Valid)
	assert.InDelta(t, 100.00, first.Total.Value, 0.0001)
	assert.True(t, first.InvoiceDate.Valid)

	second := invoices[1]
	assert.Equal(t, "Unpaid", second.PaymentStatus.Value)

	// Coercion failures surface as invalid values, not errors
	third := invoices[2]
	assert.False(t, third.InvoiceDate.Valid)
	assert.False(t, third.Total.Valid)
	assert.False(t, third.PaymentStatus.Valid)
}

const creditCSV = `CreditNoteNumber,student_name,user_id,funding_invoice_id,Date,created,modified,Total,credit_amount,AppliedAmount,unapplied_amount,credit_status
CN-1,Alice Smith,u1,10,2024-01-20,2024-01-20 08:00:00,2024-01-20 08:00:00,25.00,25.00,25.00,0.00,CR
CN-2,Dave Black,u9,99,2024-02-25,2024-02-25 09:00:00,2024-02-25 09:00:00,40.00,40.00,0.00,40.00,CD
`

func TestLoadCreditNoteFrameAndExtract(t *testing.T) {
	path := writeTempCSV(t, "funding_invoice_credit_notes.csv", creditCSV)

	f, err := LoadCreditNoteFrame(path, slog.Default())
	require.NoError(t, err)

	notes := ExtractCreditNotes(f)
	require.Len(t, notes, 2)

	assert.Equal(t, "Credit", notes[0].CreditStatus.Value)
	assert.Equal(t, "Closed", notes[1].CreditStatus.Value)
	assert.Equal(t, "10", notes[0].InvoiceID.Value)
	assert.InDelta(t, 25.00, notes[0].Total.Value, 0.0001)
}

func TestExtractToleratesAbsentColumns(t *testing.T) {
	path := writeTempCSV(t, "thin.csv", "id,total\n1,50.00\n")

	f, err := LoadInvoiceFrame(path, slog.Default())
	require.NoError(t, err)

	invoices := ExtractInvoices(f)
	require.Len(t, invoices, 1)
	assert.True(t, invoices[0].Total.Valid)
	assert.False(t, invoices[0].PaymentStatus.Valid)
	assert.False(t, invoices[0].InvoiceDate.Valid)
}
