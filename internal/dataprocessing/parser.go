package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fundpulse/internal/errors"
	"fundpulse/pkg/contracts/domain"
)

// Column groups from the source exports. Coercion is applied per group, the
// same way for every load.
var (
	invoiceDateColumns   = []string{"invoice_date", "due_date", "created", "modified"}
	invoiceNumberColumns = []string{"total", "amount_paid", "due_amount", "gst", "sub_total", "total_hours", "total_course_units"}

	creditDateColumns   = []string{"Date", "created", "modified"}
	creditNumberColumns = []string{"Total", "credit_amount", "AppliedAmount", "unapplied_amount"}
)

// ReadFrame reads a CSV file into a Frame. The first row is the header;
// every cell keeps its trimmed raw text, and empty cells are marked missing.
func ReadFrame(path, name string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("%s file not found at %s", name, path), err)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open %s file", name), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, pad below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to parse %s file", name), err)
	}
	if len(records) == 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("%s file is empty", name), nil)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	frame := &Frame{
		Name:    name,
		Headers: headers,
		Kinds:   make([]ColumnKind, len(headers)),
		Rows:    make([][]Cell, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		row := make([]Cell, len(headers))
		for i := range headers {
			var raw string
			if i < len(record) {
				raw = strings.TrimSpace(record[i])
			}
			row[i] = Cell{Raw: raw, Missing: raw == ""}
		}
		frame.Rows = append(frame.Rows, row)
	}

	return frame, nil
}

// LoadInvoiceFrame reads, coerces and normalizes the invoice dataset.
func LoadInvoiceFrame(path string, logger *slog.Logger) (*Frame, error) {
	frame, err := ReadFrame(path, "invoices")
	if err != nil {
		return nil, err
	}

	CoerceDates(frame, invoiceDateColumns...)
	CoerceNumbers(frame, invoiceNumberColumns...)
	normalizeStatusColumn(frame, "payment_status", paymentStatusTable)

	logger.Info("Loaded invoice frame",
		slog.String("path", path),
		slog.Int("rows", frame.RowCount()),
		slog.Int("columns", frame.ColumnCount()))

	return frame, nil
}

// LoadCreditNoteFrame reads, coerces and normalizes the credit note dataset.
func LoadCreditNoteFrame(path string, logger *slog.Logger) (*Frame, error) {
	frame, err := ReadFrame(path, "credit notes")
	if err != nil {
		return nil, err
	}

	CoerceDates(frame, creditDateColumns...)
	CoerceNumbers(frame, creditNumberColumns...)
	normalizeStatusColumn(frame, "credit_status", creditStatusTable)

	logger.Info("Loaded credit note frame",
		slog.String("path", path),
		slog.Int("rows", frame.RowCount()),
		slog.Int("columns", frame.ColumnCount()))

	return frame, nil
}

// cellReader provides tolerant typed access to one frame row. A column that
// is absent from the file reads as missing, matching the loader's
// best-effort contract.
type cellReader struct {
	frame   *Frame
	indexes map[string]int
}

func newCellReader(f *Frame, columns ...string) *cellReader {
	indexes := make(map[string]int, len(columns))
	for _, name := range columns {
		indexes[name] = f.ColumnIndex(name)
	}
	return &cellReader{frame: f, indexes: indexes}
}

func (cr *cellReader) cell(row int, column string) (Cell, bool) {
	idx, ok := cr.indexes[column]
	if !ok || idx < 0 {
		return Cell{}, false
	}
	cell := cr.frame.Rows[row][idx]
	if cell.Missing {
		return Cell{}, false
	}
	return cell, true
}

func (cr *cellReader) getString(row int, column string) domain.String {
	cell, ok := cr.cell(row, column)
	if !ok {
		return domain.String{}
	}
	return domain.NewString(cell.Raw)
}

func (cr *cellReader) getFloat(row int, column string) domain.Float {
	cell, ok := cr.cell(row, column)
	if !ok {
		return domain.Float{}
	}
	return domain.NewFloat(cell.Number)
}

func (cr *cellReader) getDate(row int, column string) domain.Date {
	cell, ok := cr.cell(row, column)
	if !ok {
		return domain.Date{}
	}
	return domain.NewDate(cell.Time)
}

// ExtractInvoices converts a normalized invoice frame to typed records.
func ExtractInvoices(f *Frame) []domain.Invoice {
	reader := newCellReader(f,
		"id", "invoice_number", "display_name", "user_id",
		"invoice_date", "due_date", "created", "modified",
		"total", "amount_paid", "due_amount", "gst", "sub_total",
		"total_hours", "total_course_units", "payment_status")

	invoices := make([]domain.Invoice, 0, f.RowCount())
	for row := range f.Rows {
		invoices = append(invoices, domain.Invoice{
			ID:            reader.getString(row, "id"),
			InvoiceNumber: reader.getString(row, "invoice_number"),
			DisplayName:   reader.getString(row, "display_name"),
			UserID:        reader.getString(row, "user_id"),
			InvoiceDate:   reader.getDate(row, "invoice_date"),
			DueDate:       reader.getDate(row, "due_date"),
			Created:       reader.getDate(row, "created"),
			Modified:      reader.getDate(row, "modified"),
			Total:         reader.getFloat(row, "total"),
			AmountPaid:    reader.getFloat(row, "amount_paid"),
			DueAmount:     reader.getFloat(row, "due_amount"),
			GST:           reader.getFloat(row, "gst"),
			SubTotal:      reader.getFloat(row, "sub_total"),
			TotalHours:    reader.getFloat(row, "total_hours"),
			TotalUnits:    reader.getFloat(row, "total_course_units"),
			PaymentStatus: reader.getString(row, "payment_status"),
		})
	}
	return invoices
}

// ExtractCreditNotes converts a normalized credit note frame to typed records.
func ExtractCreditNotes(f *Frame) []domain.CreditNote {
	reader := newCellReader(f,
		"CreditNoteNumber", "student_name", "user_id", "funding_invoice_id",
		"Date", "created", "modified",
		"Total", "credit_amount", "AppliedAmount", "unapplied_amount", "credit_status")

	notes := make([]domain.CreditNote, 0, f.RowCount())
	for row := range f.Rows {
		notes = append(notes, domain.CreditNote{
			CreditNoteNumber: reader.getString(row, "CreditNoteNumber"),
			StudentName:      reader.getString(row, "student_name"),
			UserID:           reader.getString(row, "user_id"),
			InvoiceID:        reader.getString(row, "funding_invoice_id"),
			Date:             reader.getDate(row, "Date"),
			Created:          reader.getDate(row, "created"),
			Modified:         reader.getDate(row, "modified"),
			Total:            reader.getFloat(row, "Total"),
			CreditAmount:     reader.getFloat(row, "credit_amount"),
			AppliedAmount:    reader.getFloat(row, "AppliedAmount"),
			UnappliedAmount:  reader.getFloat(row, "unapplied_amount"),
			CreditStatus:     reader.getString(row, "credit_status"),
		})
	}
	return notes
}
