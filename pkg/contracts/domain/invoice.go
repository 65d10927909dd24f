package domain

// Canonical payment status labels. Raw input uses abbreviations and case
// variants that collapse to exactly these values during normalization.
const (
	PaymentStatusPaid          = "Paid"
	PaymentStatusUnpaid        = "Unpaid"
	PaymentStatusPartiallyPaid = "Partially Paid"
	PaymentStatusClosed        = "Closed"
)

// Invoice is a funding invoice record as loaded from funding_invoices.csv.
// Records are read-only once loaded; nothing writes back to the source file.
type Invoice struct {
	ID            String `json:"id" csv:"id"`
	InvoiceNumber String `json:"invoice_number" csv:"invoice_number"`
	DisplayName   String `json:"display_name" csv:"display_name"`
	UserID        String `json:"user_id" csv:"user_id"`
	InvoiceDate   Date   `json:"invoice_date" csv:"invoice_date"`
	DueDate       Date   `json:"due_date" csv:"due_date"`
	Created       Date   `json:"created" csv:"created"`
	Modified      Date   `json:"modified" csv:"modified"`
	Total         Float  `json:"total" csv:"total"`
	AmountPaid    Float  `json:"amount_paid" csv:"amount_paid"`
	DueAmount     Float  `json:"due_amount" csv:"due_amount"`
	GST           Float  `json:"gst" csv:"gst"`
	SubTotal      Float  `json:"sub_total" csv:"sub_total"`
	TotalHours    Float  `json:"total_hours" csv:"total_hours"`
	TotalUnits    Float  `json:"total_course_units" csv:"total_course_units"`

	// PaymentStatus holds the canonical label after normalization, or the
	// original trimmed text for values outside the mapping table. Missing
	// input stays missing; normalization never invents a value.
	PaymentStatus String `json:"payment_status" csv:"payment_status"`
}
