package domain

// Canonical credit status labels.
const (
	CreditStatusCredit = "Credit"
	CreditStatusClosed = "Closed"
)

// CreditNote is a record from funding_invoice_credit_notes.csv. InvoiceID is
// an optional link to an Invoice; a credit note whose InvoiceID matches no
// invoice is orphaned but never discarded.
type CreditNote struct {
	CreditNoteNumber String `json:"credit_note_number" csv:"CreditNoteNumber"`
	StudentName      String `json:"student_name" csv:"student_name"`
	UserID           String `json:"user_id" csv:"user_id"`
	InvoiceID        String `json:"funding_invoice_id" csv:"funding_invoice_id"`
	Date             Date   `json:"date" csv:"Date"`
	Created          Date   `json:"created" csv:"created"`
	Modified         Date   `json:"modified" csv:"modified"`
	Total            Float  `json:"total" csv:"Total"`
	CreditAmount     Float  `json:"credit_amount" csv:"credit_amount"`
	AppliedAmount    Float  `json:"applied_amount" csv:"AppliedAmount"`
	UnappliedAmount  Float  `json:"unapplied_amount" csv:"unapplied_amount"`
	CreditStatus     String `json:"credit_status" csv:"credit_status"`
}
