package models

import "time"

// Settings is the single-row company profile printed on documents, plus
// the running sequence counters used for document numbers. Counters are
// owned by the backend: clients peek the next value when a form opens and
// the counter is advanced only after a successful create.
type Settings struct {
	ID                 int       `json:"id"`
	CompanyName        string    `json:"company_name"`
	Address            string    `json:"address"`
	ContactNumber      string    `json:"contact_number"`
	AlternateContact   string    `json:"alternate_contact"`
	Email              string    `json:"email"`
	Website            string    `json:"website"`
	GSTIN              string    `json:"gstin"`
	HSN                string    `json:"hsn"`
	BankName           string    `json:"bank_name"`
	AccountNumber      string    `json:"account_number"`
	IFSC               string    `json:"ifsc"`
	InvoiceSequence    int       `json:"invoice_sequence"`
	QuotationSequence  int       `json:"quotation_sequence"`
	ExpenseSequence    int       `json:"expense_sequence"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	CompanyName      string `json:"company_name"`
	Address          string `json:"address"`
	ContactNumber    string `json:"contact_number"`
	AlternateContact string `json:"alternate_contact"`
	Email            string `json:"email"`
	Website          string `json:"website"`
	GSTIN            string `json:"gstin"`
	HSN              string `json:"hsn"`
	BankName         string `json:"bank_name"`
	AccountNumber    string `json:"account_number"`
	IFSC             string `json:"ifsc"`
}

// SequenceKind names a counter; used as the path parameter on the peek
// endpoint and as the column selector in the repository.
type SequenceKind string

const (
	SequenceInvoice   SequenceKind = "invoice"
	SequenceQuotation SequenceKind = "quotation"
	SequenceExpense   SequenceKind = "expense"
)
