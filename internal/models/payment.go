package models

import "time"

// Payment modes accepted on a payment record. Online is assigned by the
// Razorpay webhook path; the rest come from the form.
var PaymentModes = []string{"Cash", "IMPS", "RTGS", "NEFT", "Cheque", "Nil", "Online"}

// Payment is a recorded payment against an invoice. PendingAmountAfter is
// the invoice's balance immediately after this payment was applied.
type Payment struct {
	ID                 int       `json:"id"`
	InvoiceID          int       `json:"invoice_id"`
	InvoiceNumber      string    `json:"invoice_number,omitempty"`
	ClientName         string    `json:"client_name,omitempty"`
	Date               time.Time `json:"date"`
	Amount             float64   `json:"amount"`
	AmountInWords      string    `json:"amount_in_words"`
	PendingAmountAfter float64   `json:"pending_amount_after"`
	PaymentMode        string    `json:"payment_mode"`
	TransactionRef     string    `json:"transaction_ref"`
	Remarks            string    `json:"remarks"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	InvoiceID      int     `json:"invoice_id"`
	Date           string  `json:"date"`
	Amount         float64 `json:"amount"`
	PaymentMode    string  `json:"payment_mode"`
	TransactionRef string  `json:"transaction_ref"`
	Remarks        string  `json:"remarks"`
}

type UpdatePaymentRequest struct {
	ID int `json:"id"`
	CreatePaymentRequest
}

// ValidPaymentMode reports whether mode is one of the accepted values.
func ValidPaymentMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}
