package billing

import (
	"fmt"
	"time"
)

// Document number prefixes. Expense vouchers share the same format.
const (
	PrefixInvoice   = "INV"
	PrefixQuotation = "QTN"
	PrefixExpense   = "EXP"
)

// FormatDocumentNumber renders a human-readable document code from a
// backend-issued sequence, e.g. FormatDocumentNumber("INV", 42, march2025)
// returns "INV-42/3/25". The month is 1-indexed and the year is reduced
// mod 100 and zero-padded. Numbers are assigned once at creation; edit
// flows reuse the stored value verbatim.
func FormatDocumentNumber(prefix string, sequence int, date time.Time) string {
	return fmt.Sprintf("%s-%d/%d/%02d", prefix, sequence, int(date.Month()), date.Year()%100)
}
