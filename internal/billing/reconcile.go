package billing

// Invoice status values derived from the pending balance. The backend is
// the source of truth; these exist so figures can be validated and shown
// before a round trip.
const (
	StatusUnpaid  = "Unpaid"
	StatusPartial = "Partially Paid"
	StatusPaid    = "Paid"
)

// PaymentAmount is the slice of a payment record reconciliation cares about.
type PaymentAmount struct {
	ID     int
	Amount float64
}

// Reconcile computes the pending balance after applying a new or edited
// payment against an invoice total. When editingID is non-zero the prior
// amount of that record is excluded from the paid sum first, so edits
// replace rather than accumulate. A negative resulting balance fails with
// ErrOverPayment and nothing may be written.
func Reconcile(invoiceTotal float64, existing []PaymentAmount, editingID int, newAmount float64) (float64, error) {
	if newAmount <= 0 {
		return 0, ErrInvalidAmount
	}
	var paidSoFar float64
	for _, p := range existing {
		if editingID != 0 && p.ID == editingID {
			continue
		}
		paidSoFar += p.Amount
	}
	pending := Round2(invoiceTotal - paidSoFar - newAmount)
	if pending < 0 {
		return 0, ErrOverPayment
	}
	return pending, nil
}

// PendingAfterDelete reverses a deleted payment's contribution. Deletion
// only increases the pending amount, which is bounded above by the invoice
// total when every payment is removed, so no validation is needed.
func PendingAfterDelete(pending, deletedAmount float64) float64 {
	return Round2(pending + deletedAmount)
}

// StatusForPending derives the invoice status from its balance.
func StatusForPending(pending, total float64) string {
	switch {
	case pending == 0:
		return StatusPaid
	case pending < total:
		return StatusPartial
	default:
		return StatusUnpaid
	}
}
