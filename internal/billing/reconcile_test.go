package billing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconcileNewPayment(t *testing.T) {
	existing := []PaymentAmount{{ID: 1, Amount: 400}, {ID: 2, Amount: 300}}

	pending, err := Reconcile(1000, existing, 0, 300)
	require.NoError(t, err)
	require.Equal(t, 0.00, pending)

	_, err = Reconcile(1000, existing, 0, 350)
	require.ErrorIs(t, err, ErrOverPayment)
}

func TestReconcileEditReplacesOldAmount(t *testing.T) {
	existing := []PaymentAmount{{ID: 1, Amount: 400}, {ID: 2, Amount: 300}}

	// Editing payment #1 from 400 to 500: paid = 300 + 500 = 800.
	pending, err := Reconcile(1000, existing, 1, 500)
	require.NoError(t, err)
	require.Equal(t, 200.00, pending)
}

func TestReconcileRejectsNonPositiveAmount(t *testing.T) {
	_, err := Reconcile(1000, nil, 0, 0)
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = Reconcile(1000, nil, 0, -50)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPendingNeverNegativeAcrossSequence(t *testing.T) {
	total := 1000.00
	var payments []PaymentAmount
	pending := total

	apply := func(id int, amount float64) error {
		p, err := Reconcile(total, payments, 0, amount)
		if err != nil {
			return err
		}
		payments = append(payments, PaymentAmount{ID: id, Amount: amount})
		pending = p
		return nil
	}

	require.NoError(t, apply(1, 600))
	require.NoError(t, apply(2, 250))
	require.ErrorIs(t, apply(3, 200), ErrOverPayment)
	require.Equal(t, 150.00, pending, "rejected payment must not change the balance")

	// Deleting payment #2 reverses its contribution.
	pending = PendingAfterDelete(pending, 250)
	require.Equal(t, 400.00, pending)
	require.LessOrEqual(t, pending, total)
}

func TestStatusForPending(t *testing.T) {
	require.Equal(t, StatusPaid, StatusForPending(0, 1000))
	require.Equal(t, StatusPartial, StatusForPending(400, 1000))
	require.Equal(t, StatusUnpaid, StatusForPending(1000, 1000))
}
