package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"
)

func paymentFixture(total float64) (*PaymentService, *memPaymentStore, *memInvoiceStore) {
	invoices := newMemInvoiceStore(nil)
	invoices.invoices[1] = &models.Invoice{
		ID:             1,
		DocumentNumber: "INV-7/3/26",
		Total:          total,
		PendingAmount:  total,
		Status:         billing.StatusUnpaid,
	}
	invoices.nextID = 2
	payments := newMemPaymentStore(invoices)
	return NewPaymentService(payments, invoices), payments, invoices
}

func TestRecordPaymentReducesPending(t *testing.T) {
	svc, payments, invoices := paymentFixture(1000)

	p, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID:   1,
		Date:        "2026-03-20",
		Amount:      400,
		PaymentMode: "NEFT",
	})
	require.NoError(t, err)

	require.Equal(t, 400.0, p.Amount)
	require.Equal(t, 600.0, p.PendingAmountAfter)
	require.NotEmpty(t, p.AmountInWords)
	require.Len(t, payments.payments, 1)
	require.Equal(t, 600.0, invoices.invoices[1].PendingAmount)
	require.Equal(t, billing.StatusPartial, invoices.invoices[1].Status)
}

func TestRecordPaymentSettlesInvoice(t *testing.T) {
	svc, _, invoices := paymentFixture(1000)

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 400, PaymentMode: "Cash",
	})
	require.NoError(t, err)

	p, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-25", Amount: 600, PaymentMode: "Cash",
	})
	require.NoError(t, err)

	require.Equal(t, 0.0, p.PendingAmountAfter)
	require.Equal(t, 0.0, invoices.invoices[1].PendingAmount)
	require.Equal(t, billing.StatusPaid, invoices.invoices[1].Status)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, payments, invoices := paymentFixture(1000)

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 700, PaymentMode: "Cash",
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-25", Amount: 400, PaymentMode: "Cash",
	})
	require.ErrorIs(t, err, billing.ErrOverPayment)
	require.Len(t, payments.payments, 1)
	require.Equal(t, 300.0, invoices.invoices[1].PendingAmount)
	require.Equal(t, billing.StatusPartial, invoices.invoices[1].Status)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, payments, _ := paymentFixture(1000)

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 0, PaymentMode: "Cash",
	})
	require.ErrorIs(t, err, billing.ErrInvalidAmount)
	require.Empty(t, payments.payments)
}

func TestRecordPaymentRejectsUnknownMode(t *testing.T) {
	svc, payments, _ := paymentFixture(1000)

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 100, PaymentMode: "Barter",
	})
	require.Error(t, err)
	require.Empty(t, payments.payments)
}

func TestUpdatePaymentReplacesAmount(t *testing.T) {
	svc, _, invoices := paymentFixture(1000)

	p, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 400, PaymentMode: "Cash",
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePayment(context.Background(), &models.UpdatePaymentRequest{
		ID: p.ID,
		CreatePaymentRequest: models.CreatePaymentRequest{
			InvoiceID: 1, Date: "2026-03-20", Amount: 700, PaymentMode: "Cash",
		},
	})
	require.NoError(t, err)

	require.Equal(t, 700.0, updated.Amount)
	require.Equal(t, 300.0, updated.PendingAmountAfter)
	require.Equal(t, 300.0, invoices.invoices[1].PendingAmount)
}

func TestUpdatePaymentRejectsOverpaymentAcrossRecords(t *testing.T) {
	svc, payments, invoices := paymentFixture(1000)

	first, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 400, PaymentMode: "Cash",
	})
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-25", Amount: 600, PaymentMode: "Cash",
	})
	require.NoError(t, err)

	_, err = svc.UpdatePayment(context.Background(), &models.UpdatePaymentRequest{
		ID: first.ID,
		CreatePaymentRequest: models.CreatePaymentRequest{
			InvoiceID: 1, Date: "2026-03-20", Amount: 500, PaymentMode: "Cash",
		},
	})
	require.ErrorIs(t, err, billing.ErrOverPayment)
	require.Equal(t, 400.0, payments.payments[first.ID].Amount)
	require.Equal(t, 0.0, invoices.invoices[1].PendingAmount)
}

func TestDeletePaymentRestoresPending(t *testing.T) {
	svc, payments, invoices := paymentFixture(1000)

	p, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		InvoiceID: 1, Date: "2026-03-20", Amount: 400, PaymentMode: "Cash",
	})
	require.NoError(t, err)
	require.Equal(t, 600.0, invoices.invoices[1].PendingAmount)

	require.NoError(t, svc.DeletePayment(context.Background(), p.ID))
	require.Empty(t, payments.payments)
	require.Equal(t, 1000.0, invoices.invoices[1].PendingAmount)
	require.Equal(t, billing.StatusUnpaid, invoices.invoices[1].Status)
}
