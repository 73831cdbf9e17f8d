package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"
)

func razorpayFixture(pending float64) (*RazorpayService, *memPaymentStore, *memInvoiceStore) {
	invoices := newMemInvoiceStore(nil)
	invoices.invoices[1] = &models.Invoice{
		ID:             1,
		DocumentNumber: "INV-7/3/26",
		Client:         models.ClientSnapshot{Name: "Sharma Traders"},
		Total:          pending,
		PendingAmount:  pending,
		Status:         billing.StatusUnpaid,
	}
	invoices.nextID = 2
	payments := newMemPaymentStore(invoices)
	svc := NewRazorpayService("", "", "", invoices, NewPaymentService(payments, invoices))
	return svc, payments, invoices
}

func TestOrderAmountPaise(t *testing.T) {
	cases := []struct {
		pending float64
		raw     string
		want    int
	}{
		{19.99, "", 1999},
		{19.99, "19.99", 1999},
		{100, "10.5", 1050},
		{0.29, "", 29},
		{1000, "", 100000},
	}
	for _, tc := range cases {
		got, err := orderAmountPaise(tc.pending, tc.raw)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestOrderAmountPaiseRejectsBadInput(t *testing.T) {
	_, err := orderAmountPaise(100, "150")
	require.ErrorIs(t, err, billing.ErrOverPayment)

	_, err = orderAmountPaise(100, "0")
	require.ErrorIs(t, err, billing.ErrInvalidAmount)

	_, err = orderAmountPaise(100, "ten")
	require.ErrorIs(t, err, billing.ErrInvalidAmount)
}

func TestCreateOrderRejectsSettledInvoice(t *testing.T) {
	svc, _, invoices := razorpayFixture(1000)
	invoices.invoices[1].PendingAmount = 0
	invoices.invoices[1].Status = billing.StatusPaid

	_, err := svc.CreateOrder(context.Background(), 1, "")
	require.ErrorContains(t, err, "settled")
}

func TestCreateOrderValidatesAmountBeforeAPI(t *testing.T) {
	svc, _, _ := razorpayFixture(500)

	// The amount guard runs ahead of the client configuration check
	_, err := svc.CreateOrder(context.Background(), 1, "600")
	require.ErrorIs(t, err, billing.ErrOverPayment)
}

func TestCreateOrderRequiresConfiguredClient(t *testing.T) {
	svc, _, _ := razorpayFixture(500)

	_, err := svc.CreateOrder(context.Background(), 1, "")
	require.ErrorContains(t, err, "not configured")
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := NewRazorpayService("", "", "s3cret", nil, nil)
	body := []byte(`{"event":"payment.captured"}`)

	h := hmac.New(sha256.New, []byte("s3cret"))
	h.Write(body)
	signature := hex.EncodeToString(h.Sum(nil))

	require.True(t, svc.VerifyWebhookSignature(body, signature))
	require.False(t, svc.VerifyWebhookSignature(body, "deadbeef"))

	unconfigured := NewRazorpayService("", "", "", nil, nil)
	require.True(t, unconfigured.VerifyWebhookSignature(body, "anything"))
}

func capturePayload(invoiceID int, amountPaise float64, paymentID string) map[string]interface{} {
	return map[string]interface{}{
		"payment": map[string]interface{}{
			"entity": map[string]interface{}{
				"id":     paymentID,
				"amount": amountPaise,
				"notes": map[string]interface{}{
					"invoice_id": float64(invoiceID),
				},
			},
		},
	}
}

func TestWebhookCaptureRecordsOnlinePayment(t *testing.T) {
	svc, payments, invoices := razorpayFixture(500)

	err := svc.ProcessWebhook(context.Background(), "payment.captured", capturePayload(1, 50000, "pay_abc"))
	require.NoError(t, err)

	require.Len(t, payments.payments, 1)
	p := payments.payments[1]
	require.Equal(t, 500.0, p.Amount)
	require.Equal(t, "Online", p.PaymentMode)
	require.Equal(t, "pay_abc", p.TransactionRef)
	require.Equal(t, 0.0, invoices.invoices[1].PendingAmount)
	require.Equal(t, billing.StatusPaid, invoices.invoices[1].Status)
}

func TestWebhookDuplicateCaptureAcknowledged(t *testing.T) {
	svc, payments, invoices := razorpayFixture(500)

	require.NoError(t, svc.ProcessWebhook(context.Background(), "payment.captured", capturePayload(1, 50000, "pay_abc")))

	// A redelivery of the same capture overpays, which reconciliation
	// rejects; the handler acknowledges it without a second record.
	require.NoError(t, svc.ProcessWebhook(context.Background(), "payment.captured", capturePayload(1, 50000, "pay_abc")))

	require.Len(t, payments.payments, 1)
	require.Equal(t, 0.0, invoices.invoices[1].PendingAmount)
}

func TestWebhookIgnoresUnhandledEvents(t *testing.T) {
	svc, payments, _ := razorpayFixture(500)

	require.NoError(t, svc.ProcessWebhook(context.Background(), "payment.failed", capturePayload(1, 50000, "pay_abc")))
	require.Empty(t, payments.payments)
}
