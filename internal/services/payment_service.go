package services

import (
	"context"
	"fmt"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/metrics"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/timeutil"
	"billsoft-backend/pkg/utils"
)

type PaymentService struct {
	Payments PaymentStore
	Invoices InvoiceStore
}

func NewPaymentService(payments PaymentStore, invoices InvoiceStore) *PaymentService {
	return &PaymentService{Payments: payments, Invoices: invoices}
}

func paymentAmounts(payments []*models.Payment) []billing.PaymentAmount {
	amounts := make([]billing.PaymentAmount, 0, len(payments))
	for _, p := range payments {
		amounts = append(amounts, billing.PaymentAmount{ID: p.ID, Amount: p.Amount})
	}
	return amounts
}

// RecordPayment applies a payment against an invoice. The reconciliation
// pass runs before anything is written; an overpayment leaves both the
// payment list and the invoice balance untouched.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if !models.ValidPaymentMode(req.PaymentMode) {
		return nil, fmt.Errorf("invalid payment mode %q", req.PaymentMode)
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	inv, err := s.Invoices.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice %d: %w", req.InvoiceID, err)
	}

	existing, err := s.Payments.ListByInvoice(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	amount := billing.Round2(req.Amount)
	pending, err := billing.Reconcile(inv.Total, paymentAmounts(existing), 0, amount)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		InvoiceID:          req.InvoiceID,
		Date:               date,
		Amount:             amount,
		AmountInWords:      utils.AmountInWords(amount),
		PendingAmountAfter: pending,
		PaymentMode:        req.PaymentMode,
		TransactionRef:     req.TransactionRef,
		Remarks:            req.Remarks,
	}
	status := billing.StatusForPending(pending, inv.Total)
	if err := s.Payments.Create(ctx, payment, pending, status); err != nil {
		return nil, err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	return s.Payments.Get(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.Payments.List(ctx)
}

func (s *PaymentService) ListInvoicePayments(ctx context.Context, invoiceID int) ([]*models.Payment, error) {
	return s.Payments.ListByInvoice(ctx, invoiceID)
}

// UpdatePayment edits a recorded payment. The edited record's previous
// amount is excluded from the paid sum, so the new amount replaces
// rather than stacks on the old one.
func (s *PaymentService) UpdatePayment(ctx context.Context, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	if !models.ValidPaymentMode(req.PaymentMode) {
		return nil, fmt.Errorf("invalid payment mode %q", req.PaymentMode)
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	payment, err := s.Payments.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	inv, err := s.Invoices.Get(ctx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Payments.ListByInvoice(ctx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}

	amount := billing.Round2(req.Amount)
	pending, err := billing.Reconcile(inv.Total, paymentAmounts(existing), payment.ID, amount)
	if err != nil {
		return nil, err
	}

	payment.Date = date
	payment.Amount = amount
	payment.AmountInWords = utils.AmountInWords(amount)
	payment.PendingAmountAfter = pending
	payment.PaymentMode = req.PaymentMode
	payment.TransactionRef = req.TransactionRef
	payment.Remarks = req.Remarks

	status := billing.StatusForPending(pending, inv.Total)
	if err := s.Payments.Update(ctx, payment, pending, status); err != nil {
		return nil, err
	}

	return payment, nil
}

// DeletePayment removes a payment and returns its amount to the
// invoice's pending balance.
func (s *PaymentService) DeletePayment(ctx context.Context, id int) error {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return err
	}

	inv, err := s.Invoices.Get(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}

	pending := billing.PendingAfterDelete(inv.PendingAmount, payment.Amount)
	status := billing.StatusForPending(pending, inv.Total)
	return s.Payments.Delete(ctx, id, pending, status)
}
