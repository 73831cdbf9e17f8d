package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/timeutil"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService creates collection orders for an invoice's pending
// balance and turns captured webhook events into Online payment records.
type RazorpayService struct {
	Invoices  InvoiceStore
	Payments  *PaymentService
	keyID     string
	keySecret string
	webhook   string
}

func NewRazorpayService(keyID, keySecret, webhookSecret string, invoices InvoiceStore, payments *PaymentService) *RazorpayService {
	return &RazorpayService{
		Invoices:  invoices,
		Payments:  payments,
		keyID:     keyID,
		keySecret: keySecret,
		webhook:   webhookSecret,
	}
}

func (s *RazorpayService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// PaymentOrder is what the frontend needs to open the checkout.
type PaymentOrder struct {
	OrderID       string  `json:"order_id"`
	Amount        int     `json:"amount"`
	Currency      string  `json:"currency"`
	KeyID         string  `json:"key_id"`
	InvoiceNumber string  `json:"invoice_number"`
	ClientName    string  `json:"client_name"`
	PendingAmount float64 `json:"pending_amount"`
}

// orderAmountPaise resolves how many paise an order should collect. An
// empty rawAmount means the full pending balance; otherwise the
// free-text amount is parsed and must not exceed it. Rounding happens
// on the paise value so amounts like 19.99 never lose a paisa to float
// truncation.
func orderAmountPaise(pending float64, rawAmount string) (int, error) {
	amount := billing.Round2(pending)
	if rawAmount != "" {
		parsed, err := billing.ParseAmount(rawAmount)
		if err != nil {
			return 0, err
		}
		if parsed == 0 {
			return 0, billing.ErrInvalidAmount
		}
		if parsed > amount {
			return 0, billing.ErrOverPayment
		}
		amount = parsed
	}
	return int(math.Round(amount * 100)), nil
}

// CreateOrder opens a Razorpay order against an invoice. Settled
// invoices and bad amounts are rejected before any API call.
func (s *RazorpayService) CreateOrder(ctx context.Context, invoiceID int, rawAmount string) (*PaymentOrder, error) {
	inv, err := s.Invoices.Get(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice %d: %w", invoiceID, err)
	}
	if inv.PendingAmount <= 0 {
		return nil, fmt.Errorf("invoice %s is already settled", inv.DocumentNumber)
	}

	amountPaise, err := orderAmountPaise(inv.PendingAmount, rawAmount)
	if err != nil {
		return nil, err
	}

	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("rcpt_%d_%d", inv.ID, time.Now().Unix()),
		"notes": map[string]interface{}{
			"invoice_id":     inv.ID,
			"invoice_number": inv.DocumentNumber,
			"client_name":    inv.Client.Name,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, _ := order["id"].(string)
	return &PaymentOrder{
		OrderID:       orderID,
		Amount:        amountPaise,
		Currency:      "INR",
		KeyID:         s.keyID,
		InvoiceNumber: inv.DocumentNumber,
		ClientName:    inv.Client.Name,
		PendingAmount: inv.PendingAmount,
	}, nil
}

// VerifyWebhookSignature verifies the webhook signature
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhook == "" {
		return true // Skip verification if not configured
	}

	h := hmac.New(sha256.New, []byte(s.webhook))
	h.Write(body)
	expectedSignature := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// ProcessWebhook handles Razorpay webhook events. Only captures are
// acted on; everything else is logged and acknowledged.
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	switch event {
	case "payment.captured":
		return s.handlePaymentCaptured(ctx, payload)
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

func (s *RazorpayService) handlePaymentCaptured(ctx context.Context, payload map[string]interface{}) error {
	paymentEntity, ok := payload["payment"].(map[string]interface{})
	if !ok {
		paymentEntity = payload
	}
	entity, ok := paymentEntity["entity"].(map[string]interface{})
	if !ok {
		entity = paymentEntity
	}

	paymentID, _ := entity["id"].(string)

	notes, _ := entity["notes"].(map[string]interface{})
	invoiceIDRaw, _ := notes["invoice_id"].(float64)
	invoiceID := int(invoiceIDRaw)
	if invoiceID == 0 {
		return fmt.Errorf("missing invoice_id in webhook notes")
	}

	amountPaise, _ := entity["amount"].(float64)
	amount := billing.Round2(amountPaise / 100)

	req := &models.CreatePaymentRequest{
		InvoiceID:      invoiceID,
		Date:           timeutil.Now().Format(timeutil.DateLayout),
		Amount:         amount,
		PaymentMode:    "Online",
		TransactionRef: paymentID,
		Remarks:        "Razorpay capture",
	}

	if _, err := s.Payments.RecordPayment(ctx, req); err != nil {
		// A duplicate delivery of the same capture overpays and is
		// rejected by reconciliation; treat that as already handled.
		if errors.Is(err, billing.ErrOverPayment) {
			log.Printf("[Razorpay] capture for invoice %d already recorded", invoiceID)
			return nil
		}
		return err
	}

	log.Printf("[Razorpay] recorded online payment of %.2f against invoice %d", amount, invoiceID)
	return nil
}
