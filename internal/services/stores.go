package services

import (
	"context"

	"billsoft-backend/internal/models"
)

// Store interfaces narrow the repository surface the document and payment
// services depend on. The pgx repositories satisfy them; tests substitute
// in-memory fakes.

type ClientStore interface {
	Get(ctx context.Context, id int) (*models.Client, error)
}

type ItemStore interface {
	Get(ctx context.Context, id int) (*models.Item, error)
}

type InvoiceStore interface {
	Create(ctx context.Context, inv *models.Invoice) error
	Get(ctx context.Context, id int) (*models.Invoice, error)
	List(ctx context.Context) ([]*models.Invoice, error)
	Update(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id int) error
}

type QuotationStore interface {
	Create(ctx context.Context, q *models.Quotation) error
	Get(ctx context.Context, id int) (*models.Quotation, error)
	List(ctx context.Context) ([]*models.Quotation, error)
	Update(ctx context.Context, q *models.Quotation) error
	Delete(ctx context.Context, id int) error
}

// PaymentStore writes carry the reconciled invoice balance so the
// payment row and the invoice's pending amount move in one transaction.
type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment, pending float64, status string) error
	Get(ctx context.Context, id int) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID int) ([]*models.Payment, error)
	Update(ctx context.Context, p *models.Payment, pending float64, status string) error
	Delete(ctx context.Context, id int, pending float64, status string) error
}

type SequenceStore interface {
	PeekSequence(ctx context.Context, kind models.SequenceKind) (int, error)
	NextSequence(ctx context.Context, kind models.SequenceKind) (int, error)
}
