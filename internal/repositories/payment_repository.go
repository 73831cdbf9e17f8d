package repositories

import (
	"context"

	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// Create inserts a payment and writes the reconciled invoice balance in
// the same transaction, so the payment list and the stored pending
// amount never diverge.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment, pending float64, status string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO payments(invoice_id, date, amount, amount_in_words, pending_amount_after,
                              payment_mode, transaction_ref, remarks)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		p.InvoiceID, p.Date, p.Amount, p.AmountInWords, p.PendingAmountAfter,
		p.PaymentMode, p.TransactionRef, p.Remarks,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return err
	}

	if err := updateInvoiceBalance(ctx, tx, p.InvoiceID, pending, status); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT p.id, p.invoice_id, i.document_number, i.client_name, p.date, p.amount,
                p.amount_in_words, p.pending_amount_after, p.payment_mode,
                p.transaction_ref, p.remarks, p.created_at
         FROM payments p
         JOIN invoices i ON p.invoice_id = i.id
         WHERE p.id=$1`, id)

	var p models.Payment
	err := row.Scan(&p.ID, &p.InvoiceID, &p.InvoiceNumber, &p.ClientName, &p.Date,
		&p.Amount, &p.AmountInWords, &p.PendingAmountAfter, &p.PaymentMode,
		&p.TransactionRef, &p.Remarks, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.invoice_id, i.document_number, i.client_name, p.date, p.amount,
                p.amount_in_words, p.pending_amount_after, p.payment_mode,
                p.transaction_ref, p.remarks, p.created_at
         FROM payments p
         JOIN invoices i ON p.invoice_id = i.id
         ORDER BY p.date DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.InvoiceID, &p.InvoiceNumber, &p.ClientName, &p.Date,
			&p.Amount, &p.AmountInWords, &p.PendingAmountAfter, &p.PaymentMode,
			&p.TransactionRef, &p.Remarks, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// ListByInvoice returns a lightweight amount view used by the
// reconciliation pass, ordered by entry.
func (r *PaymentRepository) ListByInvoice(ctx context.Context, invoiceID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, date, amount, amount_in_words, pending_amount_after,
                payment_mode, transaction_ref, remarks, created_at
         FROM payments WHERE invoice_id=$1 ORDER BY date, id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.InvoiceID, &p.Date, &p.Amount, &p.AmountInWords,
			&p.PendingAmountAfter, &p.PaymentMode, &p.TransactionRef, &p.Remarks, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment, pending float64, status string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE payments SET date=$1, amount=$2, amount_in_words=$3, pending_amount_after=$4,
                payment_mode=$5, transaction_ref=$6, remarks=$7
         WHERE id=$8`,
		p.Date, p.Amount, p.AmountInWords, p.PendingAmountAfter,
		p.PaymentMode, p.TransactionRef, p.Remarks, p.ID)
	if err != nil {
		return err
	}

	if err := updateInvoiceBalance(ctx, tx, p.InvoiceID, pending, status); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a payment and restores its amount to the invoice's
// pending balance in the same transaction.
func (r *PaymentRepository) Delete(ctx context.Context, id int, pending float64, status string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var invoiceID int
	err = tx.QueryRow(ctx,
		`DELETE FROM payments WHERE id=$1 RETURNING invoice_id`, id,
	).Scan(&invoiceID)
	if err != nil {
		return err
	}

	if err := updateInvoiceBalance(ctx, tx, invoiceID, pending, status); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func updateInvoiceBalance(ctx context.Context, tx pgx.Tx, invoiceID int, pending float64, status string) error {
	_, err := tx.Exec(ctx,
		`UPDATE invoices SET pending_amount=$1, status=$2, updated_at=CURRENT_TIMESTAMP
         WHERE id=$3`, pending, status, invoiceID)
	return err
}
