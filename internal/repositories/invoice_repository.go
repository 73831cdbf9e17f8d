package repositories

import (
	"context"
	"errors"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// isUniqueViolation maps a Postgres unique constraint failure so the
// service layer can report a duplicate document number without parsing
// error strings.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create persists an invoice with its lines and decrements stock for
// every line, all in one transaction. A duplicate document number rolls
// everything back and returns billing.ErrDuplicateIdentifier.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(document_number, date, due_date, client_id, client_name,
                              client_gstin, client_address, client_email, client_contact_number,
                              discount_percent, sub_total, discount_amount, total,
                              pending_amount, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
         RETURNING id, created_at, updated_at`,
		inv.DocumentNumber, inv.Date, inv.DueDate, inv.Client.ClientID, inv.Client.Name,
		inv.Client.GSTIN, inv.Client.Address, inv.Client.Email, inv.Client.ContactNumber,
		inv.DiscountPercent, inv.SubTotal, inv.DiscountAmount, inv.Total,
		inv.PendingAmount, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return billing.ErrDuplicateIdentifier
		}
		return err
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		item.DocumentID = inv.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO invoice_items(invoice_id, item_id, item_name, unit_price, quantity, tax_rate, amount, tax_amount)
             VALUES($1, $2, $3, $4, $5, $6, $7, $8)
             RETURNING id`,
			inv.ID, item.ItemID, item.ItemName, item.UnitPrice, item.Quantity,
			item.TaxRate, item.Amount, item.TaxAmount,
		).Scan(&item.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE items SET remaining_qty = remaining_qty - $1, updated_at=CURRENT_TIMESTAMP
             WHERE id=$2`, item.Quantity, item.ItemID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.QueryRow(ctx,
		`SELECT id, document_number, date, due_date, client_id, client_name, client_gstin,
                client_address, client_email, client_contact_number, discount_percent,
                sub_total, discount_amount, total, pending_amount, status, created_at, updated_at
         FROM invoices WHERE id=$1`, id,
	).Scan(&inv.ID, &inv.DocumentNumber, &inv.Date, &inv.DueDate, &inv.Client.ClientID,
		&inv.Client.Name, &inv.Client.GSTIN, &inv.Client.Address, &inv.Client.Email,
		&inv.Client.ContactNumber, &inv.DiscountPercent, &inv.SubTotal, &inv.DiscountAmount,
		&inv.Total, &inv.PendingAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	payments, err := r.listPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Payments = payments

	return &inv, nil
}

func (r *InvoiceRepository) listItems(ctx context.Context, invoiceID int) ([]models.DocumentItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, item_id, item_name, unit_price, quantity, tax_rate, amount, tax_amount
         FROM invoice_items WHERE invoice_id=$1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.DocumentItem
	for rows.Next() {
		var item models.DocumentItem
		err := rows.Scan(&item.ID, &item.DocumentID, &item.ItemID, &item.ItemName,
			&item.UnitPrice, &item.Quantity, &item.TaxRate, &item.Amount, &item.TaxAmount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InvoiceRepository) listPayments(ctx context.Context, invoiceID int) ([]models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, date, amount, amount_in_words, pending_amount_after,
                payment_mode, transaction_ref, remarks, created_at
         FROM payments WHERE invoice_id=$1 ORDER BY date, id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.InvoiceID, &p.Date, &p.Amount, &p.AmountInWords,
			&p.PendingAmountAfter, &p.PaymentMode, &p.TransactionRef, &p.Remarks, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, document_number, date, due_date, client_id, client_name, client_gstin,
                client_address, client_email, client_contact_number, discount_percent,
                sub_total, discount_amount, total, pending_amount, status, created_at, updated_at
         FROM invoices ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		err := rows.Scan(&inv.ID, &inv.DocumentNumber, &inv.Date, &inv.DueDate,
			&inv.Client.ClientID, &inv.Client.Name, &inv.Client.GSTIN, &inv.Client.Address,
			&inv.Client.Email, &inv.Client.ContactNumber, &inv.DiscountPercent,
			&inv.SubTotal, &inv.DiscountAmount, &inv.Total, &inv.PendingAmount,
			&inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// Update replaces an invoice wholesale: the header is rewritten, old
// lines are restored to stock and removed, then the new lines are
// inserted and deducted. The document number is reused as stored.
func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := restoreStock(ctx, tx, inv.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id=$1`, inv.ID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE invoices SET date=$1, due_date=$2, client_id=$3, client_name=$4, client_gstin=$5,
                client_address=$6, client_email=$7, client_contact_number=$8, discount_percent=$9,
                sub_total=$10, discount_amount=$11, total=$12, pending_amount=$13, status=$14,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$15`,
		inv.Date, inv.DueDate, inv.Client.ClientID, inv.Client.Name, inv.Client.GSTIN,
		inv.Client.Address, inv.Client.Email, inv.Client.ContactNumber, inv.DiscountPercent,
		inv.SubTotal, inv.DiscountAmount, inv.Total, inv.PendingAmount, inv.Status, inv.ID)
	if err != nil {
		return err
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		item.DocumentID = inv.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO invoice_items(invoice_id, item_id, item_name, unit_price, quantity, tax_rate, amount, tax_amount)
             VALUES($1, $2, $3, $4, $5, $6, $7, $8)
             RETURNING id`,
			inv.ID, item.ItemID, item.ItemName, item.UnitPrice, item.Quantity,
			item.TaxRate, item.Amount, item.TaxAmount,
		).Scan(&item.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE items SET remaining_qty = remaining_qty - $1, updated_at=CURRENT_TIMESTAMP
             WHERE id=$2`, item.Quantity, item.ItemID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes an invoice, returning its line quantities to stock.
// Payments go with it via ON DELETE CASCADE.
func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := restoreStock(ctx, tx, id); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func restoreStock(ctx context.Context, tx pgx.Tx, invoiceID int) error {
	_, err := tx.Exec(ctx,
		`UPDATE items SET remaining_qty = remaining_qty + li.quantity, updated_at=CURRENT_TIMESTAMP
         FROM invoice_items li
         WHERE li.invoice_id=$1 AND items.id = li.item_id`, invoiceID)
	return err
}
