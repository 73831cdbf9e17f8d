package repositories

import (
	"context"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type QuotationRepository struct {
	DB *pgxpool.Pool
}

func NewQuotationRepository(db *pgxpool.Pool) *QuotationRepository {
	return &QuotationRepository{DB: db}
}

// Create persists a quotation with its lines. Quotations never touch
// stock.
func (r *QuotationRepository) Create(ctx context.Context, q *models.Quotation) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO quotations(document_number, date, due_date, client_id, client_name,
                                client_gstin, client_address, client_email, client_contact_number,
                                discount_percent, sub_total, discount_amount, total)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
         RETURNING id, created_at, updated_at`,
		q.DocumentNumber, q.Date, q.DueDate, q.Client.ClientID, q.Client.Name,
		q.Client.GSTIN, q.Client.Address, q.Client.Email, q.Client.ContactNumber,
		q.DiscountPercent, q.SubTotal, q.DiscountAmount, q.Total,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return billing.ErrDuplicateIdentifier
		}
		return err
	}

	for i := range q.Items {
		item := &q.Items[i]
		item.DocumentID = q.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO quotation_items(quotation_id, item_id, item_name, unit_price, quantity, tax_rate, amount, tax_amount)
             VALUES($1, $2, $3, $4, $5, $6, $7, $8)
             RETURNING id`,
			q.ID, item.ItemID, item.ItemName, item.UnitPrice, item.Quantity,
			item.TaxRate, item.Amount, item.TaxAmount,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *QuotationRepository) Get(ctx context.Context, id int) (*models.Quotation, error) {
	var q models.Quotation
	err := r.DB.QueryRow(ctx,
		`SELECT id, document_number, date, due_date, client_id, client_name, client_gstin,
                client_address, client_email, client_contact_number, discount_percent,
                sub_total, discount_amount, total, created_at, updated_at
         FROM quotations WHERE id=$1`, id,
	).Scan(&q.ID, &q.DocumentNumber, &q.Date, &q.DueDate, &q.Client.ClientID,
		&q.Client.Name, &q.Client.GSTIN, &q.Client.Address, &q.Client.Email,
		&q.Client.ContactNumber, &q.DiscountPercent, &q.SubTotal, &q.DiscountAmount,
		&q.Total, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx,
		`SELECT id, quotation_id, item_id, item_name, unit_price, quantity, tax_rate, amount, tax_amount
         FROM quotation_items WHERE quotation_id=$1 ORDER BY id`, id)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	q.Items = items

	return &q, nil
}

func (r *QuotationRepository) List(ctx context.Context) ([]*models.Quotation, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, document_number, date, due_date, client_id, client_name, client_gstin,
                client_address, client_email, client_contact_number, discount_percent,
                sub_total, discount_amount, total, created_at, updated_at
         FROM quotations ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		var q models.Quotation
		err := rows.Scan(&q.ID, &q.DocumentNumber, &q.Date, &q.DueDate,
			&q.Client.ClientID, &q.Client.Name, &q.Client.GSTIN, &q.Client.Address,
			&q.Client.Email, &q.Client.ContactNumber, &q.DiscountPercent,
			&q.SubTotal, &q.DiscountAmount, &q.Total, &q.CreatedAt, &q.UpdatedAt)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, &q)
	}
	return quotations, rows.Err()
}

// Update replaces a quotation wholesale, reusing the stored document
// number.
func (r *QuotationRepository) Update(ctx context.Context, q *models.Quotation) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id=$1`, q.ID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE quotations SET date=$1, due_date=$2, client_id=$3, client_name=$4, client_gstin=$5,
                client_address=$6, client_email=$7, client_contact_number=$8, discount_percent=$9,
                sub_total=$10, discount_amount=$11, total=$12, updated_at=CURRENT_TIMESTAMP
         WHERE id=$13`,
		q.Date, q.DueDate, q.Client.ClientID, q.Client.Name, q.Client.GSTIN,
		q.Client.Address, q.Client.Email, q.Client.ContactNumber, q.DiscountPercent,
		q.SubTotal, q.DiscountAmount, q.Total, q.ID)
	if err != nil {
		return err
	}

	for i := range q.Items {
		item := &q.Items[i]
		item.DocumentID = q.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO quotation_items(quotation_id, item_id, item_name, unit_price, quantity, tax_rate, amount, tax_amount)
             VALUES($1, $2, $3, $4, $5, $6, $7, $8)
             RETURNING id`,
			q.ID, item.ItemID, item.ItemName, item.UnitPrice, item.Quantity,
			item.TaxRate, item.Amount, item.TaxAmount,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *QuotationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM quotations WHERE id=$1`, id)
	return err
}
