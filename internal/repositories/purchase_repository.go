package repositories

import (
	"context"

	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	DB *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

// Create records a stock-in and bumps the item's remaining quantity in
// the same transaction.
func (r *PurchaseRepository) Create(ctx context.Context, p *models.Purchase) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO purchases(item_id, date, purchase_price, quantity, amount, payment_type, transaction_ref)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at`,
		p.ItemID, p.Date, p.PurchasePrice, p.Quantity, p.Amount, p.PaymentType, p.TransactionRef,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE items SET remaining_qty = remaining_qty + $1, updated_at=CURRENT_TIMESTAMP
         WHERE id=$2`, p.Quantity, p.ItemID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PurchaseRepository) ListByItem(ctx context.Context, itemID int) ([]*models.Purchase, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.item_id, i.item_name, p.date, p.purchase_price, p.quantity,
                p.amount, p.payment_type, p.transaction_ref, p.created_at
         FROM purchases p
         JOIN items i ON p.item_id = i.id
         WHERE p.item_id=$1
         ORDER BY p.date DESC, p.id DESC`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPurchases(rows)
}

func (r *PurchaseRepository) List(ctx context.Context) ([]*models.Purchase, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.item_id, i.item_name, p.date, p.purchase_price, p.quantity,
                p.amount, p.payment_type, p.transaction_ref, p.created_at
         FROM purchases p
         JOIN items i ON p.item_id = i.id
         ORDER BY p.date DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPurchases(rows)
}

// Delete removes a stock-in record and takes its quantity back out of
// the item's remaining stock in the same transaction.
func (r *PurchaseRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var itemID int
	var quantity float64
	err = tx.QueryRow(ctx,
		`DELETE FROM purchases WHERE id=$1 RETURNING item_id, quantity`, id,
	).Scan(&itemID, &quantity)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE items SET remaining_qty = remaining_qty - $1, updated_at=CURRENT_TIMESTAMP
         WHERE id=$2`, quantity, itemID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanPurchases(rows pgx.Rows) ([]*models.Purchase, error) {
	var purchases []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(&p.ID, &p.ItemID, &p.ItemName, &p.Date, &p.PurchasePrice,
			&p.Quantity, &p.Amount, &p.PaymentType, &p.TransactionRef, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}
