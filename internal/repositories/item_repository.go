package repositories

import (
	"context"

	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO items(item_name, category, supplier_name, selling_price, measurement,
                           tax_rate, description, remaining_qty)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		item.ItemName, item.Category, item.SupplierName, item.SellingPrice,
		item.Measurement, item.TaxRate, item.Description, item.RemainingQty,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *ItemRepository) Get(ctx context.Context, id int) (*models.Item, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, item_name, category, supplier_name, selling_price, measurement,
                tax_rate, description, remaining_qty, created_at, updated_at
         FROM items WHERE id=$1`, id)

	var item models.Item
	err := row.Scan(&item.ID, &item.ItemName, &item.Category, &item.SupplierName,
		&item.SellingPrice, &item.Measurement, &item.TaxRate, &item.Description,
		&item.RemainingQty, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, item_name, category, supplier_name, selling_price, measurement,
                tax_rate, description, remaining_qty, created_at, updated_at
         FROM items ORDER BY item_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var item models.Item
		err := rows.Scan(&item.ID, &item.ItemName, &item.Category, &item.SupplierName,
			&item.SellingPrice, &item.Measurement, &item.TaxRate, &item.Description,
			&item.RemainingQty, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE items SET item_name=$1, category=$2, supplier_name=$3, selling_price=$4,
                measurement=$5, tax_rate=$6, description=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		item.ItemName, item.Category, item.SupplierName, item.SellingPrice,
		item.Measurement, item.TaxRate, item.Description, item.ID)
	return err
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	return err
}

// AdjustQuantity shifts remaining stock by delta. Invoice creation passes
// a negative delta, invoice deletion and purchases a positive one.
func (r *ItemRepository) AdjustQuantity(ctx context.Context, id int, delta float64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE items SET remaining_qty = remaining_qty + $1, updated_at=CURRENT_TIMESTAMP
         WHERE id=$2`, delta, id)
	return err
}
