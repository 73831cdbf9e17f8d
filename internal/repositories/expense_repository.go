package repositories

import (
	"context"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO expenses(expense_number, title, date, category, amount, amount_in_words,
                              payment_type, transaction_ref, description)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		e.ExpenseNumber, e.Title, e.Date, e.Category, e.Amount, e.AmountInWords,
		e.PaymentType, e.TransactionRef, e.Description,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil && isUniqueViolation(err) {
		return billing.ErrDuplicateIdentifier
	}
	return err
}

func (r *ExpenseRepository) Get(ctx context.Context, id int) (*models.Expense, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, expense_number, title, date, category, amount, amount_in_words,
                payment_type, transaction_ref, description, created_at, updated_at
         FROM expenses WHERE id=$1`, id)

	var e models.Expense
	err := row.Scan(&e.ID, &e.ExpenseNumber, &e.Title, &e.Date, &e.Category, &e.Amount,
		&e.AmountInWords, &e.PaymentType, &e.TransactionRef, &e.Description,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, expense_number, title, date, category, amount, amount_in_words,
                payment_type, transaction_ref, description, created_at, updated_at
         FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.ExpenseNumber, &e.Title, &e.Date, &e.Category, &e.Amount,
			&e.AmountInWords, &e.PaymentType, &e.TransactionRef, &e.Description,
			&e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE expenses SET title=$1, date=$2, category=$3, amount=$4, amount_in_words=$5,
                payment_type=$6, transaction_ref=$7, description=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		e.Title, e.Date, e.Category, e.Amount, e.AmountInWords,
		e.PaymentType, e.TransactionRef, e.Description, e.ID)
	return err
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	return err
}
