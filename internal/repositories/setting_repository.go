package repositories

import (
	"context"
	"fmt"

	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingRepository struct {
	DB *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{DB: db}
}

// Get returns the single settings row. The row is seeded by migration
// so it always exists.
func (r *SettingRepository) Get(ctx context.Context) (*models.Settings, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, company_name, address, contact_number, alternate_contact, email, website,
                gstin, hsn, bank_name, account_number, ifsc,
                invoice_sequence, quotation_sequence, expense_sequence, updated_at
         FROM settings WHERE id=1`)

	var s models.Settings
	err := row.Scan(&s.ID, &s.CompanyName, &s.Address, &s.ContactNumber, &s.AlternateContact,
		&s.Email, &s.Website, &s.GSTIN, &s.HSN, &s.BankName, &s.AccountNumber, &s.IFSC,
		&s.InvoiceSequence, &s.QuotationSequence, &s.ExpenseSequence, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) Update(ctx context.Context, s *models.Settings) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE settings SET company_name=$1, address=$2, contact_number=$3, alternate_contact=$4,
                email=$5, website=$6, gstin=$7, hsn=$8, bank_name=$9, account_number=$10,
                ifsc=$11, updated_at=CURRENT_TIMESTAMP
         WHERE id=1`,
		s.CompanyName, s.Address, s.ContactNumber, s.AlternateContact, s.Email, s.Website,
		s.GSTIN, s.HSN, s.BankName, s.AccountNumber, s.IFSC)
	return err
}

func sequenceColumn(kind models.SequenceKind) (string, error) {
	switch kind {
	case models.SequenceInvoice:
		return "invoice_sequence", nil
	case models.SequenceQuotation:
		return "quotation_sequence", nil
	case models.SequenceExpense:
		return "expense_sequence", nil
	}
	return "", fmt.Errorf("unknown sequence kind %q", kind)
}

// PeekSequence returns the counter's current value without advancing it.
// Forms call this to show the number a new document will get.
func (r *SettingRepository) PeekSequence(ctx context.Context, kind models.SequenceKind) (int, error) {
	col, err := sequenceColumn(kind)
	if err != nil {
		return 0, err
	}

	var seq int
	err = r.DB.QueryRow(ctx, `SELECT `+col+` FROM settings WHERE id=1`).Scan(&seq)
	return seq, err
}

// NextSequence advances the counter and returns the value that was
// current before the bump. Called only after a document is persisted.
func (r *SettingRepository) NextSequence(ctx context.Context, kind models.SequenceKind) (int, error) {
	col, err := sequenceColumn(kind)
	if err != nil {
		return 0, err
	}

	var seq int
	err = r.DB.QueryRow(ctx,
		`UPDATE settings SET `+col+` = `+col+` + 1, updated_at=CURRENT_TIMESTAMP
         WHERE id=1
         RETURNING `+col+` - 1`).Scan(&seq)
	return seq, err
}
