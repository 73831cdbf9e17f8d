package repositories

import (
	"context"

	"billsoft-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO clients(name, branch_name, gstin, contact_person, email, contact_number,
                             address, city, state, pincode, credit_limit)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
         RETURNING id, outstanding, created_at, updated_at`,
		c.Name, c.BranchName, c.GSTIN, c.ContactPerson, c.Email, c.ContactNumber,
		c.Address, c.City, c.State, c.Pincode, c.CreditLimit,
	).Scan(&c.ID, &c.Outstanding, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ClientRepository) Get(ctx context.Context, id int) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, branch_name, gstin, contact_person, email, contact_number,
                address, city, state, pincode, credit_limit, outstanding, created_at, updated_at
         FROM clients WHERE id=$1`, id)

	var client models.Client
	err := row.Scan(&client.ID, &client.Name, &client.BranchName, &client.GSTIN,
		&client.ContactPerson, &client.Email, &client.ContactNumber, &client.Address,
		&client.City, &client.State, &client.Pincode, &client.CreditLimit,
		&client.Outstanding, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, branch_name, gstin, contact_person, email, contact_number,
                address, city, state, pincode, credit_limit, outstanding, created_at, updated_at
         FROM clients ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		var client models.Client
		err := rows.Scan(&client.ID, &client.Name, &client.BranchName, &client.GSTIN,
			&client.ContactPerson, &client.Email, &client.ContactNumber, &client.Address,
			&client.City, &client.State, &client.Pincode, &client.CreditLimit,
			&client.Outstanding, &client.CreatedAt, &client.UpdatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients SET name=$1, branch_name=$2, gstin=$3, contact_person=$4, email=$5,
                contact_number=$6, address=$7, city=$8, state=$9, pincode=$10, credit_limit=$11,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$12`,
		c.Name, c.BranchName, c.GSTIN, c.ContactPerson, c.Email, c.ContactNumber,
		c.Address, c.City, c.State, c.Pincode, c.CreditLimit, c.ID)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	return err
}

// AdjustOutstanding shifts a client's outstanding balance by delta.
// Positive delta on invoice create, negative on payment or invoice delete.
func (r *ClientRepository) AdjustOutstanding(ctx context.Context, id int, delta float64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients SET outstanding = outstanding + $1, updated_at=CURRENT_TIMESTAMP
         WHERE id=$2`, delta, id)
	return err
}
