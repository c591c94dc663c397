package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateCustomer(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, email, first_name, last_name, phone, company)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Email, c.FirstName, c.LastName, c.Phone, c.Company)
	return err
}

func scanCustomer(scan func(...interface{}) error) (*Customer, error) {
	c := &Customer{}
	err := scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) GetCustomerByID(ctx context.Context, id string) (*Customer, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, email, first_name, last_name, phone, company, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	return scanCustomer(r.db.QueryRowContext(ctx, query, parsedID).Scan)
}

func (r *postgresRepository) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, company, created_at, updated_at
		FROM customers
		WHERE email = $1
	`
	return scanCustomer(r.db.QueryRowContext(ctx, query, email).Scan)
}

func (r *postgresRepository) ListCustomers(ctx context.Context) ([]*Customer, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, company, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
