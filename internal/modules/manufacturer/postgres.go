package manufacturer

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL manufacturer repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateManufacturer(ctx context.Context, m *Manufacturer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO manufacturers (id, name, contact_email, capabilities, lead_time_days, active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, m.ContactEmail, pq.Array(m.Capabilities), m.LeadTimeDays, m.Active)
	return err
}

func scanManufacturer(scan func(...interface{}) error) (*Manufacturer, error) {
	m := &Manufacturer{}
	var capabilities pq.StringArray
	err := scan(&m.ID, &m.Name, &m.ContactEmail, &capabilities,
		&m.LeadTimeDays, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Capabilities = []string(capabilities)
	if m.Capabilities == nil {
		m.Capabilities = []string{}
	}
	return m, nil
}

func (r *postgresRepo) GetManufacturerByID(ctx context.Context, id string) (*Manufacturer, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, contact_email, capabilities, lead_time_days, active, created_at, updated_at
		FROM manufacturers WHERE id = $1`, parsedID)
	return scanManufacturer(row.Scan)
}

func (r *postgresRepo) ListManufacturers(ctx context.Context, activeOnly bool) ([]*Manufacturer, error) {
	query := `
		SELECT id, name, contact_email, capabilities, lead_time_days, active, created_at, updated_at
		FROM manufacturers`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var manufacturers []*Manufacturer
	for rows.Next() {
		m, err := scanManufacturer(rows.Scan)
		if err != nil {
			return nil, err
		}
		manufacturers = append(manufacturers, m)
	}
	return manufacturers, rows.Err()
}

func (r *postgresRepo) UpdateManufacturer(ctx context.Context, m *Manufacturer) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE manufacturers
		SET contact_email = $1, capabilities = $2, lead_time_days = $3, active = $4, updated_at = NOW()
		WHERE id = $5`,
		m.ContactEmail, pq.Array(m.Capabilities), m.LeadTimeDays, m.Active, m.ID)
	return err
}
