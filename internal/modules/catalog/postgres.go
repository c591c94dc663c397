package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL catalog item repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// itemColumns fixes the column order used by every SELECT and RETURNING list.
var itemColumns = []string{
	colID, colName, colCategory, colSport, colSKU, colStatus,
	colBasePrice, colUnitCost, colImageURL, colSpecifications,
	colCreatedAt, colUpdatedAt,
}

func columnList() string { return strings.Join(itemColumns, ", ") }

func scanRow(scan func(...any) error) (Row, error) {
	values := make([]any, len(itemColumns))
	ptrs := make([]any, len(itemColumns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := scan(ptrs...); err != nil {
		return nil, err
	}
	row := Row{}
	for i, col := range itemColumns {
		row[col] = values[i]
	}
	return row, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		columnList(), TableName, colCreatedAt)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row, err := scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		columnList(), TableName, colID)
	row, err := scanRow(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		return nil, classifyError(err)
	}
	return row, nil
}

func (r *postgresRepo) Insert(ctx context.Context, row Row) (Row, error) {
	var cols, placeholders []string
	var args []any
	for _, col := range itemColumns {
		v, ok := row[col]
		if !ok {
			continue
		}
		args = append(args, v)
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		TableName, strings.Join(cols, ", "), strings.Join(placeholders, ", "), columnList())
	inserted, err := scanRow(r.db.QueryRowContext(ctx, query, args...).Scan)
	if err != nil {
		return nil, classifyError(err)
	}
	return inserted, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, row Row) (Row, error) {
	var assignments []string
	var args []any
	for _, col := range itemColumns {
		if col == colID || col == colCreatedAt {
			continue
		}
		v, ok := row[col]
		if !ok {
			continue
		}
		args = append(args, v)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		TableName, strings.Join(assignments, ", "), colID, len(args), columnList())
	updated, err := scanRow(r.db.QueryRowContext(ctx, query, args...).Scan)
	if err != nil {
		return nil, classifyError(err)
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, TableName, colID)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classifyError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// classifyError maps driver errors onto the repository's typed errors so
// callers switch on error kind instead of message text. SQLSTATE class 23
// covers every integrity constraint violation.
func classifyError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return &ConstraintError{Constraint: pqErr.Constraint, Err: err}
	}
	return err
}
