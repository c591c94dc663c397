package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, customer_id, manufacturer_id, order_number, status,
	subtotal, discount, tax, total, notes, created_at, updated_at`

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, customer_id, manufacturer_id, order_number, status,
		   subtotal, discount, tax, total, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		o.ID, o.CustomerID, o.ManufacturerID, o.OrderNumber, o.Status,
		o.Subtotal, o.Discount, o.Tax, o.Total, o.Notes)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items
			  (id, order_id, catalog_item_id, quantity, size, color, unit_price, line_total)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			item.ID, o.ID, item.CatalogItemID,
			item.Quantity, item.Size, item.Color, item.UnitPrice, item.LineTotal)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		// a malformed id cannot match any order
		return nil, ErrNotFound
	}
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, uid).Scan)
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID.String())
	return o, err
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number=$1`, orderNumber).Scan)
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID.String())
	return o, err
}

func (r *postgresRepo) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, args...)
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`,
		customerID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepo) AssignManufacturer(ctx context.Context, id string, manufacturerID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET manufacturer_id=$1, updated_at=$2 WHERE id=$3`,
		manufacturerID, time.Now(), id)
	return err
}

func (r *postgresRepo) GetItemPrice(ctx context.Context, catalogItemID string) (float64, bool, error) {
	var price float64
	var status string
	err := r.db.QueryRowContext(ctx,
		`SELECT base_price, status FROM catalog_items WHERE id=$1`,
		catalogItemID).Scan(&price, &status)
	return price, status == "active", err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanOrder(scan func(...interface{}) error) (*Order, error) {
	o := &Order{}
	var manufacturerID sql.NullString
	err := scan(
		&o.ID, &o.CustomerID, &manufacturerID, &o.OrderNumber, &o.Status,
		&o.Subtotal, &o.Discount, &o.Tax, &o.Total, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if manufacturerID.Valid {
		mid, _ := uuid.Parse(manufacturerID.String)
		o.ManufacturerID = &mid
	}
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) listItems(ctx context.Context, orderID string) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, catalog_item_id, quantity, size, color, unit_price, line_total, created_at, updated_at
		FROM order_items WHERE order_id=$1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.CatalogItemID,
			&item.Quantity, &item.Size, &item.Color, &item.UnitPrice, &item.LineTotal,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
