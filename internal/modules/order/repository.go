package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no order matches the given id or number.
var ErrNotFound = errors.New("order not found")

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable order number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrdersByCustomer returns all orders placed by a specific customer.
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error)

	// ListOrders returns all orders, optionally filtered by status.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// UpdateStatus advances an order to a new status.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error

	// AssignManufacturer sets the producing manufacturer for an order.
	AssignManufacturer(ctx context.Context, id string, manufacturerID string) error

	// GetItemPrice fetches the current base price and active flag for a catalog item.
	GetItemPrice(ctx context.Context, catalogItemID string) (price float64, active bool, err error)
}
