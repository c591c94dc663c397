package customer

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no customer matches the requested id or email.
var ErrNotFound = errors.New("customer not found")

// Repository defines the interface for customer data storage.
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomerByID(ctx context.Context, id string) (*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
}
