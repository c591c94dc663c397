package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no catalog item matches the requested id.
var ErrNotFound = errors.New("catalog item not found")

// ConstraintError reports a storage constraint violation (duplicate sku,
// missing required column). Handlers treat it as a client error. It replaces
// matching on the driver's message text, which broke across driver versions.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint %s violated: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint violated: %v", e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// Repository defines the interface for catalog item storage.
type Repository interface {
	List(ctx context.Context) ([]Row, error)
	GetByID(ctx context.Context, id string) (Row, error)
	Insert(ctx context.Context, row Row) (Row, error)
	Update(ctx context.Context, id string, row Row) (Row, error)
	Delete(ctx context.Context, id string) error
}
