package manufacturer

import "context"

// Repository defines the interface for manufacturer data storage.
type Repository interface {
	CreateManufacturer(ctx context.Context, m *Manufacturer) error
	GetManufacturerByID(ctx context.Context, id string) (*Manufacturer, error)
	ListManufacturers(ctx context.Context, activeOnly bool) ([]*Manufacturer, error)
	UpdateManufacturer(ctx context.Context, m *Manufacturer) error
}
