package manufacturer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines manufacturer administration logic.
type Service interface {
	RegisterManufacturer(ctx context.Context, req RegisterRequest) (*Manufacturer, error)
	GetManufacturer(ctx context.Context, id string) (*Manufacturer, error)
	ListManufacturers(ctx context.Context, activeOnly bool) ([]*Manufacturer, error)
	UpdateManufacturer(ctx context.Context, id string, req UpdateRequest) (*Manufacturer, error)
}

type service struct {
	repo Repository
}

// NewService creates a new manufacturer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterManufacturer(ctx context.Context, req RegisterRequest) (*Manufacturer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	leadTime := req.LeadTimeDays
	if leadTime <= 0 {
		leadTime = 14
	}
	capabilities := req.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}

	m := &Manufacturer{
		ID:           uuid.New(),
		Name:         name,
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		Capabilities: capabilities,
		LeadTimeDays: leadTime,
		Active:       true,
	}

	if err := s.repo.CreateManufacturer(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetManufacturer(ctx context.Context, id string) (*Manufacturer, error) {
	return s.repo.GetManufacturerByID(ctx, id)
}

func (s *service) ListManufacturers(ctx context.Context, activeOnly bool) ([]*Manufacturer, error) {
	return s.repo.ListManufacturers(ctx, activeOnly)
}

func (s *service) UpdateManufacturer(ctx context.Context, id string, req UpdateRequest) (*Manufacturer, error) {
	m, err := s.repo.GetManufacturerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ContactEmail != nil {
		m.ContactEmail = strings.TrimSpace(*req.ContactEmail)
	}
	if req.Capabilities != nil {
		m.Capabilities = *req.Capabilities
	}
	if req.LeadTimeDays != nil && *req.LeadTimeDays > 0 {
		m.LeadTimeDays = *req.LeadTimeDays
	}
	if req.Active != nil {
		m.Active = *req.Active
	}
	if err := s.repo.UpdateManufacturer(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
