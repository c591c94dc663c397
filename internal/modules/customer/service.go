package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Onboarding failures the caller can correct.
var (
	ErrEmailRequired  = errors.New("email is required")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Service defines the interface for customer-related business logic.
type Service interface {
	OnboardCustomer(ctx context.Context, req OnboardRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

type service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) OnboardCustomer(ctx context.Context, req OnboardRequest) (*Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	// the unique column still backs this check; concurrent onboards of the
	// same email surface as a constraint error from the insert
	if _, err := s.repo.GetCustomerByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c := &Customer{
		ID:        uuid.New(),
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
	}

	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}
