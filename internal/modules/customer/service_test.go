package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository keyed by id and email.
type fakeRepo struct {
	byID    map[string]*Customer
	byEmail map[string]*Customer
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*Customer{}, byEmail: map[string]*Customer{}}
}

func (f *fakeRepo) CreateCustomer(ctx context.Context, c *Customer) error {
	f.byID[c.ID.String()] = c
	f.byEmail[c.Email] = c
	return nil
}

func (f *fakeRepo) GetCustomerByID(ctx context.Context, id string) (*Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListCustomers(ctx context.Context) ([]*Customer, error) {
	var out []*Customer
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func TestOnboardCustomer(t *testing.T) {
	svc := NewService(newFakeRepo())

	c, err := svc.OnboardCustomer(context.Background(), OnboardRequest{
		Email:     "  Jane@Example.com ",
		FirstName: " Jane ",
		LastName:  "Doe",
		Company:   "Riverside High",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "jane@example.com", c.Email, "email is lowercased and trimmed")
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "Riverside High", c.Company)
}

func TestOnboardCustomerRequiresEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.OnboardCustomer(context.Background(), OnboardRequest{Email: "   "})
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestOnboardCustomerDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.OnboardCustomer(ctx, OnboardRequest{Email: "jane@example.com"})
	require.NoError(t, err)

	// same address, different spelling
	_, err = svc.OnboardCustomer(ctx, OnboardRequest{Email: " JANE@example.com "})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestGetCustomerMissing(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.GetCustomer(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
