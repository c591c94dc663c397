package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogEntry struct {
	price  float64
	active bool
}

// mockRepo is an in-memory Repository for exercising the service.
type mockRepo struct {
	orders  map[string]*Order
	catalog map[string]catalogEntry
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		orders:  map[string]*Order{},
		catalog: map[string]catalogEntry{},
	}
}

func (m *mockRepo) CreateOrder(ctx context.Context, o *Order) error {
	m.orders[o.ID.String()] = o
	return nil
}

func (m *mockRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *mockRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if status == "" || string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockRepo) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.CustomerID.String() == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	o, ok := m.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

func (m *mockRepo) AssignManufacturer(ctx context.Context, id string, manufacturerID string) error {
	if _, ok := m.orders[id]; !ok {
		return ErrNotFound
	}
	return nil
}

func (m *mockRepo) GetItemPrice(ctx context.Context, catalogItemID string) (float64, bool, error) {
	entry, ok := m.catalog[catalogItemID]
	if !ok {
		return 0, false, ErrNotFound
	}
	return entry.price, entry.active, nil
}

func newTestOrder(t *testing.T, repo *mockRepo, itemPrice float64, quantity int) *Order {
	t.Helper()
	itemID := uuid.NewString()
	repo.catalog[itemID] = catalogEntry{price: itemPrice, active: true}
	svc := NewService(repo)

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []CartItem{{CatalogItemID: itemID, Quantity: quantity, Size: "M", Color: "Red"}},
	})
	require.NoError(t, err)
	return o
}

func TestPlaceOrderTotals(t *testing.T) {
	repo := newMockRepo()
	o := newTestOrder(t, repo, 29.99, 2)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 59.98, o.Subtotal)
	assert.Equal(t, 4.80, o.Tax)
	assert.Equal(t, 64.78, o.Total)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 29.99, o.Items[0].UnitPrice)
	assert.Equal(t, 59.98, o.Items[0].LineTotal)
	assert.Equal(t, "M", o.Items[0].Size)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{4}$`, o.OrderNumber)
}

func TestPlaceOrderValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: uuid.NewString()})
	assert.ErrorContains(t, err, "at least one item")
	var invalid *InvalidRequestError
	assert.ErrorAs(t, err, &invalid)

	itemID := uuid.NewString()
	repo.catalog[itemID] = catalogEntry{price: 10, active: true}

	_, err = svc.PlaceOrder(ctx, PlaceOrderRequest{
		Items: []CartItem{{CatalogItemID: itemID, Quantity: 1}},
	})
	assert.ErrorContains(t, err, "customer_id is required")

	_, err = svc.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []CartItem{{CatalogItemID: itemID, Quantity: 0}},
	})
	assert.ErrorContains(t, err, "quantity must be > 0")
}

func TestPlaceOrderInactiveItem(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	itemID := uuid.NewString()
	repo.catalog[itemID] = catalogEntry{price: 10, active: false}

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []CartItem{{CatalogItemID: itemID, Quantity: 1}},
	})
	assert.ErrorContains(t, err, "unavailable")
	var unprocessable *UnprocessableError
	assert.ErrorAs(t, err, &unprocessable)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), UpdateStatusRequest{Status: "CONFIRMED"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newMockRepo()
	o := newTestOrder(t, repo, 10, 1)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "shipped"})
	assert.ErrorContains(t, err, "cannot transition order from PENDING to SHIPPED")

	updated, err := svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)

	for _, next := range []string{"IN_PRODUCTION", "SHIPPED", "DELIVERED"} {
		updated, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: next})
		require.NoError(t, err)
	}
	assert.Equal(t, StatusDelivered, updated.Status)

	_, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "CANCELLED"})
	assert.ErrorContains(t, err, "cannot transition")
}

func TestCancelOrder(t *testing.T) {
	repo := newMockRepo()
	o := newTestOrder(t, repo, 10, 1)
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CancelOrder(ctx, o.ID.String()))
	assert.Equal(t, StatusCancelled, repo.orders[o.ID.String()].Status)

	err := svc.CancelOrder(ctx, o.ID.String())
	assert.ErrorContains(t, err, "only PENDING or CONFIRMED")
}

func TestAssignManufacturer(t *testing.T) {
	repo := newMockRepo()
	o := newTestOrder(t, repo, 10, 1)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.AssignManufacturer(ctx, o.ID.String(), AssignManufacturerRequest{
		ManufacturerID: uuid.NewString(),
	})
	assert.ErrorContains(t, err, "can be assigned")

	_, err = svc.UpdateStatus(ctx, o.ID.String(), UpdateStatusRequest{Status: "CONFIRMED"})
	require.NoError(t, err)

	mid := uuid.NewString()
	assigned, err := svc.AssignManufacturer(ctx, o.ID.String(), AssignManufacturerRequest{ManufacturerID: mid})
	require.NoError(t, err)
	require.NotNil(t, assigned.ManufacturerID)
	assert.Equal(t, mid, assigned.ManufacturerID.String())
}
