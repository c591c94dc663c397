package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvalidRequestError marks a request the caller can fix; handlers map it to 400.
type InvalidRequestError struct{ Msg string }

func (e *InvalidRequestError) Error() string { return e.Msg }

// UnprocessableError marks a request that is well-formed but cannot be carried
// out in the order's or catalog item's current state; handlers map it to 422.
type UnprocessableError struct{ Msg string }

func (e *UnprocessableError) Error() string { return e.Msg }

func invalidf(format string, args ...interface{}) error {
	return &InvalidRequestError{Msg: fmt.Sprintf(format, args...)}
}

func unprocessablef(format string, args ...interface{}) error {
	return &UnprocessableError{Msg: fmt.Sprintf(format, args...)}
}

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder validates the cart, prices it from the catalog, and persists
	// the order atomically.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves a full order with its items by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrders returns all orders, optionally filtered by status.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// ListCustomerOrders returns all orders placed by a customer.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)

	// UpdateStatus advances an order to a new lifecycle status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// AssignManufacturer hands a confirmed order to a production partner.
	AssignManufacturer(ctx context.Context, id string, req AssignManufacturerRequest) (*Order, error)

	// CancelOrder cancels a PENDING or CONFIRMED order.
	CancelOrder(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed:    {StatusInProduction, StatusCancelled},
	StatusInProduction: {StatusShipped},
	StatusShipped:      {StatusDelivered},
	StatusDelivered:    {},
	StatusCancelled:    {},
}

const salesTaxRate = 0.08

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, invalidf("order must contain at least one item")
	}
	if req.CustomerID == "" {
		return nil, invalidf("customer_id is required")
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, invalidf("invalid customer_id: %v", err)
	}

	// ── Build order items, price from the catalog ─────────────────────────────
	var items []*OrderItem
	var subtotal float64

	for _, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, invalidf("quantity must be > 0 for item %s", ci.CatalogItemID)
		}
		price, active, err := s.repo.GetItemPrice(ctx, ci.CatalogItemID)
		if err != nil {
			return nil, unprocessablef("catalog item %s not found", ci.CatalogItemID)
		}
		if !active {
			return nil, unprocessablef("catalog item %s is currently unavailable", ci.CatalogItemID)
		}

		itemID, err := uuid.Parse(ci.CatalogItemID)
		if err != nil {
			return nil, invalidf("invalid catalog_item_id: %v", err)
		}

		lineTotal := price * float64(ci.Quantity)
		subtotal += lineTotal

		items = append(items, &OrderItem{
			ID:            uuid.New(),
			CatalogItemID: itemID,
			Quantity:      ci.Quantity,
			Size:          strings.TrimSpace(ci.Size),
			Color:         strings.TrimSpace(ci.Color),
			UnitPrice:     price,
			LineTotal:     lineTotal,
		})
	}

	// ── Calculate totals ──────────────────────────────────────────────────────
	discount := req.Discount
	if discount < 0 {
		discount = 0
	}
	taxable := subtotal - discount
	if taxable < 0 {
		taxable = 0
	}
	tax := taxable * salesTaxRate
	total := taxable + tax

	o := &Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		OrderNumber: generateOrderNumber(),
		Status:      StatusPending,
		Subtotal:    round2(subtotal),
		Discount:    round2(discount),
		Tax:         round2(tax),
		Total:       round2(total),
		Notes:       req.Notes,
		Items:       items,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetOrderByNumber(ctx, orderNumber)
}

func (s *service) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	return s.repo.ListOrders(ctx, strings.ToUpper(status))
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	return s.repo.ListOrdersByCustomer(ctx, customerID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := OrderStatus(strings.ToUpper(req.Status))
	allowed := validTransitions[o.Status]
	valid := false
	for _, st := range allowed {
		if st == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, unprocessablef("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return o, nil
}

func (s *service) AssignManufacturer(ctx context.Context, id string, req AssignManufacturerRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusConfirmed && o.Status != StatusInProduction {
		return nil, unprocessablef("only CONFIRMED or IN_PRODUCTION orders can be assigned (current: %s)", o.Status)
	}

	mid, err := uuid.Parse(req.ManufacturerID)
	if err != nil {
		return nil, invalidf("invalid manufacturer_id: %v", err)
	}

	if err := s.repo.AssignManufacturer(ctx, id, mid.String()); err != nil {
		return nil, err
	}
	o.ManufacturerID = &mid
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return unprocessablef("only PENDING or CONFIRMED orders can be cancelled (current: %s)", o.Status)
	}
	return s.repo.UpdateStatus(ctx, id, StatusCancelled)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
