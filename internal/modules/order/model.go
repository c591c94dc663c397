package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending      OrderStatus = "PENDING"
	StatusConfirmed    OrderStatus = "CONFIRMED"
	StatusInProduction OrderStatus = "IN_PRODUCTION"
	StatusShipped      OrderStatus = "SHIPPED"
	StatusDelivered    OrderStatus = "DELIVERED"
	StatusCancelled    OrderStatus = "CANCELLED"
)

// Order represents a customer's apparel order.
type Order struct {
	ID             uuid.UUID    `json:"id"`
	CustomerID     uuid.UUID    `json:"customer_id"`
	ManufacturerID *uuid.UUID   `json:"manufacturer_id,omitempty"` // nil until assigned
	OrderNumber    string       `json:"order_number"`
	Status         OrderStatus  `json:"status"`
	Subtotal       float64      `json:"subtotal"`
	Discount       float64      `json:"discount"`
	Tax            float64      `json:"tax"`
	Total          float64      `json:"total"`
	Notes          string       `json:"notes,omitempty"`
	Items          []*OrderItem `json:"items,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	ID            uuid.UUID `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	CatalogItemID uuid.UUID `json:"catalog_item_id"`
	Quantity      int       `json:"quantity"`
	Size          string    `json:"size,omitempty"`
	Color         string    `json:"color,omitempty"`
	UnitPrice     float64   `json:"unit_price"`
	LineTotal     float64   `json:"line_total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CartItem is a transient struct used during order creation.
type CartItem struct {
	CatalogItemID string `json:"catalog_item_id"`
	Quantity      int    `json:"quantity"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	Notes      string     `json:"notes,omitempty"`
	Discount   float64    `json:"discount,omitempty"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignManufacturerRequest hands an order to a production partner.
type AssignManufacturerRequest struct {
	ManufacturerID string `json:"manufacturer_id"`
}
