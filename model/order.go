package model

import (
	"strings"
	"time"

	"github.com/heolazz/aerotech/constant"
)

// CustomerInfo is the free-text customer block required at submission.
// Fields are validated non-empty after trimming in the application layer.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

func (c *CustomerInfo) Trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
}

// Complete reports whether every required field survives trimming.
func (c CustomerInfo) Complete() bool {
	return c.Name != "" && c.Phone != "" && c.Address != ""
}

// OrderEntity represents the orders table entity. ItemsSummary and
// TotalPrice are captured at submission time and immutable thereafter.
type OrderEntity struct {
	ID              uint64               `db:"id" json:"-"`
	OrderID         string               `db:"order_id" json:"order_id"`
	CustomerName    string               `db:"customer_name" json:"customer_name"`
	CustomerPhone   string               `db:"customer_phone" json:"customer_phone"`
	CustomerAddress string               `db:"customer_address" json:"customer_address"`
	ItemsSummary    string               `db:"items_summary" json:"items_summary"`
	Notes           string               `db:"notes" json:"notes,omitempty"`
	TotalPrice      int64                `db:"total_price" json:"total_price"`
	Status          constant.OrderStatus `db:"status" json:"status"`
	Type            constant.OrderType   `db:"type" json:"type"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
}

// CheckoutRequest submits the session cart as a CATALOG order.
type CheckoutRequest struct {
	Customer CustomerInfo `json:"customer" validate:"required"`
}

type CheckoutResponse struct {
	OrderID      string `json:"order_id"`
	TotalPrice   int64  `json:"total_price"`
	TotalDisplay string `json:"total_display"`
}

// CustomOrderRequest submits a configurator build as a CUSTOM order.
// Details is free-text from the build form and is stored on the order
// as notes for the back office.
type CustomOrderRequest struct {
	Customer     CustomerInfo `json:"customer" validate:"required"`
	Archetype    string       `json:"archetype" validate:"required"`
	ComponentIDs []string     `json:"component_ids"`
	Details      string       `json:"details"`
}

// TrackingResponse is the customer-facing read-only order view.
type TrackingResponse struct {
	OrderID      string               `json:"order_id"`
	Status       constant.OrderStatus `json:"status"`
	ItemsSummary string               `json:"items_summary"`
	TotalPrice   int64                `json:"total_price"`
	TotalDisplay string               `json:"total_display"`
	CreatedAt    time.Time            `json:"created_at"`
}

// StatusUpdateRequest sets a stored order's status (admin path).
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
