package domain

import (
	"time"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderSource identifies the channel an order arrived through
type OrderSource string

const (
	OrderSourceWhatsApp OrderSource = "whatsapp"
	OrderSourceWeb      OrderSource = "web"
	OrderSourceManual   OrderSource = "manual"
)

// Order represents a confirmed sale with delivery coordinates
type Order struct {
	ID          int64       `json:"id"`
	OrderID     string      `json:"order_id" validate:"required"` // e.g. VTA7063
	ProductID   int64       `json:"product_id" validate:"required"`
	ProductName string      `json:"product_name,omitempty"`
	CustomerID  int64       `json:"customer_id,omitempty"`
	Customer    *Customer   `json:"customer,omitempty"`
	Quantity    int         `json:"quantity" validate:"gt=0"`
	UnitPrice   float64     `json:"unit_price" validate:"gte=0"`
	TotalPrice  float64     `json:"total_price" validate:"gte=0"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Address     string      `json:"address,omitempty"`
	OrderDate   time.Time   `json:"order_date" validate:"required"`
	CreatedAt   time.Time   `json:"created_at"`
	Source      OrderSource `json:"source"`
	Notes       string      `json:"notes,omitempty"`
	Status      OrderStatus `json:"status"`
	ClusterID   int         `json:"cluster_id,omitempty"`
}

// Customer represents a repeat buyer keyed by phone number
type Customer struct {
	ID          int64     `json:"id"`
	Phone       string    `json:"phone"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	TotalOrders int       `json:"total_orders"`
	TotalSpent  float64   `json:"total_spent"`
	CreatedAt   time.Time `json:"created_at"`
}
