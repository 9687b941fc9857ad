package domain

import (
	"time"
)

// Product represents a catalogue product with inventory control fields
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Brand        string    `json:"brand" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	WeightSize   string    `json:"weight_size,omitempty"` // e.g. "20kg", "15ml"
	Price        float64   `json:"price" validate:"gte=0"`
	Cost         float64   `json:"cost,omitempty" validate:"gte=0"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	MaxStock     int       `json:"max_stock"`
	ReorderPoint int       `json:"reorder_point"`
	SKU          string    `json:"sku,omitempty"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockStatus classifies the current stock level
type StockStatus string

const (
	StockStatusCritical StockStatus = "critical"
	StockStatusLow      StockStatus = "low"
	StockStatusNormal   StockStatus = "normal"
	StockStatusHigh     StockStatus = "high"
)

// StockStatus derives the stock level classification from the configured
// minimum and maximum thresholds.
func (p *Product) StockStatus() StockStatus {
	switch {
	case float64(p.CurrentStock) <= float64(p.MinStock)*0.5:
		return StockStatusCritical
	case p.CurrentStock <= p.MinStock:
		return StockStatusLow
	case float64(p.CurrentStock) >= float64(p.MaxStock)*0.9:
		return StockStatusHigh
	default:
		return StockStatusNormal
	}
}

// Margin returns the gross margin percentage, or 0 when price is unset.
func (p *Product) Margin() float64 {
	if p.Price <= 0 {
		return 0
	}
	return (p.Price - p.Cost) / p.Price * 100
}

// InventoryValue returns the valuation of the stock on hand at sale price.
func (p *Product) InventoryValue() float64 {
	return float64(p.CurrentStock) * p.Price
}
