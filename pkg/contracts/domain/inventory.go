package domain

import (
	"time"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeAdjustment MovementType = "adjustment"
)

// StockMovement records one change to a product's stock level
type StockMovement struct {
	ID            int64        `json:"id"`
	ProductID     int64        `json:"product_id" validate:"required"`
	Type          MovementType `json:"movement_type" validate:"required,oneof=in out adjustment"`
	Quantity      int          `json:"quantity"`
	PreviousStock int          `json:"previous_stock"`
	NewStock      int          `json:"new_stock"`
	Reason        string       `json:"reason,omitempty"` // sale, purchase, adjustment, return
	ReferenceID   string       `json:"reference_id,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	CreatedBy     string       `json:"created_by,omitempty"`
}
