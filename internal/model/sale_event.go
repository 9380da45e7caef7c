package model

import (
	"time"

	"github.com/google/uuid"
)

type SaleEventType string

const (
	SaleRecorded SaleEventType = "sale.recorded"
	SaleReversed SaleEventType = "sale.reversed"
)

// SaleEvent is published after a sale is recorded or reversed.
type SaleEvent struct {
	EventID     uuid.UUID
	Type        SaleEventType
	OrderID     string
	ProductID   string
	Quantity    int64
	SalePrice   float64
	NewQuantity int64
	Actor       string
	OccurredAt  time.Time
}
