package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a materials vendor.
type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"index;not null"`
	Phone        string
	Address      string
	MaterialType string
	// TotalPurchases accumulates the value of all orders placed with this vendor
	TotalPurchases decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0"`
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
