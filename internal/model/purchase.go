package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase order statuses.
const (
	PurchaseStatusOrdered  = "ordered"
	PurchaseStatusShipping = "shipping"
	PurchaseStatusReceived = "received"
)

// Purchase is one materials order. Total is always Quantity × UnitPrice,
// computed at creation. Orders not yet received count as supplier debt.
type Purchase struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date      time.Time `gorm:"not null"`
	Project   string
	Item      string          `gorm:"not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Supplier  string          `gorm:"index"`
	Status    string          `gorm:"type:varchar(20);not null;default:'ordered'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
