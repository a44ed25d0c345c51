package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is a customer of the construction company.
type Client struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `gorm:"index;not null"`
	Phone   string
	Address string
	Email   *string
	// TotalDebt is the outstanding receivable balance for this client
	TotalDebt decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
