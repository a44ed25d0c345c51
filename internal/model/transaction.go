package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types for the finance ledger.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is one row in the company finance ledger.
// Type: "income" | "expense". Method: "cash" | "cheque" | "transfer".
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date        time.Time       `gorm:"index;not null"`
	Method      string          `gorm:"type:varchar(20)"`
	Status      string          `gorm:"type:varchar(20)"`
	Type        string          `gorm:"type:varchar(10);index;not null"`
	Category    *string
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
