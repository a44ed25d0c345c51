package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusDelayed   = "delayed"
	ProjectStatusPending   = "pending"
)

// Project is a construction site/contract being tracked.
type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name   string    `gorm:"not null"`
	Client string    `gorm:"not null"`
	// Progress is the completion percentage 0–100 entered by the site manager
	Progress  int             `gorm:"not null;default:0"`
	Status    string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Budget    decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0"`
	Expenses  decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
