package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Worker is a day laborer or tradesman on the payroll.
type Worker struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"index;not null"`
	Trade string    `gorm:"not null"`
	Phone string
	// DailyRate is the pay for one full day (morning + evening halves)
	DailyRate      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentProject string
	Active         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Attendance records half-day presence for one worker on one date.
type Attendance struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Date     time.Time `gorm:"not null"`
	Morning  bool      `gorm:"not null;default:false"`
	Evening  bool      `gorm:"not null;default:false"`

	CreatedAt time.Time
}

// WorkerPayment is a cash advance or wage payment made to a worker.
type WorkerPayment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date      time.Time       `gorm:"not null"`
	Notes     string
	CreatedAt time.Time
}
