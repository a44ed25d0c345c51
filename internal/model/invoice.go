package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice types. A proforma is a non-binding quote; promotion to final is
// one-way (a final invoice never reverts).
const (
	InvoiceTypeProforma = "proforma"
	InvoiceTypeFinal    = "final"
)

// Invoice statuses. New proformas start as draft, new final invoices as pending.
const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusPending       = "pending"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusFullyPaid     = "fully_paid"
	InvoiceStatusOverdue       = "overdue"
)

// Invoice is the header record holding totals, status, type, and the client
// reference. Invariant: TotalAmount = SubTotal + TaxAmount for every stored
// row — all three are written together from the same computation.
type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type        string          `gorm:"type:varchar(10);not null"`
	ClientID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	SubTotal    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20);not null;default:'draft'"`
	// Date is the issue timestamp, set once at creation
	Date    time.Time `gorm:"not null"`
	DueDate *time.Time
	Notes   *string
	// PDFPath is relative to PDF_STORAGE_PATH; set by the document worker
	PDFPath   *string `gorm:"column:pdf_path"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Client *Client       `gorm:"foreignKey:ClientID"`
	Items  []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// Measurement units for invoice line items.
const (
	UnitMeter       = "m"
	UnitTon         = "ton"
	UnitHour        = "hour"
	UnitCubicMeter  = "m3"
	UnitSquareMeter = "m2"
)

// InvoiceItem is one billable row within an invoice. Items are owned by their
// header and immutable once stored; Position preserves the print order.
type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Position    int       `gorm:"not null"`
	Description string
	Unit        string          `gorm:"type:varchar(10);not null;default:'m'"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// Total is always Quantity × UnitPrice as computed at save time
	Total     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt time.Time
}
