package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type InvoiceItemInput struct {
	Description string          `json:"description"`
	Unit        string          `json:"unit"       validate:"omitempty,oneof=m ton hour m3 m2"`
	Quantity    decimal.Decimal `json:"quantity"   validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"min=0"`
}

type CreateInvoiceRequest struct {
	Type     string             `json:"type"      validate:"required,oneof=proforma final"`
	ClientID string             `json:"client_id"`
	DueDate  *string            `json:"due_date"  validate:"omitempty,datetime=2006-01-02"`
	Notes    *string            `json:"notes"`
	Items    []InvoiceItemInput `json:"items"`
}

type PromoteInvoiceRequest struct {
	// Confirm is the explicit yes/no gate; promotion is refused without it
	Confirm bool `json:"confirm"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceResponse struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"`
	ClientID    string                `json:"client_id"`
	ClientName  string                `json:"client_name,omitempty"`
	SubTotal    decimal.Decimal       `json:"sub_total"`
	TaxAmount   decimal.Decimal       `json:"tax_amount"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	PaidAmount  decimal.Decimal       `json:"paid_amount"`
	Status      string                `json:"status"`
	Date        string                `json:"date"`
	DueDate     *string               `json:"due_date,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
	PDFUrl      *string               `json:"pdf_url,omitempty"`
	Items       []InvoiceItemResponse `json:"items,omitempty"`
}

type InvoiceListItem struct {
	ID         string          `json:"id"`
	Reference  string          `json:"reference"` // short human-readable id prefix
	Type       string          `json:"type"`
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
}
