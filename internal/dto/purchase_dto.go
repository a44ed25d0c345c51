package dto

import "github.com/shopspring/decimal"

type CreatePurchaseRequest struct {
	Date      string          `json:"date"       validate:"required,datetime=2006-01-02"`
	Project   string          `json:"project"`
	Item      string          `json:"item"       validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
	Supplier  string          `json:"supplier"`
	Status    string          `json:"status"     validate:"omitempty,oneof=ordered shipping received"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ordered shipping received"`
}

type PurchaseResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Project   string          `json:"project"`
	Item      string          `json:"item"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Supplier  string          `json:"supplier"`
	Status    string          `json:"status"`
}
