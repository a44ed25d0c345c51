package dto

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name         string  `json:"name"          validate:"required,min=2"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	MaterialType string  `json:"material_type"`
	Notes        *string `json:"notes"`
}

type SupplierResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	MaterialType   string          `json:"material_type"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	Notes          *string         `json:"notes,omitempty"`
}
