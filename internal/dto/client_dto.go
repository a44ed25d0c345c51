package dto

import "github.com/shopspring/decimal"

type CreateClientRequest struct {
	Name    string  `json:"name"    validate:"required,min=2"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Notes   *string `json:"notes"`
}

type ClientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Email     *string         `json:"email,omitempty"`
	TotalDebt decimal.Decimal `json:"total_debt"`
	Notes     *string         `json:"notes,omitempty"`
}
