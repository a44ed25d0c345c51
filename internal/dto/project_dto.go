package dto

import "github.com/shopspring/decimal"

type CreateProjectRequest struct {
	Name      string          `json:"name"       validate:"required,min=2"`
	Client    string          `json:"client"     validate:"required"`
	Status    string          `json:"status"     validate:"omitempty,oneof=active completed delayed pending"`
	Budget    decimal.Decimal `json:"budget"     validate:"min=0"`
	Progress  int             `json:"progress"   validate:"min=0,max=100"`
	StartDate *string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string         `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

type UpdateProjectRequest struct {
	Name     string           `json:"name"`
	Client   string           `json:"client"`
	Status   string           `json:"status"   validate:"omitempty,oneof=active completed delayed pending"`
	Budget   *decimal.Decimal `json:"budget"   validate:"omitempty"`
	Expenses *decimal.Decimal `json:"expenses" validate:"omitempty"`
	Progress *int             `json:"progress" validate:"omitempty,min=0,max=100"`
}

type ProjectResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Client    string          `json:"client"`
	Status    string          `json:"status"`
	Budget    decimal.Decimal `json:"budget"`
	Expenses  decimal.Decimal `json:"expenses"`
	Progress  int             `json:"progress"`
	StartDate *string         `json:"start_date,omitempty"`
	EndDate   *string         `json:"end_date,omitempty"`
}
