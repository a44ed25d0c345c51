package dto

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Date        string          `json:"date"        validate:"required,datetime=2006-01-02"`
	Method      string          `json:"method"      validate:"omitempty,oneof=cash cheque transfer"`
	Type        string          `json:"type"        validate:"required,oneof=income expense"`
	Category    *string         `json:"category"`
	ClientID    *string         `json:"client_id"   validate:"omitempty,uuid"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Type        string          `json:"type"`
	Category    *string         `json:"category,omitempty"`
}

// FinanceSummary mirrors the dashboard's headline figures: running balance,
// current-month income/expense, and the two debt aggregates.
type FinanceSummary struct {
	Balance        decimal.Decimal `json:"balance"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
	ClientDebt     decimal.Decimal `json:"client_debt"`
	SupplierDebt   decimal.Decimal `json:"supplier_debt"`
}
