package dto

import "github.com/shopspring/decimal"

type CreateWorkerRequest struct {
	Name           string          `json:"name"            validate:"required,min=2"`
	Trade          string          `json:"trade"           validate:"required"`
	Phone          string          `json:"phone"`
	DailyRate      decimal.Decimal `json:"daily_rate"      validate:"min=0"`
	CurrentProject string          `json:"current_project"`
}

type RecordAttendanceRequest struct {
	Date    string `json:"date"    validate:"required,datetime=2006-01-02"`
	Morning bool   `json:"morning"`
	Evening bool   `json:"evening"`
}

type RecordWorkerPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Date   string          `json:"date"   validate:"required,datetime=2006-01-02"`
	Notes  string          `json:"notes"`
}

type WorkerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Trade          string          `json:"trade"`
	Phone          string          `json:"phone"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	CurrentProject string          `json:"current_project"`
	Active         bool            `json:"active"`
}

// WorkerStatement carries the derived payroll figures for one worker:
// days worked (half-day granularity), earned = days × daily rate, total
// payments received, and the remaining balance.
type WorkerStatement struct {
	Worker          WorkerResponse  `json:"worker"`
	TotalDaysWorked decimal.Decimal `json:"total_days_worked"`
	TotalEarned     decimal.Decimal `json:"total_earned"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Balance         decimal.Decimal `json:"balance"`
}
