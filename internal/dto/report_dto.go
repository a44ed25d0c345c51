package dto

import "github.com/shopspring/decimal"

// ReportOverview aggregates project performance figures for the reports
// screen. AvgProgress covers active projects only; BudgetUtilization is
// expenses over budget across all projects, as a percentage.
type ReportOverview struct {
	ActiveCount       int             `json:"active_count"`
	AvgProgress       int             `json:"avg_progress"`
	TotalBudget       decimal.Decimal `json:"total_budget"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	BudgetUtilization int             `json:"budget_utilization"`
}
