package entity

import "github.com/shopspring/decimal"

// ReportRequest carries everything a single balancing report run needs:
// the date preset (explicit dates force "custom"), the row filter and the
// requested page. Validated in the handler before the pipeline runs.
type ReportRequest struct {
	Preset   string    `json:"preset" validate:"omitempty,oneof=daily weekly monthly custom"`
	From     string    `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string    `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Filter   RowFilter `json:"filter"`
	Page     int       `json:"page" validate:"omitempty,min=1"`
	PageSize int       `json:"page_size"`
}

// Summary holds the aggregate statistics over the filtered row set.
type Summary struct {
	TotalRows             int             `json:"total_rows"`
	TotalKilograms        decimal.Decimal `json:"total_kilograms"`
	TotalBags             int             `json:"total_bags"`
	TotalPaid             decimal.Decimal `json:"total_paid"`
	TotalConfirmedPaid    decimal.Decimal `json:"total_confirmed_paid"`
	AssessedCount         int             `json:"assessed_count"`
	NotAssessedCount      int             `json:"not_assessed_count"`
	FinanceMissingCount   int             `json:"finance_missing_count"`
	FinancePendingCount   int             `json:"finance_pending_count"`
	FinanceConfirmedCount int             `json:"finance_confirmed_count"`
	BalancedCount         int             `json:"balanced_count"`
	UnbalancedCount       int             `json:"unbalanced_count"`
	FlowHealth            int             `json:"flow_health"`
}

// Report is the result of one full pipeline run.
type Report struct {
	Range      DateRange       `json:"range"`
	Rows       []ReconciledRow `json:"rows"`
	TotalRows  int             `json:"total_rows"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	Summary    Summary         `json:"summary"`
	Errors     []ReportError   `json:"errors,omitempty"`
}
