package entity

import "time"

// DateRange is an inclusive calendar date interval.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type AssessmentFilter string

const (
	AssessmentFilterAll         AssessmentFilter = "all"
	AssessmentFilterAssessed    AssessmentFilter = "assessed"
	AssessmentFilterNotAssessed AssessmentFilter = "not_assessed"
)

type FinanceFilter string

const (
	FinanceFilterAll       FinanceFilter = "all"
	FinanceFilterMissing   FinanceFilter = "missing"
	FinanceFilterPending   FinanceFilter = "pending"
	FinanceFilterConfirmed FinanceFilter = "confirmed"
)

type BalanceFilter string

const (
	BalanceFilterAll        BalanceFilter = "all"
	BalanceFilterBalanced   BalanceFilter = "balanced"
	BalanceFilterUnbalanced BalanceFilter = "unbalanced"
)

// RowFilter is the predicate set applied to reconciled rows before
// aggregation and pagination. Zero values mean "no restriction".
type RowFilter struct {
	Assessment   AssessmentFilter `json:"assessment" validate:"omitempty,oneof=all assessed not_assessed"`
	Finance      FinanceFilter    `json:"finance" validate:"omitempty,oneof=all missing pending confirmed"`
	Balance      BalanceFilter    `json:"balance" validate:"omitempty,oneof=all balanced unbalanced"`
	CoffeeType   string           `json:"coffee_type"`
	RecordStatus string           `json:"record_status"`
	Search       string           `json:"search"`
}
