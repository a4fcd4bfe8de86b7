package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord is one coffee delivery intake entry from the purchase
// ledger. Read-only for the balancing report.
type PurchaseRecord struct {
	ID           string          `json:"id"`
	BatchNumber  string          `json:"batch_number"`
	Date         time.Time       `json:"date"`
	CoffeeType   string          `json:"coffee_type"`
	Kilograms    decimal.Decimal `json:"kilograms"`
	Bags         int             `json:"bags"`
	SupplierName string          `json:"supplier_name"`
	Status       string          `json:"status"`
}

// Assessment is a quality evaluation from the assessment ledger. It points
// at a purchase record through SourceRecordID when the precise link was
// captured, otherwise only through BatchNumber.
type Assessment struct {
	ID             string           `json:"id"`
	SourceRecordID string           `json:"source_record_id"`
	BatchNumber    string           `json:"batch_number"`
	Status         string           `json:"status"`
	DateAssessed   string           `json:"date_assessed"`
	AssessedBy     string           `json:"assessed_by"`
	SuggestedPrice decimal.Decimal  `json:"suggested_price"`
	FinalPrice     *decimal.Decimal `json:"final_price"`
}

// FinanceTransaction is a cash-ledger movement whose Reference is expected
// to equal either a purchase record id or its batch number.
type FinanceTransaction struct {
	ID              string          `json:"id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	Reference       string          `json:"reference"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FinanceState classifies the payment coverage of one record.
type FinanceState string

const (
	FinanceMissing   FinanceState = "missing"
	FinancePending   FinanceState = "pending"
	FinanceConfirmed FinanceState = "confirmed"
)

// ReconciledRow joins one purchase record with its best-match assessment
// and all matched finance transactions. Rows are rebuilt from source data
// on every report run and never mutated in place.
type ReconciledRow struct {
	Record        PurchaseRecord       `json:"record"`
	Assessment    *Assessment          `json:"assessment"`
	Transactions  []FinanceTransaction `json:"transactions"`
	PaidTotal     decimal.Decimal      `json:"paid_total"`
	ConfirmedPaid decimal.Decimal      `json:"confirmed_paid"`
	HasAssessment bool                 `json:"has_assessment"`
	FinanceState  FinanceState         `json:"finance_state"`
	IsBalanced    bool                 `json:"is_balanced"`
}
