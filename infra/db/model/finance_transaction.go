package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FinanceTransaction struct {
	ID              string          `gorm:"primary_key;size:64" json:"id"`
	TransactionType string          `gorm:"size:64;index" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	BalanceAfter    decimal.Decimal `gorm:"type:numeric(14,2)" json:"balance_after"`
	Reference       string          `gorm:"size:64;index" json:"reference"`
	Status          string          `gorm:"size:20" json:"status"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}
