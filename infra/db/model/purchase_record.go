package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseRecord struct {
	ID           string          `gorm:"primary_key;size:64" json:"id"`
	BatchNumber  string          `gorm:"size:64;index" json:"batch_number"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	CoffeeType   string          `gorm:"size:64" json:"coffee_type"`
	Kilograms    decimal.Decimal `gorm:"type:numeric(14,2)" json:"kilograms"`
	Bags         int             `gorm:"not null" json:"bags"`
	SupplierName string          `gorm:"size:120" json:"supplier_name"`
	Status       string          `gorm:"size:40" json:"status"`
}
