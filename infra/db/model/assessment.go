package model

import "github.com/shopspring/decimal"

type Assessment struct {
	ID             string           `gorm:"primary_key;size:64" json:"id"`
	SourceRecordID *string          `gorm:"size:64;index" json:"source_record_id"`
	BatchNumber    string           `gorm:"size:64;index" json:"batch_number"`
	Status         string           `gorm:"size:40" json:"status"`
	DateAssessed   string           `gorm:"size:40" json:"date_assessed"`
	AssessedBy     string           `gorm:"size:120" json:"assessed_by"`
	SuggestedPrice decimal.Decimal  `gorm:"type:numeric(14,2)" json:"suggested_price"`
	FinalPrice     *decimal.Decimal `gorm:"type:numeric(14,2)" json:"final_price"`
}
