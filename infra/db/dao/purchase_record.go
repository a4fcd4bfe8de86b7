package dao

import (
	"context"
	"fmt"

	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/db/model"
)

func (d *dao) GetPurchaseRecordsByDateRange(ctx context.Context, rng entity.DateRange) ([]entity.PurchaseRecord, error) {
	var rows []model.PurchaseRecord
	if err := d.db.
		Where("date >= ? AND date <= ?", rng.From, rng.To).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch purchase records: %w", err)
	}

	records := make([]entity.PurchaseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.PurchaseRecord{
			ID:           row.ID,
			BatchNumber:  row.BatchNumber,
			Date:         row.Date,
			CoffeeType:   row.CoffeeType,
			Kilograms:    row.Kilograms,
			Bags:         row.Bags,
			SupplierName: row.SupplierName,
			Status:       row.Status,
		})
	}
	return records, nil
}
