package dao

import (
	"context"
	"fmt"

	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/db/model"
)

func (d *dao) GetAssessmentsBySourceRecordIDs(ctx context.Context, ids []string) ([]entity.Assessment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []model.Assessment
	if err := d.db.
		Where("source_record_id IN (?)", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch assessments by source record id: %w", err)
	}
	return toAssessmentEntities(rows), nil
}

func (d *dao) GetAssessmentsByBatchNumbers(ctx context.Context, batchNumbers []string) ([]entity.Assessment, error) {
	if len(batchNumbers) == 0 {
		return nil, nil
	}

	var rows []model.Assessment
	if err := d.db.
		Where("batch_number IN (?)", batchNumbers).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch assessments by batch number: %w", err)
	}
	return toAssessmentEntities(rows), nil
}

func toAssessmentEntities(rows []model.Assessment) []entity.Assessment {
	assessments := make([]entity.Assessment, 0, len(rows))
	for _, row := range rows {
		sourceRecordID := ""
		if row.SourceRecordID != nil {
			sourceRecordID = *row.SourceRecordID
		}
		assessments = append(assessments, entity.Assessment{
			ID:             row.ID,
			SourceRecordID: sourceRecordID,
			BatchNumber:    row.BatchNumber,
			Status:         row.Status,
			DateAssessed:   row.DateAssessed,
			AssessedBy:     row.AssessedBy,
			SuggestedPrice: row.SuggestedPrice,
			FinalPrice:     row.FinalPrice,
		})
	}
	return assessments
}
