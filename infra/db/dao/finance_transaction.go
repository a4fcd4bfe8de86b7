package dao

import (
	"context"
	"fmt"

	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/db/model"
)

func (d *dao) GetFinanceTransactionsByReferences(ctx context.Context, references []string, transactionTypes []string) ([]entity.FinanceTransaction, error) {
	if len(references) == 0 {
		return nil, nil
	}

	var rows []model.FinanceTransaction
	if err := d.db.
		Where("transaction_type IN (?)", transactionTypes).
		Where("reference IN (?)", references).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch finance transactions: %w", err)
	}

	transactions := make([]entity.FinanceTransaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, entity.FinanceTransaction{
			ID:              row.ID,
			TransactionType: row.TransactionType,
			Amount:          row.Amount,
			BalanceAfter:    row.BalanceAfter,
			Reference:       row.Reference,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
		})
	}
	return transactions, nil
}
