package dao

import (
	"context"

	"github.com/kahawa/coffee-balancing/entity"

	"github.com/jinzhu/gorm"
)

// DaoMethod is the read contract the balancing pipeline consumes. All
// IN-list lookups receive pre-chunked key slices; chunking policy lives
// with the caller.
type DaoMethod interface {
	GetPurchaseRecordsByDateRange(ctx context.Context, rng entity.DateRange) ([]entity.PurchaseRecord, error)
	GetAssessmentsBySourceRecordIDs(ctx context.Context, ids []string) ([]entity.Assessment, error)
	GetAssessmentsByBatchNumbers(ctx context.Context, batchNumbers []string) ([]entity.Assessment, error)
	GetFinanceTransactionsByReferences(ctx context.Context, references []string, transactionTypes []string) ([]entity.FinanceTransaction, error)
	CurrentUser(ctx context.Context) (string, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
