package balancing

import (
	"context"
	"time"

	"github.com/kahawa/coffee-balancing/consts"
	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/errlog"
)

// DataSource is the capability object the pipeline reads through. The
// production implementation is infra/db/dao; tests inject a fake.
type DataSource interface {
	GetPurchaseRecordsByDateRange(ctx context.Context, rng entity.DateRange) ([]entity.PurchaseRecord, error)
	GetAssessmentsBySourceRecordIDs(ctx context.Context, ids []string) ([]entity.Assessment, error)
	GetAssessmentsByBatchNumbers(ctx context.Context, batchNumbers []string) ([]entity.Assessment, error)
	GetFinanceTransactionsByReferences(ctx context.Context, references []string, transactionTypes []string) ([]entity.FinanceTransaction, error)
	CurrentUser(ctx context.Context) (string, error)
}

type BalancingUsecase interface {
	BuildReport(ctx context.Context, req entity.ReportRequest) (*entity.Report, error)
	ExportDetailCSV(ctx context.Context, req entity.ReportRequest) (string, []byte, error)
	ExportSummaryCSV(ctx context.Context, req entity.ReportRequest) (string, []byte, error)
	ExportDetailXLSX(ctx context.Context, req entity.ReportRequest) (string, []byte, error)
	RecentErrors() []entity.ReportError
}

type balancingUsecase struct {
	ds        DataSource
	errlog    *errlog.Log
	chunkSize int
	now       func() time.Time
}

func NewBalancingUsecase(ds DataSource) BalancingUsecase {
	return &balancingUsecase{
		ds:        ds,
		errlog:    errlog.New(consts.ErrorLogCap),
		chunkSize: consts.DefaultChunkSize,
		now:       time.Now,
	}
}

func (u *balancingUsecase) RecentErrors() []entity.ReportError {
	return u.errlog.Recent()
}
