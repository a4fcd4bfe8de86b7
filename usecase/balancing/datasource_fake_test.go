package balancing_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kahawa/coffee-balancing/entity"
)

// fakeDataSource serves canned collections and records every call so
// tests can assert on chunking, short-circuits and pass scoping.
type fakeDataSource struct {
	user    string
	userErr error

	records    []entity.PurchaseRecord
	recordsErr error

	assessments      []entity.Assessment
	assessByIDErr    error
	assessByBatchErr error

	transactions    []entity.FinanceTransaction
	transactionsErr error

	calls []string
}

func (f *fakeDataSource) CurrentUser(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "current_user")
	if f.userErr != nil {
		return "", f.userErr
	}
	if f.user == "" {
		return "clerk", nil
	}
	return f.user, nil
}

func (f *fakeDataSource) GetPurchaseRecordsByDateRange(ctx context.Context, rng entity.DateRange) ([]entity.PurchaseRecord, error) {
	f.calls = append(f.calls, "records")
	return f.records, f.recordsErr
}

func (f *fakeDataSource) GetAssessmentsBySourceRecordIDs(ctx context.Context, ids []string) ([]entity.Assessment, error) {
	f.calls = append(f.calls, "assessments_by_id")
	if f.assessByIDErr != nil {
		return nil, f.assessByIDErr
	}
	var out []entity.Assessment
	for _, a := range f.assessments {
		if containsKey(ids, a.SourceRecordID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeDataSource) GetAssessmentsByBatchNumbers(ctx context.Context, batchNumbers []string) ([]entity.Assessment, error) {
	f.calls = append(f.calls, "assessments_by_batch")
	if f.assessByBatchErr != nil {
		return nil, f.assessByBatchErr
	}
	var out []entity.Assessment
	for _, a := range f.assessments {
		if containsKey(batchNumbers, a.BatchNumber) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeDataSource) GetFinanceTransactionsByReferences(ctx context.Context, references []string, transactionTypes []string) ([]entity.FinanceTransaction, error) {
	f.calls = append(f.calls, "transactions")
	if f.transactionsErr != nil {
		return nil, f.transactionsErr
	}
	var out []entity.FinanceTransaction
	for _, trx := range f.transactions {
		if containsKey(references, trx.Reference) && containsKey(transactionTypes, trx.TransactionType) {
			out = append(out, trx)
		}
	}
	return out, nil
}

func (f *fakeDataSource) callCount(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func record(id, batch string) entity.PurchaseRecord {
	return entity.PurchaseRecord{
		ID:           id,
		BatchNumber:  batch,
		Date:         date("2024-03-05"),
		CoffeeType:   "arabica",
		Kilograms:    dec("120.5"),
		Bags:         3,
		SupplierName: "Kamau",
		Status:       "received",
	}
}
