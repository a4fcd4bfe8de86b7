package balancing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kahawa/coffee-balancing/consts"
	"github.com/kahawa/coffee-balancing/entity"
)

// Reconcile joins every purchase record with at most one assessment and
// all matching finance transactions, then classifies each row. Pure: the
// same inputs always yield the same rows.
//
// Assessment matching prefers the precise source_record_id link and falls
// back to batch number only when no id link exists. Batch numbers can be
// reused across re-batched records, so the fallback is a best-effort
// "probably this one" rather than a guaranteed join.
//
// Transaction matching is either/or by convention: all payments for one
// record are posted under one consistent reference value, so an id match
// suppresses batch-referenced transactions entirely and vice versa.
func Reconcile(records []entity.PurchaseRecord, assessments []entity.Assessment, transactions []entity.FinanceTransaction) []entity.ReconciledRow {
	byID, byBatch := buildAssessmentIndex(assessments)
	byReference := buildTransactionIndex(transactions)

	rows := make([]entity.ReconciledRow, 0, len(records))
	for _, record := range records {
		assessment := lookupAssessment(record, byID, byBatch)
		matched := lookupTransactions(record, byReference)
		rows = append(rows, classifyRow(record, assessment, matched))
	}
	return rows
}

// buildAssessmentIndex sorts all assessments once, most recent first, and
// keeps the first entry seen per key. Ties on date_assessed keep the
// earlier position in the sorted order.
func buildAssessmentIndex(assessments []entity.Assessment) (byID, byBatch map[string]*entity.Assessment) {
	sorted := make([]entity.Assessment, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateAssessed > sorted[j].DateAssessed
	})

	byID = make(map[string]*entity.Assessment)
	byBatch = make(map[string]*entity.Assessment)
	for i := range sorted {
		a := &sorted[i]
		if a.SourceRecordID != "" {
			if _, ok := byID[a.SourceRecordID]; !ok {
				byID[a.SourceRecordID] = a
			}
		}
		if a.BatchNumber != "" {
			if _, ok := byBatch[a.BatchNumber]; !ok {
				byBatch[a.BatchNumber] = a
			}
		}
	}
	return byID, byBatch
}

func buildTransactionIndex(transactions []entity.FinanceTransaction) map[string][]entity.FinanceTransaction {
	byReference := make(map[string][]entity.FinanceTransaction)
	for _, trx := range transactions {
		byReference[trx.Reference] = append(byReference[trx.Reference], trx)
	}
	return byReference
}

func lookupAssessment(record entity.PurchaseRecord, byID, byBatch map[string]*entity.Assessment) *entity.Assessment {
	if a, ok := byID[record.ID]; ok {
		return a
	}
	if record.BatchNumber != "" {
		if a, ok := byBatch[record.BatchNumber]; ok {
			return a
		}
	}
	return nil
}

func lookupTransactions(record entity.PurchaseRecord, byReference map[string][]entity.FinanceTransaction) []entity.FinanceTransaction {
	if matched := byReference[record.ID]; len(matched) > 0 {
		return matched
	}
	if record.BatchNumber != "" {
		if matched := byReference[record.BatchNumber]; len(matched) > 0 {
			return matched
		}
	}
	return nil
}

func classifyRow(record entity.PurchaseRecord, assessment *entity.Assessment, matched []entity.FinanceTransaction) entity.ReconciledRow {
	paidTotal := decimal.Zero
	confirmedPaid := decimal.Zero
	financeState := entity.FinanceMissing

	if len(matched) > 0 {
		financeState = entity.FinancePending
		for _, trx := range matched {
			paidTotal = paidTotal.Add(trx.Amount)
			if trx.Status == consts.TransactionStatusConfirmed {
				confirmedPaid = confirmedPaid.Add(trx.Amount)
				financeState = entity.FinanceConfirmed
			}
		}
	}

	hasAssessment := assessment != nil

	return entity.ReconciledRow{
		Record:        record,
		Assessment:    assessment,
		Transactions:  matched,
		PaidTotal:     paidTotal,
		ConfirmedPaid: confirmedPaid,
		HasAssessment: hasAssessment,
		FinanceState:  financeState,
		IsBalanced:    hasAssessment && financeState != entity.FinanceMissing,
	}
}
