package balancing

import (
	"context"

	"github.com/labstack/gommon/log"

	"github.com/kahawa/coffee-balancing/consts"
	"github.com/kahawa/coffee-balancing/entity"
)

// sourceData holds the three collections one report run reads. A run can
// legitimately end with partial assessments/transactions when a chunk pass
// failed part-way; the rows built from what is missing simply show up as
// unassessed or finance-missing.
type sourceData struct {
	records      []entity.PurchaseRecord
	assessments  []entity.Assessment
	transactions []entity.FinanceTransaction
}

func (u *balancingUsecase) fetchSources(ctx context.Context, rng entity.DateRange) (sourceData, []entity.ReportError, error) {
	var data sourceData
	var loadErrs []entity.ReportError

	records, err := u.ds.GetPurchaseRecordsByDateRange(ctx, rng)
	if err != nil {
		log.Errorf("[Fetch] Purchase record fetch failed: %v", err)
		return data, loadErrs, err
	}
	data.records = records

	if len(records) == 0 {
		log.Infof("[Fetch] No purchase records in range, skipping lookups")
		return data, loadErrs, nil
	}

	ids, batchNumbers := collectKeys(records)
	log.Infof("[Fetch] %d records in range (%d ids, %d batch numbers)", len(records), len(ids), len(batchNumbers))

	data.assessments, loadErrs = u.fetchAssessments(ctx, ids, batchNumbers, loadErrs)
	data.transactions, loadErrs = u.fetchTransactions(ctx, ids, batchNumbers, loadErrs)

	return data, loadErrs, nil
}

// fetchAssessments runs the id pass then the batch pass, merging with
// first-occurrence-wins dedup by assessment id. A failed chunk aborts only
// the rest of its own pass.
func (u *balancingUsecase) fetchAssessments(ctx context.Context, ids, batchNumbers []string, loadErrs []entity.ReportError) ([]entity.Assessment, []entity.ReportError) {
	var merged []entity.Assessment
	seen := make(map[string]bool)

	for _, chunk := range chunkKeys(ids, u.chunkSize) {
		res, err := u.ds.GetAssessmentsBySourceRecordIDs(ctx, chunk)
		if err != nil {
			log.Errorf("[Fetch] Assessment id pass aborted: %v", err)
			loadErrs = append(loadErrs, u.classify(err, "assessment lookup by record id"))
			break
		}
		merged = mergeAssessments(merged, res, seen)
	}

	for _, chunk := range chunkKeys(batchNumbers, u.chunkSize) {
		res, err := u.ds.GetAssessmentsByBatchNumbers(ctx, chunk)
		if err != nil {
			log.Errorf("[Fetch] Assessment batch pass aborted: %v", err)
			loadErrs = append(loadErrs, u.classify(err, "assessment lookup by batch number"))
			break
		}
		merged = mergeAssessments(merged, res, seen)
	}

	return merged, loadErrs
}

func (u *balancingUsecase) fetchTransactions(ctx context.Context, ids, batchNumbers []string, loadErrs []entity.ReportError) ([]entity.FinanceTransaction, []entity.ReportError) {
	var merged []entity.FinanceTransaction
	seen := make(map[string]bool)

	passes := [][]string{ids, batchNumbers}
	labels := []string{"record id", "batch number"}

	for i, keys := range passes {
		for _, chunk := range chunkKeys(keys, u.chunkSize) {
			res, err := u.ds.GetFinanceTransactionsByReferences(ctx, chunk, consts.PurchasePaymentTypes)
			if err != nil {
				log.Errorf("[Fetch] Transaction %s pass aborted: %v", labels[i], err)
				loadErrs = append(loadErrs, u.classify(err, "finance transaction lookup by "+labels[i]))
				break
			}
			for _, trx := range res {
				if seen[trx.ID] {
					continue
				}
				seen[trx.ID] = true
				merged = append(merged, trx)
			}
		}
	}

	return merged, loadErrs
}

func mergeAssessments(merged, incoming []entity.Assessment, seen map[string]bool) []entity.Assessment {
	for _, a := range incoming {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		merged = append(merged, a)
	}
	return merged
}

// collectKeys returns the distinct record ids and distinct non-empty batch
// numbers, in first-seen order.
func collectKeys(records []entity.PurchaseRecord) (ids, batchNumbers []string) {
	seenID := make(map[string]bool)
	seenBatch := make(map[string]bool)

	for _, r := range records {
		if !seenID[r.ID] {
			seenID[r.ID] = true
			ids = append(ids, r.ID)
		}
		if r.BatchNumber != "" && !seenBatch[r.BatchNumber] {
			seenBatch[r.BatchNumber] = true
			batchNumbers = append(batchNumbers, r.BatchNumber)
		}
	}
	return ids, batchNumbers
}

func chunkKeys(keys []string, size int) [][]string {
	if size <= 0 {
		size = consts.DefaultChunkSize
	}

	var chunks [][]string
	for start := 0; start < len(keys); start += size {
		end := start + size
		if end > len(keys) {
			end = len(keys)
		}
		chunks = append(chunks, keys[start:end])
	}
	return chunks
}
