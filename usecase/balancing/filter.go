package balancing

import (
	"strings"

	"github.com/kahawa/coffee-balancing/entity"
)

// ApplyRowFilter keeps the rows matching every active predicate. Pure over
// the in-memory row set; changing a filter never re-fetches.
func ApplyRowFilter(rows []entity.ReconciledRow, f entity.RowFilter) []entity.ReconciledRow {
	out := make([]entity.ReconciledRow, 0, len(rows))
	for _, row := range rows {
		if matchesFilter(row, f) {
			out = append(out, row)
		}
	}
	return out
}

func matchesFilter(row entity.ReconciledRow, f entity.RowFilter) bool {
	switch f.Assessment {
	case entity.AssessmentFilterAssessed:
		if !row.HasAssessment {
			return false
		}
	case entity.AssessmentFilterNotAssessed:
		if row.HasAssessment {
			return false
		}
	}

	switch f.Finance {
	case entity.FinanceFilterMissing:
		if row.FinanceState != entity.FinanceMissing {
			return false
		}
	case entity.FinanceFilterPending:
		if row.FinanceState != entity.FinancePending {
			return false
		}
	case entity.FinanceFilterConfirmed:
		if row.FinanceState != entity.FinanceConfirmed {
			return false
		}
	}

	switch f.Balance {
	case entity.BalanceFilterBalanced:
		if !row.IsBalanced {
			return false
		}
	case entity.BalanceFilterUnbalanced:
		if row.IsBalanced {
			return false
		}
	}

	if f.CoffeeType != "" && row.Record.CoffeeType != f.CoffeeType {
		return false
	}
	if f.RecordStatus != "" && row.Record.Status != f.RecordStatus {
		return false
	}

	if f.Search != "" {
		haystack := strings.ToLower(row.Record.BatchNumber + row.Record.SupplierName + row.Record.CoffeeType + row.Record.Status)
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}

	return true
}
