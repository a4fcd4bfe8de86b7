package balancing

import (
	"fmt"
	"math"

	"github.com/kahawa/coffee-balancing/entity"
)

// Summarize computes the aggregate statistics over an already filtered row
// set. The three partitions (assessment, finance state, balance) each sum
// to the row count.
func Summarize(rows []entity.ReconciledRow) entity.Summary {
	s := entity.Summary{TotalRows: len(rows)}

	for _, row := range rows {
		s.TotalKilograms = s.TotalKilograms.Add(row.Record.Kilograms)
		s.TotalBags += row.Record.Bags
		s.TotalPaid = s.TotalPaid.Add(row.PaidTotal)
		s.TotalConfirmedPaid = s.TotalConfirmedPaid.Add(row.ConfirmedPaid)

		if row.HasAssessment {
			s.AssessedCount++
		} else {
			s.NotAssessedCount++
		}

		switch row.FinanceState {
		case entity.FinanceMissing:
			s.FinanceMissingCount++
		case entity.FinancePending:
			s.FinancePendingCount++
		case entity.FinanceConfirmed:
			s.FinanceConfirmedCount++
		}

		if row.IsBalanced {
			s.BalancedCount++
		} else {
			s.UnbalancedCount++
		}
	}

	s.FlowHealth = flowHealth(s)
	return s
}

// flowHealth blends assessment coverage and finance coverage into one
// 0-100 score. The divisor is floored at 1 so an empty set scores 0
// instead of dividing by zero.
func flowHealth(s entity.Summary) int {
	total := s.TotalRows
	if total < 1 {
		total = 1
	}

	assessedShare := float64(s.AssessedCount) / float64(total)
	financedShare := float64(s.TotalRows-s.FinanceMissingCount) / float64(total)
	return int(math.Round((assessedShare + financedShare) / 2 * 100))
}

// PercentLabel formats n/d as a rounded percentage, with "0%" for a zero
// denominator.
func PercentLabel(n, d int) string {
	if d == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(n)/float64(d)*100)))
}
