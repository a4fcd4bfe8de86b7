package balancing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/kahawa/coffee-balancing/consts"
	"github.com/kahawa/coffee-balancing/entity"
)

var detailHeader = []string{
	"Date", "Supplier", "Coffee Type", "Status", "Kilograms", "Bags",
	"Batch Number", "Assessment Status", "Assessment Date", "Assessed By",
	"Suggested Price", "Final Price", "Finance State", "Paid Total",
	"Confirmed Paid", "Transactions", "Balance", "Record ID",
}

// ExportDetailCSV writes one line per filtered reconciled row, in the
// fixed column order of detailHeader.
func (u *balancingUsecase) ExportDetailCSV(ctx context.Context, req entity.ReportRequest) (filename string, data []byte, err error) {
	defer u.recoverLoad(&err)

	rng, filtered, failure := u.exportRows(ctx, req)
	if failure != nil {
		return "", nil, failure
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(detailHeader); err != nil {
		return "", nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range filtered {
		if err := w.Write(detailRecord(row)); err != nil {
			return "", nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("failed to flush export: %w", err)
	}

	log.Infof("[Export] Detail CSV: %d rows", len(filtered))
	return u.exportName("balancing_detail", rng, "csv"), buf.Bytes(), nil
}

// ExportSummaryCSV writes the aggregate statistics as label/value/detail
// triples, followed by a static description of the matching rules. Meant
// as the audit trail accompanying the detail export.
func (u *balancingUsecase) ExportSummaryCSV(ctx context.Context, req entity.ReportRequest) (filename string, data []byte, err error) {
	defer u.recoverLoad(&err)

	rng, filtered, failure := u.exportRows(ctx, req)
	if failure != nil {
		return "", nil, failure
	}
	s := Summarize(filtered)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	triples := [][]string{
		{"Label", "Value", "Detail"},
		{"Report period", rangeLabel(rng), ""},
		{"Active filters", filterDescription(req.Filter), ""},
		{"Total records", fmt.Sprint(s.TotalRows), ""},
		{"Total kilograms", s.TotalKilograms.String(), ""},
		{"Total bags", fmt.Sprint(s.TotalBags), ""},
		{"Total paid", s.TotalPaid.String(), "all matched payment transactions"},
		{"Confirmed paid", s.TotalConfirmedPaid.String(), "confirmed transactions only"},
		{"Assessed", fmt.Sprint(s.AssessedCount), PercentLabel(s.AssessedCount, s.TotalRows) + " of records"},
		{"Not assessed", fmt.Sprint(s.NotAssessedCount), ""},
		{"Finance missing", fmt.Sprint(s.FinanceMissingCount), "no payment transaction found"},
		{"Finance pending", fmt.Sprint(s.FinancePendingCount), ""},
		{"Finance confirmed", fmt.Sprint(s.FinanceConfirmedCount), ""},
		{"Balanced", fmt.Sprint(s.BalancedCount), "assessed and at least one payment"},
		{"Unbalanced", fmt.Sprint(s.UnbalancedCount), ""},
		{"Flow health", fmt.Sprintf("%d%%", s.FlowHealth), "assessment and finance coverage, averaged"},
		{"Payment types", strings.Join(consts.PurchasePaymentTypes, "; "), "cash-ledger types counted as purchase payments"},
		{"Matching rules", "record id first, batch number fallback", "payments use one reference value per record"},
	}
	if err := w.WriteAll(triples); err != nil {
		return "", nil, fmt.Errorf("failed to write summary: %w", err)
	}

	return u.exportName("balancing_summary", rng, "csv"), buf.Bytes(), nil
}

// exportRows runs the pipeline and applies the row filter. An empty
// filtered set is a validation error, not an empty file.
func (u *balancingUsecase) exportRows(ctx context.Context, req entity.ReportRequest) (entity.DateRange, []entity.ReconciledRow, *ReportFailure) {
	rng, rows, _, failure := u.runPipeline(ctx, req)
	if failure != nil {
		return entity.DateRange{}, nil, failure
	}

	filtered := ApplyRowFilter(rows, req.Filter)
	if len(filtered) == 0 {
		failure := validationFailure("no rows to export for the selected range and filters", u.now())
		u.errlog.Append(failure.Err)
		return entity.DateRange{}, nil, failure
	}
	return rng, filtered, nil
}

func detailRecord(row entity.ReconciledRow) []string {
	assessStatus, assessDate, assessedBy, suggested, final := "", "", "", "", ""
	if row.Assessment != nil {
		assessStatus = row.Assessment.Status
		assessDate = row.Assessment.DateAssessed
		assessedBy = row.Assessment.AssessedBy
		suggested = row.Assessment.SuggestedPrice.String()
		if row.Assessment.FinalPrice != nil {
			final = row.Assessment.FinalPrice.String()
		}
	}

	balance := "Unbalanced"
	if row.IsBalanced {
		balance = "Balanced"
	}

	return []string{
		row.Record.Date.Format(consts.DateLayout),
		row.Record.SupplierName,
		row.Record.CoffeeType,
		row.Record.Status,
		row.Record.Kilograms.String(),
		fmt.Sprint(row.Record.Bags),
		row.Record.BatchNumber,
		assessStatus,
		assessDate,
		assessedBy,
		suggested,
		final,
		string(row.FinanceState),
		row.PaidTotal.String(),
		row.ConfirmedPaid.String(),
		fmt.Sprint(len(row.Transactions)),
		balance,
		row.Record.ID,
	}
}

func filterDescription(f entity.RowFilter) string {
	var parts []string
	if f.Assessment != "" && f.Assessment != entity.AssessmentFilterAll {
		parts = append(parts, "assessment="+string(f.Assessment))
	}
	if f.Finance != "" && f.Finance != entity.FinanceFilterAll {
		parts = append(parts, "finance="+string(f.Finance))
	}
	if f.Balance != "" && f.Balance != entity.BalanceFilterAll {
		parts = append(parts, "balance="+string(f.Balance))
	}
	if f.CoffeeType != "" {
		parts = append(parts, "coffee_type="+f.CoffeeType)
	}
	if f.RecordStatus != "" {
		parts = append(parts, "status="+f.RecordStatus)
	}
	if f.Search != "" {
		parts = append(parts, "search="+f.Search)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "; ")
}

func rangeLabel(rng entity.DateRange) string {
	return rng.From.Format(consts.DateLayout) + " to " + rng.To.Format(consts.DateLayout)
}

// exportName embeds the active range and a generation timestamp (colons
// replaced, filesystem safe) so repeated exports never collide.
func (u *balancingUsecase) exportName(prefix string, rng entity.DateRange, ext string) string {
	ts := u.now().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("%s_%s_%s_%s.%s",
		prefix,
		rng.From.Format(consts.DateLayout),
		rng.To.Format(consts.DateLayout),
		ts,
		ext,
	)
}
