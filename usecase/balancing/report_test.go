package balancing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahawa/coffee-balancing/entity"
	"github.com/kahawa/coffee-balancing/infra/db/dao"
	balancing "github.com/kahawa/coffee-balancing/usecase/balancing"
)

func TestBuildReportHappyPath(t *testing.T) {
	ds := &fakeDataSource{
		records: []entity.PurchaseRecord{record("R1", "B1"), record("R2", "B2")},
		assessments: []entity.Assessment{
			{ID: "A1", SourceRecordID: "R1", BatchNumber: "B1", DateAssessed: "2024-03-05"},
		},
		transactions: []entity.FinanceTransaction{
			{ID: "T1", Reference: "R1", TransactionType: "coffee_purchase_payment", Amount: dec("800"), Status: "confirmed"},
		},
	}
	uc := balancing.NewBalancingUsecase(ds)

	report, err := uc.BuildReport(context.Background(), entity.ReportRequest{Preset: "monthly"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalRows)
	assert.Equal(t, 1, report.Summary.BalancedCount)
	assert.Equal(t, "800", report.Summary.TotalConfirmedPaid.String())
	assert.Empty(t, report.Errors)
}

func TestBuildReportAuthFailureAbortsLoad(t *testing.T) {
	ds := &fakeDataSource{
		userErr: dao.ErrNoSession,
		records: []entity.PurchaseRecord{record("R1", "B1")},
	}
	uc := balancing.NewBalancingUsecase(ds)

	_, err := uc.BuildReport(context.Background(), entity.ReportRequest{Preset: "daily"})
	require.Error(t, err)

	var failure *balancing.ReportFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, entity.ErrorKindAuth, failure.Err.Kind)
	assert.Zero(t, ds.callCount("records"), "no fetch after a failed auth check")
}

func TestBuildReportInvertedRangeIsValidationError(t *testing.T) {
	ds := &fakeDataSource{}
	uc := balancing.NewBalancingUsecase(ds)

	_, err := uc.BuildReport(context.Background(), entity.ReportRequest{
		Preset: "custom",
		From:   "2024-03-10",
		To:     "2024-03-01",
	})
	require.Error(t, err)

	var failure *balancing.ReportFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, entity.ErrorKindValidation, failure.Err.Kind)
	assert.Zero(t, ds.callCount("records"), "no fetch for an invalid range")
	assert.NotEmpty(t, uc.RecentErrors())
}

func TestBuildReportEmptyRangeShortCircuits(t *testing.T) {
	ds := &fakeDataSource{}
	uc := balancing.NewBalancingUsecase(ds)

	report, err := uc.BuildReport(context.Background(), entity.ReportRequest{Preset: "daily"})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalRows)
	assert.Equal(t, 0, report.Summary.FlowHealth)
	assert.Equal(t, 1, ds.callCount("records"))
	assert.Zero(t, ds.callCount("assessments_by_id"), "no lookups for an empty record set")
	assert.Zero(t, ds.callCount("assessments_by_batch"))
	assert.Zero(t, ds.callCount("transactions"))
}

func TestBuildReportFailedAssessmentPassKeepsPartialData(t *testing.T) {
	ds := &fakeDataSource{
		records: []entity.PurchaseRecord{record("R1", "B1")},
		assessments: []entity.Assessment{
			{ID: "A1", BatchNumber: "B1", DateAssessed: "2024-03-05"},
		},
		assessByIDErr: errors.New("pq: canceling statement due to statement timeout"),
		transactions: []entity.FinanceTransaction{
			{ID: "T1", Reference: "R1", TransactionType: "purchase_payment", Amount: dec("100"), Status: "pending"},
		},
	}
	uc := balancing.NewBalancingUsecase(ds)

	report, err := uc.BuildReport(context.Background(), entity.ReportRequest{Preset: "monthly"})
	require.NoError(t, err, "a failed chunk pass must not abort the load")

	require.Len(t, report.Errors, 1)
	assert.Equal(t, entity.ErrorKindService, report.Errors[0].Kind)

	// The batch pass still ran and found the assessment, and finance
	// fetching was not aborted.
	require.Equal(t, 1, report.TotalRows)
	assert.True(t, report.Rows[0].HasAssessment)
	assert.Equal(t, entity.FinancePending, report.Rows[0].FinanceState)
}

func TestBuildReportPurchaseFetchFailureIsFatal(t *testing.T) {
	ds := &fakeDataSource{
		recordsErr: errors.New("dial tcp 10.0.0.1:5432: connection refused"),
	}
	uc := balancing.NewBalancingUsecase(ds)

	_, err := uc.BuildReport(context.Background(), entity.ReportRequest{Preset: "daily"})
	require.Error(t, err)

	var failure *balancing.ReportFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, entity.ErrorKindNetwork, failure.Err.Kind)
}

func TestBuildReportFilterAppliedBeforeSummary(t *testing.T) {
	ds := &fakeDataSource{
		records: []entity.PurchaseRecord{record("R1", "B1"), record("R2", "B2")},
		assessments: []entity.Assessment{
			{ID: "A1", SourceRecordID: "R1", DateAssessed: "2024-03-05"},
		},
	}
	uc := balancing.NewBalancingUsecase(ds)

	report, err := uc.BuildReport(context.Background(), entity.ReportRequest{
		Preset: "monthly",
		Filter: entity.RowFilter{Assessment: entity.AssessmentFilterAssessed},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalRows)
	assert.Equal(t, 1, report.Summary.TotalRows)
	assert.Equal(t, 1, report.Summary.AssessedCount)
	assert.Equal(t, 0, report.Summary.NotAssessedCount)
}
