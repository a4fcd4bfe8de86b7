package balancing

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/kahawa/coffee-balancing/entity"
)

// BuildReport runs the whole pipeline for one request: auth check, range
// resolution, chunked fetch, reconciliation, filtering, aggregation,
// pagination. Each call works on request-local state only, so overlapping
// report loads cannot clobber each other.
func (u *balancingUsecase) BuildReport(ctx context.Context, req entity.ReportRequest) (report *entity.Report, err error) {
	defer u.recoverLoad(&err)

	rng, rows, loadErrs, failure := u.runPipeline(ctx, req)
	if failure != nil {
		return nil, failure
	}

	filtered := ApplyRowFilter(rows, req.Filter)
	summary := Summarize(filtered)
	pageRows, page, totalPages := Paginate(filtered, req.Page, req.PageSize)

	log.Infof("[Report] Built report: %d rows in range, %d after filter, page %d/%d", len(rows), len(filtered), page, totalPages)

	return &entity.Report{
		Range:      rng,
		Rows:       pageRows,
		TotalRows:  len(filtered),
		Page:       page,
		PageSize:   normalizePageSize(req.PageSize),
		TotalPages: totalPages,
		Summary:    summary,
		Errors:     loadErrs,
	}, nil
}

// runPipeline performs the shared load steps up to reconciliation. The
// returned loadErrs are the non-fatal errors of this load (failed chunk
// passes); a non-nil failure means the load produced nothing usable.
func (u *balancingUsecase) runPipeline(ctx context.Context, req entity.ReportRequest) (entity.DateRange, []entity.ReconciledRow, []entity.ReportError, *ReportFailure) {
	if _, err := u.ds.CurrentUser(ctx); err != nil {
		log.Warnf("[Report] Auth check failed: %v", err)
		return entity.DateRange{}, nil, nil, &ReportFailure{Err: u.classify(err, "auth check")}
	}

	rng, err := ResolveRange(req.Preset, req.From, req.To, u.now())
	if err != nil {
		reportErr := entity.ReportError{
			Kind:       entity.ErrorKindValidation,
			Message:    err.Error(),
			Details:    fmt.Sprintf("preset=%s from=%s to=%s", req.Preset, req.From, req.To),
			Hint:       "fix the date range and retry",
			OccurredAt: u.now(),
		}
		u.errlog.Append(reportErr)
		return entity.DateRange{}, nil, nil, &ReportFailure{Err: reportErr}
	}

	data, loadErrs, err := u.fetchSources(ctx, rng)
	if err != nil {
		return entity.DateRange{}, nil, nil, &ReportFailure{Err: u.classify(err, "purchase record fetch")}
	}

	rows := Reconcile(data.records, data.assessments, data.transactions)
	return rng, rows, loadErrs, nil
}

// recoverLoad converts an unexpected panic during a load into an Unknown
// report error instead of taking the process down.
func (u *balancingUsecase) recoverLoad(err *error) {
	if r := recover(); r != nil {
		log.Errorf("[Report] Panic recovered during load: %v", r)
		*err = &ReportFailure{Err: u.classify(fmt.Errorf("unexpected failure: %v", r), "report load")}
	}
}
