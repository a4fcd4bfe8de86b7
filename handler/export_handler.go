package handler

import (
	"context"
	"net/http"

	"github.com/kahawa/coffee-balancing/entity"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (h *BalancingHandler) ExportDetail(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, contentTypeCSV, h.Usecase.ExportDetailCSV)
}

func (h *BalancingHandler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, contentTypeCSV, h.Usecase.ExportSummaryCSV)
}

func (h *BalancingHandler) ExportDetailXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, contentTypeXLSX, h.Usecase.ExportDetailXLSX)
}

func (h *BalancingHandler) export(
	w http.ResponseWriter,
	r *http.Request,
	contentType string,
	exportFn func(ctx context.Context, req entity.ReportRequest) (string, []byte, error),
) {
	req, err := parseReportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename, data, err := exportFn(r.Context(), req)
	if err != nil {
		writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
