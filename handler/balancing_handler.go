package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/kahawa/coffee-balancing/entity"
	usecase "github.com/kahawa/coffee-balancing/usecase/balancing"
)

var validate = validator.New()

// GetReport runs the balancing pipeline for the query's range and filters
// and returns one page of reconciled rows plus the summary.
func (h *BalancingHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.Usecase.BuildReport(r.Context(), req)
	if err != nil {
		writeFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   report,
	})
}

func parseReportRequest(r *http.Request) (entity.ReportRequest, error) {
	q := r.URL.Query()

	req := entity.ReportRequest{
		Preset: q.Get("preset"),
		From:   q.Get("from"),
		To:     q.Get("to"),
		Filter: entity.RowFilter{
			Assessment:   entity.AssessmentFilter(q.Get("assessment")),
			Finance:      entity.FinanceFilter(q.Get("finance")),
			Balance:      entity.BalanceFilter(q.Get("balance")),
			CoffeeType:   q.Get("coffee_type"),
			RecordStatus: q.Get("record_status"),
			Search:       q.Get("search"),
		},
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.New("page must be an integer")
		}
		req.Page = page
	}
	if v := q.Get("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.New("page_size must be an integer")
		}
		req.PageSize = size
	}

	if err := validate.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

// writeFailure maps a classified pipeline failure onto an HTTP status.
func writeFailure(w http.ResponseWriter, err error) {
	var failure *usecase.ReportFailure
	if !errors.As(err, &failure) {
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	status := http.StatusInternalServerError
	switch failure.Err.Kind {
	case entity.ErrorKindValidation:
		status = http.StatusBadRequest
	case entity.ErrorKindAuth:
		status = http.StatusUnauthorized
	case entity.ErrorKindRls:
		status = http.StatusForbidden
	case entity.ErrorKindNetwork, entity.ErrorKindService:
		status = http.StatusBadGateway
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: failure.Err.Message,
		Data:    failure.Err,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: message,
	})
}
