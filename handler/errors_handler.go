package handler

import (
	"encoding/json"
	"net/http"
)

// GetErrors returns the recent classified report errors, newest first.
func (h *BalancingHandler) GetErrors(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   h.Usecase.RecentErrors(),
	})
}
