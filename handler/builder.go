package handler

import (
	usecase "github.com/kahawa/coffee-balancing/usecase/balancing"
)

type BalancingHandler struct {
	Usecase usecase.BalancingUsecase
}

func NewBalancingHandler(uc usecase.BalancingUsecase) *BalancingHandler {
	return &BalancingHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
