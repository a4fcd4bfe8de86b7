package controllers

import (
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"

	"github.com/kahawa/coffee-balancing/handler"
	"github.com/kahawa/coffee-balancing/infra/db/dao"
	balancingUsecase "github.com/kahawa/coffee-balancing/usecase/balancing"
)

func registerBalancingRoutes(router *mux.Router, db *gorm.DB) {
	uc := balancingUsecase.NewBalancingUsecase(dao.NewDaoMethod(db))
	h := handler.NewBalancingHandler(uc)

	router.HandleFunc("/balancing/report", h.GetReport).Methods("GET")
	router.HandleFunc("/balancing/export", h.ExportDetail).Methods("GET")
	router.HandleFunc("/balancing/export_summary", h.ExportSummary).Methods("GET")
	router.HandleFunc("/balancing/export_xlsx", h.ExportDetailXLSX).Methods("GET")
	router.HandleFunc("/balancing/errors", h.GetErrors).Methods("GET")
}
