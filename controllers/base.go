package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"

	"github.com/kahawa/coffee-balancing/infra/db/model"
	"github.com/kahawa/coffee-balancing/middlewares"
)

// DBConfig is validated before any connection attempt; a missing or
// malformed value is an environment error, not a connection error.
type DBConfig struct {
	Host     string `validate:"required,hostname|ip"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Name     string `validate:"required"`
	Password string `validate:"required"`
}

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(dbHost, dbPort, dbUser, dbName, dbPassword string) error {
	cfg := DBConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Name:     dbName,
		Password: dbPassword,
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid database configuration (check DB_* environment variables): %w", err)
	}

	dbURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.Password)

	var err error
	a.DB, err = gorm.Open("postgres", dbURI)
	if err != nil {
		return fmt.Errorf("cannot connect to database %s: %w", cfg.Name, err)
	}
	log.Infof("[App] Connected to database %s", cfg.Name)

	a.DB.AutoMigrate(
		&model.PurchaseRecord{},
		&model.Assessment{},
		&model.FinanceTransaction{},
		&model.Session{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	a.Router.Use(middlewares.SessionTokenMiddleware)
	registerBalancingRoutes(a.Router, a.DB)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("[App] Server starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}
