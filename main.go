package main

import (
	"os"

	"github.com/labstack/gommon/log"

	"github.com/kahawa/coffee-balancing/controllers"
)

func main() {
	app := controllers.App{}
	if err := app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"),
	); err != nil {
		log.Fatalf("[App] %v", err)
	}

	app.RunServer()
}
