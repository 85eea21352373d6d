package main

import (
	"fmt"
	"log"

	"organizer/database"
	"organizer/internal/config"
	"organizer/internal/server"
)

func main() {
	srv, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	srv.JanitorService.StartCleanCycle()

	cfg, err := config.LoadConfiguration("organizer.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer database.CloseDatabase(db)

	app := server.NewApp(srv, cfg)
	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
