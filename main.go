package main

import (
	"fmt"
	"log"

	"github.com/Minarsribabu/Eco-Cred/internal/config"
	"github.com/Minarsribabu/Eco-Cred/internal/database"
	"github.com/Minarsribabu/Eco-Cred/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// optional .env for local development
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// seed reference data (emission factors, tips)
	if err := database.Seed(db); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
