package main

import (
	"context"
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/storage"

	"github.com/shopspring/decimal"
)

func main() {
	// nutrient fields render as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	store := storage.NewGormStore(db)

	if n, err := services.NewFoodService(store).Seed(context.Background()); err != nil {
		log.Fatalf("seed food catalog: %v", err)
	} else if n > 0 {
		log.Printf("seeded %d catalog foods", n)
	}

	r := routes.SetupRouter(cfg, store)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
