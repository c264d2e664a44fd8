package main

import (
	"context"
	"fmt"
	"os"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	catalog "auction-marketplace/internal/catalogService"
	"auction-marketplace/internal/repository"
	search "auction-marketplace/internal/searchService"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"

	"github.com/joho/godotenv"
	gorm_mysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	repo, err := setupStore()
	if err != nil {
		utils.Fatal("Failed to set up store", map[string]any{"error": err.Error()})
	}

	catalogSvc := catalog.NewCatalogService(repo)
	searchSvc := search.NewSearchService(repo)
	biddingSvc := bidding.NewBiddingService(repo)

	stopSweeper := startExpirySweeper(catalogSvc)
	defer stopSweeper()

	router := server.SetupRouter(catalogSvc, searchSvc, biddingSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupStore opens the relational store when DATABASE_DSN is configured and
// falls back to the in-memory repository otherwise.
func setupStore() (repository.CatalogDB, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		utils.Info("No DATABASE_DSN set, using in-memory store", nil)
		return repository.NewMemoryRepo(), nil
	}

	db, err := gorm.Open(gorm_mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	store := repository.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	utils.Info("Connected to relational store", nil)
	return store, nil
}

// startExpirySweeper periodically deactivates listings past their ending
// date. The returned func stops the sweeper. SWEEP_INTERVAL=0 disables it.
func startExpirySweeper(svc *catalog.CatalogService) func() {
	interval := time.Minute
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			utils.Warn("Invalid SWEEP_INTERVAL, using default", map[string]any{"value": raw, "default": interval.String()})
		} else {
			interval = parsed
		}
	}
	if interval <= 0 {
		utils.Info("Expiry sweeper disabled", nil)
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				expired, err := svc.ExpireOverdue(context.Background(), time.Now().UnixMilli())
				if err != nil {
					utils.Error("Expiry sweep failed", map[string]any{"error": err.Error()})
					continue
				}
				if expired > 0 {
					utils.Info("Expired overdue listings", map[string]any{"count": expired})
				}
			}
		}
	}()
	return func() { close(done) }
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
