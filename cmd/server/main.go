package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vivendahub/Property-Sales-Backend/internal/api"
	"github.com/vivendahub/Property-Sales-Backend/internal/banksim"
	"github.com/vivendahub/Property-Sales-Backend/internal/config"
	"github.com/vivendahub/Property-Sales-Backend/internal/database"
	"github.com/vivendahub/Property-Sales-Backend/internal/finance"
	"github.com/vivendahub/Property-Sales-Backend/internal/repository"
	"github.com/vivendahub/Property-Sales-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	developmentRepo := repository.NewDevelopmentRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	simulationRepo := repository.NewSimulationRepository(db)
	banksimRepo := repository.NewBankSimRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	developmentService := service.NewDevelopmentService(developmentRepo, unitRepo)
	unitService := service.NewUnitService(unitRepo, developmentRepo, simulationRepo)

	insuranceStore := finance.NewMemoryInsuranceStore(finance.InsuranceCacheTTL, nil)
	insuranceCalc := finance.NewInsuranceCalculator(insuranceStore, nil)
	simulationService := service.NewSimulationService(
		unitRepo,
		developmentRepo,
		simulationRepo,
		insuranceCalc,
		cfg.Snapshot.RetentionDays,
		nil,
	)

	banksimClient := banksim.NewClient(cfg.BankSim.BaseURL)
	bankSimService, err := service.NewBankSimService(banksimRepo, banksimClient, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize bank simulator service: %v", err)
	}

	// Nightly snapshot purge
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Snapshot.PurgeSchedule, func() {
		deleted, err := simulationService.PurgeExpiredSnapshots()
		if err != nil {
			log.Printf("Snapshot purge failed: %v", err)
			return
		}
		log.Printf("Snapshot purge removed %d expired snapshots", deleted)
	}); err != nil {
		log.Fatalf("Failed to schedule snapshot purge: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Development: developmentService,
		Unit:        unitService,
		Simulation:  simulationService,
		BankSim:     bankSimService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
