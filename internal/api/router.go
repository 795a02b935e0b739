package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vivendahub/Property-Sales-Backend/internal/api/handlers"
	custommiddleware "github.com/vivendahub/Property-Sales-Backend/internal/api/middleware"
	"github.com/vivendahub/Property-Sales-Backend/internal/config"
	"github.com/vivendahub/Property-Sales-Backend/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Development *service.DevelopmentService
	Unit        *service.UnitService
	Simulation  *service.SimulationService
	BankSim     *service.BankSimService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/development", func(r chi.Router) {
			developmentHandler := handlers.NewDevelopmentHandler(svc.Development)
			r.Get("/", developmentHandler.Developments)
			r.Get("/summary", developmentHandler.DevelopmentSummaries)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", developmentHandler.CreateDevelopment)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", developmentHandler.Development)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", developmentHandler.UpdateDevelopment)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", developmentHandler.DeleteDevelopment)
			})
		})

		r.Route("/unit", func(r chi.Router) {
			unitHandler := handlers.NewUnitHandler(svc.Unit)
			r.Get("/", unitHandler.Units)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", unitHandler.CreateUnit)
			r.Route("/{uuid}", func(r chi.Router) {
				simulationHandler := handlers.NewSimulationHandler(svc.Simulation)
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", unitHandler.Unit)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", unitHandler.UpdateUnit)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", unitHandler.DeleteUnit)
				r.Get("/simulations", simulationHandler.SnapshotsByUnit)
			})
		})

		r.Route("/simulation", func(r chi.Router) {
			simulationHandler := handlers.NewSimulationHandler(svc.Simulation)
			r.Post("/compute", simulationHandler.Compute)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", simulationHandler.Snapshot)
			})
		})

		r.Route("/banksim", func(r chi.Router) {
			bankSimHandler := handlers.NewBankSimHandler(svc.BankSim)
			r.Get("/config", bankSimHandler.Config)
			r.Post("/simulate", bankSimHandler.Simulate)
			r.With(custommiddleware.APIKeyMiddleware).Put("/config", bankSimHandler.SaveConfig)
		})
	})

	return r
}
