package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vivendahub/Property-Sales-Backend/internal/finance"
	"github.com/vivendahub/Property-Sales-Backend/internal/repository"
	"github.com/vivendahub/Property-Sales-Backend/internal/service"
)

func NewTestDevelopmentService(t *testing.T, db *sql.DB) *service.DevelopmentService {
	t.Helper()

	developmentRepo := repository.NewDevelopmentRepository(db)
	unitRepo := repository.NewUnitRepository(db)

	return service.NewDevelopmentService(
		developmentRepo,
		unitRepo,
	)
}

func NewTestUnitService(t *testing.T, db *sql.DB) *service.UnitService {
	t.Helper()

	unitRepo := repository.NewUnitRepository(db)
	developmentRepo := repository.NewDevelopmentRepository(db)
	simulationRepo := repository.NewSimulationRepository(db)

	return service.NewUnitService(
		unitRepo,
		developmentRepo,
		simulationRepo,
	)
}

// NewTestSimulationService creates a SimulationService with a fixed clock so
// grace-period and expiry math is deterministic. A nil now uses time.Now.
func NewTestSimulationService(t *testing.T, db *sql.DB, now func() time.Time) *service.SimulationService {
	t.Helper()

	unitRepo := repository.NewUnitRepository(db)
	developmentRepo := repository.NewDevelopmentRepository(db)
	simulationRepo := repository.NewSimulationRepository(db)
	store := finance.NewMemoryInsuranceStore(finance.InsuranceCacheTTL, now)
	insurance := finance.NewInsuranceCalculator(store, now)

	return service.NewSimulationService(
		unitRepo,
		developmentRepo,
		simulationRepo,
		insurance,
		30,
		now,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeDevelopmentName generates a unique development name for testing.
func MakeDevelopmentName(base string) string {
	if base == "" {
		base = "Development"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeDevelopmentCode generates a unique development code for testing.
func MakeDevelopmentCode() string {
	return "DEV-" + randomAlphanumeric(6)
}

// MakeUnitIdentifier generates a unique unit identifier for testing.
func MakeUnitIdentifier() string {
	return "T" + randomAlphanumeric(2) + "-" + randomAlphanumeric(3)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
