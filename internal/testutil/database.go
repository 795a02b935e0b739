package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Development table
		CREATE TABLE development (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			code VARCHAR(20) NOT NULL UNIQUE,
			construction_start_date DATE,
			delivery_date DATE,
			deferred_cap_override FLOAT,
			installment_ceiling_standard INTEGER NOT NULL DEFAULT 52,
			installment_ceiling_special INTEGER NOT NULL DEFAULT 66
		);

		-- Unit table
		CREATE TABLE unit (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			development_id VARCHAR(36) NOT NULL,
			identifier VARCHAR(30) NOT NULL,
			appraisal_value FLOAT NOT NULL,
			sale_value FLOAT NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'AVAILABLE',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(development_id) REFERENCES development(id) ON DELETE CASCADE,
			CONSTRAINT unique_unit_identifier UNIQUE (development_id, identifier)
		);

		-- Simulation snapshot table
		CREATE TABLE simulation_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			unit_id VARCHAR(36) NOT NULL,
			inputs TEXT NOT NULL,
			events TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			expires_at DATETIME NOT NULL,
			FOREIGN KEY(unit_id) REFERENCES unit(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_simulation_snapshot_unit ON simulation_snapshot(unit_id);
		CREATE INDEX idx_simulation_snapshot_expires ON simulation_snapshot(expires_at);

		-- Bank simulator configuration table
		CREATE TABLE banksim_config (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			base_url VARCHAR(255) NOT NULL,
			portal_user VARCHAR(500) NOT NULL,
			portal_secret VARCHAR(500) NOT NULL,
			enabled BOOLEAN NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"simulation_snapshot",
		"unit",
		"development",
		"banksim_config",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
