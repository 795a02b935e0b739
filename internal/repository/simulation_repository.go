package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// SimulationRepository provides data access methods for the simulation_snapshot table.
// Inputs, events and result are stored as JSON documents.
type SimulationRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSimulationRepository creates a new SimulationRepository with the provided database connection.
func NewSimulationRepository(db *sql.DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

func (r *SimulationRepository) WithTx(tx *sql.Tx) *SimulationRepository {
	return &SimulationRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *SimulationRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func scanSnapshot(scan func(dest ...any) error) (model.SimulationSnapshot, error) {
	var s model.SimulationSnapshot
	var inputsDoc, eventsDoc, resultDoc string
	var createdStr, expiresStr string

	err := scan(
		&s.ID,
		&s.UnitID,
		&inputsDoc,
		&eventsDoc,
		&resultDoc,
		&createdStr,
		&expiresStr,
	)
	if err != nil {
		return model.SimulationSnapshot{}, err
	}

	if err = json.Unmarshal([]byte(inputsDoc), &s.Inputs); err != nil {
		return model.SimulationSnapshot{}, fmt.Errorf("failed to decode snapshot inputs: %w", err)
	}
	if err = json.Unmarshal([]byte(eventsDoc), &s.Events); err != nil {
		return model.SimulationSnapshot{}, fmt.Errorf("failed to decode snapshot events: %w", err)
	}
	if err = json.Unmarshal([]byte(resultDoc), &s.Result); err != nil {
		return model.SimulationSnapshot{}, fmt.Errorf("failed to decode snapshot result: %w", err)
	}

	if s.CreatedAt, err = parseTimestamp(createdStr); err != nil {
		return model.SimulationSnapshot{}, err
	}
	if s.ExpiresAt, err = parseTimestamp(expiresStr); err != nil {
		return model.SimulationSnapshot{}, err
	}
	return s, nil
}

// CreateSnapshot persists an accepted simulation.
func (r *SimulationRepository) CreateSnapshot(s model.SimulationSnapshot) error {
	inputsDoc, err := json.Marshal(s.Inputs)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot inputs: %w", err)
	}
	eventsDoc, err := json.Marshal(s.Events)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot events: %w", err)
	}
	resultDoc, err := json.Marshal(s.Result)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot result: %w", err)
	}

	query := `
        INSERT INTO simulation_snapshot (id, unit_id, inputs, events, result, created_at, expires_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	_, err = r.getQuerier().Exec(query,
		s.ID,
		s.UnitID,
		string(inputsDoc),
		string(eventsDoc),
		string(resultDoc),
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.ExpiresAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert simulation snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves a single snapshot by ID.
func (r *SimulationRepository) GetSnapshot(id string) (model.SimulationSnapshot, error) {
	query := `
        SELECT id, unit_id, inputs, events, result, created_at, expires_at
        FROM simulation_snapshot
        WHERE id = ?
    `

	s, err := scanSnapshot(r.getQuerier().QueryRow(query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SimulationSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.SimulationSnapshot{}, fmt.Errorf("failed to query simulation snapshot: %w", err)
	}
	return s, nil
}

// GetSnapshotsByUnit retrieves all snapshots for one unit, newest first.
// Returns an empty slice if none exist.
func (r *SimulationRepository) GetSnapshotsByUnit(unitID string) ([]model.SimulationSnapshot, error) {
	query := `
        SELECT id, unit_id, inputs, events, result, created_at, expires_at
        FROM simulation_snapshot
        WHERE unit_id = ?
        ORDER BY created_at DESC
    `

	rows, err := r.getQuerier().Query(query, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.SimulationSnapshot{}
	for rows.Next() {
		s, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation_snapshot table results: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulation_snapshot table: %w", err)
	}

	return snapshots, nil
}

// PurgeExpired removes snapshots whose expiry has passed and reports how many were deleted.
func (r *SimulationRepository) PurgeExpired(now time.Time) (int64, error) {
	result, err := r.getQuerier().Exec(
		`DELETE FROM simulation_snapshot WHERE expires_at <= ?`,
		now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired snapshots: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check purge result: %w", err)
	}
	return deleted, nil
}
