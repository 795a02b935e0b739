package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// UnitRepository provides data access methods for the unit table.
type UnitRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitRepository creates a new UnitRepository with the provided database connection.
func NewUnitRepository(db *sql.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) WithTx(tx *sql.Tx) *UnitRepository {
	return &UnitRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *UnitRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func scanUnit(scan func(dest ...any) error) (model.Unit, error) {
	var u model.Unit
	var createdStr string

	err := scan(
		&u.ID,
		&u.DevelopmentID,
		&u.Identifier,
		&u.AppraisalValue,
		&u.SaleValue,
		&u.Status,
		&createdStr,
	)
	if err != nil {
		return model.Unit{}, err
	}

	if u.CreatedAt, err = parseTimestamp(createdStr); err != nil {
		return model.Unit{}, err
	}
	return u, nil
}

// GetUnits retrieves units matching the filter, newest first.
// Returns an empty slice if none match.
func (r *UnitRepository) GetUnits(filter model.UnitFilter) ([]model.Unit, error) {
	query := `
        SELECT id, development_id, identifier, appraisal_value, sale_value, status, created_at
        FROM unit
    `

	var conditions []string
	var args []any
	if filter.DevelopmentID != "" {
		conditions = append(conditions, "development_id = ?")
		args = append(args, filter.DevelopmentID)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit table: %w", err)
	}
	defer rows.Close()

	units := []model.Unit{}
	for rows.Next() {
		u, err := scanUnit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit table results: %w", err)
		}
		units = append(units, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit table: %w", err)
	}

	return units, nil
}

// GetUnit retrieves a single unit by ID.
func (r *UnitRepository) GetUnit(id string) (model.Unit, error) {
	query := `
        SELECT id, development_id, identifier, appraisal_value, sale_value, status, created_at
        FROM unit
        WHERE id = ?
    `

	u, err := scanUnit(r.getQuerier().QueryRow(query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Unit{}, apperrors.ErrUnitNotFound
	}
	if err != nil {
		return model.Unit{}, fmt.Errorf("failed to query unit: %w", err)
	}
	return u, nil
}

// CreateUnit inserts a new unit.
func (r *UnitRepository) CreateUnit(u model.Unit) error {
	query := `
        INSERT INTO unit (id, development_id, identifier, appraisal_value, sale_value, status)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().Exec(query,
		u.ID,
		u.DevelopmentID,
		u.Identifier,
		u.AppraisalValue,
		u.SaleValue,
		u.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert unit: %w", err)
	}
	return nil
}

// UpdateUnit updates an existing unit.
func (r *UnitRepository) UpdateUnit(u model.Unit) error {
	query := `
        UPDATE unit
        SET identifier = ?, appraisal_value = ?, sale_value = ?, status = ?
        WHERE id = ?
    `

	result, err := r.getQuerier().Exec(query,
		u.Identifier,
		u.AppraisalValue,
		u.SaleValue,
		u.Status,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUnitNotFound
	}
	return nil
}

// DeleteUnit removes a unit.
func (r *UnitRepository) DeleteUnit(id string) error {
	result, err := r.getQuerier().Exec(`DELETE FROM unit WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUnitNotFound
	}
	return nil
}

// CountByStatus returns unit counts and the sale-value range for one development.
func (r *UnitRepository) CountByStatus(developmentID string) (model.DevelopmentSummary, error) {
	query := `
        SELECT
            COUNT(*),
            COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
            COALESCE(MIN(sale_value), 0),
            COALESCE(MAX(sale_value), 0)
        FROM unit
        WHERE development_id = ?
    `

	var summary model.DevelopmentSummary
	summary.DevelopmentID = developmentID
	err := r.getQuerier().QueryRow(query, model.UnitAvailable, developmentID).Scan(
		&summary.TotalUnits,
		&summary.AvailableUnits,
		&summary.MinSaleValue,
		&summary.MaxSaleValue,
	)
	if err != nil {
		return model.DevelopmentSummary{}, fmt.Errorf("failed to query unit counts: %w", err)
	}
	return summary, nil
}
