package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// DevelopmentRepository provides data access methods for the development table.
type DevelopmentRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewDevelopmentRepository creates a new DevelopmentRepository with the provided database connection.
func NewDevelopmentRepository(db *sql.DB) *DevelopmentRepository {
	return &DevelopmentRepository{db: db}
}

func (r *DevelopmentRepository) WithTx(tx *sql.Tx) *DevelopmentRepository {
	return &DevelopmentRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *DevelopmentRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const developmentColumns = `
    id, name, code, construction_start_date, delivery_date,
    deferred_cap_override, installment_ceiling_standard, installment_ceiling_special`

func scanDevelopment(scan func(dest ...any) error) (model.Development, error) {
	var d model.Development
	var startStr, deliveryStr *string

	err := scan(
		&d.ID,
		&d.Name,
		&d.Code,
		&startStr,
		&deliveryStr,
		&d.DeferredCapOverride,
		&d.InstallmentCeilingStandard,
		&d.InstallmentCeilingSpecial,
	)
	if err != nil {
		return model.Development{}, err
	}

	if d.ConstructionStartDate, err = scanDate(startStr); err != nil {
		return model.Development{}, err
	}
	if d.DeliveryDate, err = scanDate(deliveryStr); err != nil {
		return model.Development{}, err
	}
	return d, nil
}

// GetDevelopments retrieves all developments ordered by name.
// Returns an empty slice if none exist.
func (r *DevelopmentRepository) GetDevelopments() ([]model.Development, error) {
	query := `SELECT` + developmentColumns + ` FROM development ORDER BY name ASC`

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query development table: %w", err)
	}
	defer rows.Close()

	developments := []model.Development{}
	for rows.Next() {
		d, err := scanDevelopment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan development table results: %w", err)
		}
		developments = append(developments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating development table: %w", err)
	}

	return developments, nil
}

// GetDevelopment retrieves a single development by ID.
func (r *DevelopmentRepository) GetDevelopment(id string) (model.Development, error) {
	query := `SELECT` + developmentColumns + ` FROM development WHERE id = ?`

	d, err := scanDevelopment(r.getQuerier().QueryRow(query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Development{}, apperrors.ErrDevelopmentNotFound
	}
	if err != nil {
		return model.Development{}, fmt.Errorf("failed to query development: %w", err)
	}
	return d, nil
}

// CreateDevelopment inserts a new development.
func (r *DevelopmentRepository) CreateDevelopment(d model.Development) error {
	query := `
        INSERT INTO development (
            id, name, code, construction_start_date, delivery_date,
            deferred_cap_override, installment_ceiling_standard, installment_ceiling_special
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().Exec(query,
		d.ID,
		d.Name,
		d.Code,
		formatDate(d.ConstructionStartDate),
		formatDate(d.DeliveryDate),
		d.DeferredCapOverride,
		d.InstallmentCeilingStandard,
		d.InstallmentCeilingSpecial,
	)
	if err != nil {
		return fmt.Errorf("failed to insert development: %w", err)
	}
	return nil
}

// UpdateDevelopment updates an existing development.
func (r *DevelopmentRepository) UpdateDevelopment(d model.Development) error {
	query := `
        UPDATE development
        SET name = ?, code = ?, construction_start_date = ?, delivery_date = ?,
            deferred_cap_override = ?, installment_ceiling_standard = ?, installment_ceiling_special = ?
        WHERE id = ?
    `

	result, err := r.getQuerier().Exec(query,
		d.Name,
		d.Code,
		formatDate(d.ConstructionStartDate),
		formatDate(d.DeliveryDate),
		d.DeferredCapOverride,
		d.InstallmentCeilingStandard,
		d.InstallmentCeilingSpecial,
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update development: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDevelopmentNotFound
	}
	return nil
}

// DeleteDevelopment removes a development and, via cascade, its units.
func (r *DevelopmentRepository) DeleteDevelopment(id string) error {
	result, err := r.getQuerier().Exec(`DELETE FROM development WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete development: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDevelopmentNotFound
	}
	return nil
}
