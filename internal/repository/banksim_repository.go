package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// BankSimRepository provides data access methods for the banksim_config table.
// The table holds at most one row; Save replaces it.
type BankSimRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewBankSimRepository creates a new BankSimRepository with the provided database connection.
func NewBankSimRepository(db *sql.DB) *BankSimRepository {
	return &BankSimRepository{db: db}
}

func (r *BankSimRepository) WithTx(tx *sql.Tx) *BankSimRepository {
	return &BankSimRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *BankSimRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetConfig retrieves the bank simulator configuration.
func (r *BankSimRepository) GetConfig() (model.BankSimConfig, error) {
	query := `
        SELECT id, base_url, portal_user, portal_secret, enabled, updated_at
        FROM banksim_config
        LIMIT 1
    `

	var c model.BankSimConfig
	var updatedStr string
	err := r.getQuerier().QueryRow(query).Scan(
		&c.ID,
		&c.BaseURL,
		&c.PortalUser,
		&c.PortalSecret,
		&c.Enabled,
		&updatedStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BankSimConfig{}, apperrors.ErrBankSimConfigNotFound
	}
	if err != nil {
		return model.BankSimConfig{}, fmt.Errorf("failed to query banksim config: %w", err)
	}

	if c.UpdatedAt, err = parseTimestamp(updatedStr); err != nil {
		return model.BankSimConfig{}, err
	}
	return c, nil
}

// SaveConfig replaces the bank simulator configuration.
func (r *BankSimRepository) SaveConfig(c model.BankSimConfig) error {
	if _, err := r.getQuerier().Exec(`DELETE FROM banksim_config`); err != nil {
		return fmt.Errorf("failed to clear banksim config: %w", err)
	}

	query := `
        INSERT INTO banksim_config (id, base_url, portal_user, portal_secret, enabled)
        VALUES (?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().Exec(query,
		c.ID,
		c.BaseURL,
		c.PortalUser,
		c.PortalSecret,
		c.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to save banksim config: %w", err)
	}
	return nil
}
