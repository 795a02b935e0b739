package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrDevelopmentNotFound indicates that a development with the given ID does not exist.
	ErrDevelopmentNotFound = errors.New("development not found")

	// ErrUnitNotFound indicates that a unit with the given ID does not exist.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrSnapshotNotFound indicates that a simulation snapshot with the given ID does not exist.
	ErrSnapshotNotFound = errors.New("simulation snapshot not found")

	// ErrBankSimConfigNotFound indicates the bank simulator integration has not been set up.
	ErrBankSimConfigNotFound = errors.New("bank simulator configuration not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidSaleValue indicates a simulation was requested without a positive sale value.
	// No computation is attempted in this state.
	ErrInvalidSaleValue = errors.New("sale value must be positive")

	// ErrMissingUnit indicates a simulation was requested without selecting a unit.
	ErrMissingUnit = errors.New("unit selection is required")

	// ErrCannotAutoCorrect indicates the payment plan still violates the sum rules after
	// the bounded allocator retry loop was exhausted.
	ErrCannotAutoCorrect = errors.New("payment plan could not be auto-corrected")

	// ErrBusinessRuleViolation indicates a fatal plan violation that is never auto-corrected
	// (income commitment over 50%, deferred financing over cap, installment count over ceiling).
	ErrBusinessRuleViolation = errors.New("payment plan violates business rules")

	// ErrBankSimDisabled indicates the bank simulator integration is configured but disabled.
	ErrBankSimDisabled = errors.New("bank simulator integration is disabled")

	// ErrUnitInUse indicates that a unit cannot be deleted because it has been sold.
	ErrUnitInUse = errors.New("unit cannot be deleted")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveDevelopments = errors.New("failed to retrieve developments")
	ErrFailedToRetrieveUnits        = errors.New("failed to retrieve units")
	ErrFailedToRetrieveSnapshots    = errors.New("failed to retrieve simulation snapshots")
	ErrFailedToGetVersionInfo       = errors.New("failed to get version information")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that the data is in an inconsistent state
	// (e.g., a unit references a development that doesn't exist).
	ErrDataInconsistency = errors.New("data inconsistency detected")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
