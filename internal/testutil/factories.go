package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// DevelopmentBuilder provides a fluent interface for creating test developments.
//
// Example usage:
//
//	// Simple creation with defaults
//	development := testutil.NewDevelopment().Build(t, db)
//
//	// Customized development
//	development := testutil.NewDevelopment().
//	    WithName("Residencial Aurora").
//	    WithDeliveryDate(time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type DevelopmentBuilder struct {
	ID                         string
	Name                       string
	Code                       string
	ConstructionStartDate      *time.Time
	DeliveryDate               *time.Time
	DeferredCapOverride        *float64
	InstallmentCeilingStandard int
	InstallmentCeilingSpecial  int
}

// NewDevelopment creates a DevelopmentBuilder with sensible defaults.
func NewDevelopment() *DevelopmentBuilder {
	return &DevelopmentBuilder{
		ID:                         MakeID(),
		Name:                       MakeDevelopmentName("Test Development"),
		Code:                       MakeDevelopmentCode(),
		InstallmentCeilingStandard: 52,
		InstallmentCeilingSpecial:  66,
	}
}

// WithID sets a custom ID.
func (b *DevelopmentBuilder) WithID(id string) *DevelopmentBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *DevelopmentBuilder) WithName(name string) *DevelopmentBuilder {
	b.Name = name
	return b
}

// WithConstructionStartDate sets the construction start date.
func (b *DevelopmentBuilder) WithConstructionStartDate(t time.Time) *DevelopmentBuilder {
	b.ConstructionStartDate = &t
	return b
}

// WithDeliveryDate sets the delivery date.
func (b *DevelopmentBuilder) WithDeliveryDate(t time.Time) *DevelopmentBuilder {
	b.DeliveryDate = &t
	return b
}

// WithDeferredCapOverride sets a development-level deferred cap override.
func (b *DevelopmentBuilder) WithDeferredCapOverride(cap float64) *DevelopmentBuilder {
	b.DeferredCapOverride = &cap
	return b
}

// WithInstallmentCeilings sets both installment ceilings.
func (b *DevelopmentBuilder) WithInstallmentCeilings(standard, special int) *DevelopmentBuilder {
	b.InstallmentCeilingStandard = standard
	b.InstallmentCeilingSpecial = special
	return b
}

// Build creates the development in the database and returns it.
func (b *DevelopmentBuilder) Build(t *testing.T, db *sql.DB) model.Development {
	t.Helper()

	query := `
		INSERT INTO development (
			id, name, code, construction_start_date, delivery_date,
			deferred_cap_override, installment_ceiling_standard, installment_ceiling_special
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Name, b.Code,
		formatTestDate(b.ConstructionStartDate), formatTestDate(b.DeliveryDate),
		b.DeferredCapOverride, b.InstallmentCeilingStandard, b.InstallmentCeilingSpecial,
	)
	if err != nil {
		t.Fatalf("Failed to create test development: %v", err)
	}

	return model.Development{
		ID:                         b.ID,
		Name:                       b.Name,
		Code:                       b.Code,
		ConstructionStartDate:      b.ConstructionStartDate,
		DeliveryDate:               b.DeliveryDate,
		DeferredCapOverride:        b.DeferredCapOverride,
		InstallmentCeilingStandard: b.InstallmentCeilingStandard,
		InstallmentCeilingSpecial:  b.InstallmentCeilingSpecial,
	}
}

// UnitBuilder provides a fluent interface for creating test units.
//
// Example usage:
//
//	unit := testutil.NewUnit(development.ID).
//	    WithSaleValue(250000).
//	    WithAppraisalValue(260000).
//	    Build(t, db)
type UnitBuilder struct {
	ID             string
	DevelopmentID  string
	Identifier     string
	AppraisalValue float64
	SaleValue      float64
	Status         string
}

// NewUnit creates a UnitBuilder with sensible defaults for the given development.
func NewUnit(developmentID string) *UnitBuilder {
	return &UnitBuilder{
		ID:             MakeID(),
		DevelopmentID:  developmentID,
		Identifier:     MakeUnitIdentifier(),
		AppraisalValue: 200_000,
		SaleValue:      200_000,
		Status:         model.UnitAvailable,
	}
}

// WithID sets a custom ID.
func (b *UnitBuilder) WithID(id string) *UnitBuilder {
	b.ID = id
	return b
}

// WithIdentifier sets a custom identifier.
func (b *UnitBuilder) WithIdentifier(identifier string) *UnitBuilder {
	b.Identifier = identifier
	return b
}

// WithAppraisalValue sets the appraisal value.
func (b *UnitBuilder) WithAppraisalValue(v float64) *UnitBuilder {
	b.AppraisalValue = v
	return b
}

// WithSaleValue sets the sale value.
func (b *UnitBuilder) WithSaleValue(v float64) *UnitBuilder {
	b.SaleValue = v
	return b
}

// WithStatus sets the unit status.
func (b *UnitBuilder) WithStatus(status string) *UnitBuilder {
	b.Status = status
	return b
}

// Sold marks the unit as sold.
func (b *UnitBuilder) Sold() *UnitBuilder {
	b.Status = model.UnitSold
	return b
}

// Build creates the unit in the database and returns it.
func (b *UnitBuilder) Build(t *testing.T, db *sql.DB) model.Unit {
	t.Helper()

	query := `
		INSERT INTO unit (id, development_id, identifier, appraisal_value, sale_value, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.DevelopmentID, b.Identifier, b.AppraisalValue, b.SaleValue, b.Status)
	if err != nil {
		t.Fatalf("Failed to create test unit: %v", err)
	}

	return model.Unit{
		ID:             b.ID,
		DevelopmentID:  b.DevelopmentID,
		Identifier:     b.Identifier,
		AppraisalValue: b.AppraisalValue,
		SaleValue:      b.SaleValue,
		Status:         b.Status,
	}
}

func formatTestDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
