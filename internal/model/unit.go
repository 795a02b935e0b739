package model

import "time"

// Unit statuses.
const (
	UnitAvailable = "AVAILABLE"
	UnitReserved  = "RESERVED"
	UnitSold      = "SOLD"
)

// Unit represents a sellable unit within a development.
// AppraisalValue is the bank appraisal; SaleValue is the contracted price.
// Appraisal may exceed sale (good-standing bonus) or fall below it.
type Unit struct {
	ID             string    `json:"id"`
	DevelopmentID  string    `json:"developmentId"`
	Identifier     string    `json:"identifier"`
	AppraisalValue float64   `json:"appraisalValue"`
	SaleValue      float64   `json:"saleValue"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UnitFilter for querying units.
type UnitFilter struct {
	DevelopmentID string
	Status        string
}
