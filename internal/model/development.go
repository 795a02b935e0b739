package model

import "time"

// Default deferred-financing caps as a fraction of the effective sale value.
// A development may carry a row-level override that replaces both.
const (
	DeferredCapStandard = 0.1499
	DeferredCapSpecial  = 0.1799
)

// Development represents a real-estate development (empreendimento) from the database.
// Its construction and delivery dates drive the insurance schedule and the
// two-regime interest math of the payment simulator.
type Development struct {
	ID                         string     `json:"id"`
	Name                       string     `json:"name"`
	Code                       string     `json:"code"`
	ConstructionStartDate      *time.Time `json:"constructionStartDate"`
	DeliveryDate               *time.Time `json:"deliveryDate"`
	DeferredCapOverride        *float64   `json:"deferredCapOverride,omitempty"`
	InstallmentCeilingStandard int        `json:"installmentCeilingStandard"`
	InstallmentCeilingSpecial  int        `json:"installmentCeilingSpecial"`
}

// DeferredCap returns the maximum deferred-builder-financing fraction for the
// given condition type, honoring the development-level override when present.
func (d *Development) DeferredCap(condition ConditionType) float64 {
	if d.DeferredCapOverride != nil {
		return *d.DeferredCapOverride
	}
	if condition == ConditionSpecial {
		return DeferredCapSpecial
	}
	return DeferredCapStandard
}

// InstallmentCeiling returns the maximum allowed installment count for the
// given condition type.
func (d *Development) InstallmentCeiling(condition ConditionType) int {
	if condition == ConditionSpecial {
		return d.InstallmentCeilingSpecial
	}
	return d.InstallmentCeilingStandard
}

// DevelopmentSummary aggregates the unit catalog of one development.
type DevelopmentSummary struct {
	DevelopmentID  string  `json:"developmentId"`
	Name           string  `json:"name"`
	TotalUnits     int     `json:"totalUnits"`
	AvailableUnits int     `json:"availableUnits"`
	MinSaleValue   float64 `json:"minSaleValue"`
	MaxSaleValue   float64 `json:"maxSaleValue"`
}
