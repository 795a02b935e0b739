package model

import "time"

// ValidationRecord reports whether a payment plan sums to its expected target
// and carries the first business-rule violation found, if any.
type ValidationRecord struct {
	IsValid          bool    `json:"isValid"`
	Expected         float64 `json:"expected"`
	Actual           float64 `json:"actual"`
	Difference       float64 `json:"difference"`
	ViolationMessage string  `json:"violationMessage,omitempty"`
}

// InsuranceMonth is one month of the construction insurance schedule.
// Value grows linearly with construction progress; only months from the
// current month onward are payable.
type InsuranceMonth struct {
	MonthLabel   string    `json:"monthLabel"`
	Value        float64   `json:"value"`
	Date         time.Time `json:"date"`
	IsPayable    bool      `json:"isPayable"`
	ProgressRate float64   `json:"progressRate"`
}

// InsuranceSchedule is the full month-by-month insurance breakdown.
// Total sums only the payable months.
type InsuranceSchedule struct {
	Total     float64          `json:"total"`
	Breakdown []InsuranceMonth `json:"breakdown"`
}

// ComputationResult aggregates everything a successful simulation produces.
// It is created fresh on each computation and never mutated afterward.
// The Display fields carry pt-BR formatted amounts for direct rendering.
type ComputationResult struct {
	FinancedAmount            float64           `json:"financedAmount"`
	MonthlyInstallment        float64           `json:"monthlyInstallment"`
	TotalFinanced             float64           `json:"totalFinanced"`
	EffectiveRate             float64           `json:"effectiveRate"`
	IncomeCommitmentPct       float64           `json:"incomeCommitmentPct"`
	DeferredCommitmentPct     float64           `json:"deferredCommitmentPct"`
	Insurance                 InsuranceSchedule `json:"insurance"`
	NotaryFee                 float64           `json:"notaryFee"`
	NotaryInstallment         float64           `json:"notaryInstallment"`
	MonthlyInstallmentDisplay string            `json:"monthlyInstallmentDisplay,omitempty"`
	NotaryFeeDisplay          string            `json:"notaryFeeDisplay,omitempty"`
	Events                    []PaymentEvent    `json:"events"`
	Validation                ValidationRecord  `json:"validation"`
}

// SimulationSnapshot is the persisted record of an accepted simulation.
// Snapshots expire and are purged by the nightly cleanup job.
type SimulationSnapshot struct {
	ID        string            `json:"id"`
	UnitID    string            `json:"unitId"`
	Inputs    ValuationInputs   `json:"inputs"`
	Events    []PaymentEvent    `json:"events"`
	Result    ComputationResult `json:"result"`
	CreatedAt time.Time         `json:"createdAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// BankSimConfig holds the external bank simulator integration settings.
// PortalUser and PortalSecret are stored fernet-encrypted at rest.
type BankSimConfig struct {
	ID           string    `json:"id"`
	BaseURL      string    `json:"baseUrl"`
	PortalUser   string    `json:"portalUser"`
	PortalSecret string    `json:"-"`
	Enabled      bool      `json:"enabled"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VersionInfo contains version information for the application.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
}
