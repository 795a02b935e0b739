// Package finance implements the payment-flow computation engine: the
// price-table amortization solver, the affordability and percentage-cap
// bisection searches, the minimum-condition payment allocator, the plan
// validator, the effective-rate solver, and the notary and construction
// insurance calculators.
//
// All functions are pure with respect to their explicit inputs; the only
// shared state is the insurance calculator's injected store. Degenerate
// numeric input yields zero-valued results rather than errors.
package finance

import "time"

// Monthly interest regimes for builder financing. The pre-delivery rate
// applies through the delivery month inclusive.
const (
	RatePreDelivery  = 0.005
	RatePostDelivery = 0.015
)

// Business-rule constants.
const (
	// MinSignalPct is the down-payment floor as a fraction of the effective sale value.
	MinSignalPct = 0.055

	// MaxIncomeCommitment caps the monthly commitment (installment plus payable
	// insurance) as a fraction of gross income.
	MaxIncomeCommitment = 0.50
)

// Iteration and precision budgets. These are deliberate, not incidental: the
// two-regime amortization with a variable grace period has no closed-form
// inverse, so the limit solvers bisect with a fixed budget.
const (
	BisectionMaxSteps  = 30
	BisectionTolerance = 0.01

	NewtonMaxSteps  = 200
	NewtonTolerance = 1e-10

	AllocatorMaxRetries = 10

	// SumTolerance is the absolute tolerance for plan-sum comparisons.
	SumTolerance = 0.01
)

// Notary constants.
const (
	// NotarySlipRate is the fixed monthly rate applied when notary fees are
	// paid by bank slip rather than card.
	NotarySlipRate = 0.015

	// NotaryParticipantSurcharge is the flat fee added per financing
	// participant beyond the first.
	NotaryParticipantSurcharge = 250.0
)

// InsuranceCacheTTL bounds how long a computed insurance schedule stays valid
// in the store.
const InsuranceCacheTTL = 5 * time.Minute
