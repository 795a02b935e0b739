package finance

import (
	"math"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// MaxPrincipalByIncome bisects over candidate principals for the largest one
// whose price-table installment stays within the income-based ceiling.
// The search interval is [0, sum of current events]; the best feasible
// midpoint found within the iteration budget is returned, 0 if none.
func MaxPrincipalByIncome(maxInstallment float64, installmentCount int, delivery time.Time, events []model.PaymentEvent, now time.Time) float64 {
	if maxInstallment <= 0 {
		return 0
	}

	lo, hi := 0.0, EventsTotal(events)
	best := 0.0
	for i := 0; i < BisectionMaxSteps && hi-lo > BisectionTolerance; i++ {
		mid := (lo + hi) / 2
		plan := InstallmentPlan(mid, installmentCount, delivery, events, now)
		if plan.Installment <= maxInstallment {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return best
}

// MaxPrincipalByPercentCap bisects over [0, upperBound] for the largest
// principal whose interest-corrected value stays within maxCorrected.
func MaxPrincipalByPercentCap(maxCorrected float64, delivery time.Time, events []model.PaymentEvent, upperBound float64, now time.Time) float64 {
	if maxCorrected <= 0 || upperBound <= 0 {
		return 0
	}

	lo, hi := 0.0, upperBound
	best := 0.0
	for i := 0; i < BisectionMaxSteps && hi-lo > BisectionTolerance; i++ {
		mid := (lo + hi) / 2
		if CorrectedValue(mid, delivery, events, now) <= maxCorrected {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return best
}

// SolveRate backs out the periodic interest rate implied by a principal, a
// level installment and a period count, by Newton-Raphson on the annuity
// equation
//
//	principal * (1+r)^n = installment * ((1+r)^n - 1) / r
//
// Iteration starts at r = 0.01 and stops when successive estimates differ by
// less than NewtonTolerance. A non-finite intermediate halves the current
// estimate and continues; a vanishing derivative returns the last estimate.
func SolveRate(periodCount int, installment, principal float64) float64 {
	if periodCount <= 0 || installment <= 0 || principal <= 0 {
		return 0
	}

	n := float64(periodCount)
	r := 0.01
	for i := 0; i < NewtonMaxSteps; i++ {
		pow := math.Pow(1+r, n)
		powPrev := math.Pow(1+r, n-1)

		f := principal*pow - installment*(pow-1)/r
		deriv := principal*n*powPrev - installment*(n*powPrev*r-(pow-1))/(r*r)

		if math.Abs(deriv) < 1e-300 {
			return r
		}

		next := r - f/deriv
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= 0 {
			r /= 2
			continue
		}
		if math.Abs(next-r) < NewtonTolerance {
			return next
		}
		r = next
	}
	return r
}
