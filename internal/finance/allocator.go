package finance

import (
	"math"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// AllocationContext carries everything the allocator needs beyond the event
// list itself. Now is explicit so grace-period math and default event dates
// are deterministic under test.
type AllocationContext struct {
	Inputs             model.ValuationInputs
	DeliveryDate       *time.Time
	CampaignActive     bool
	CampaignPercentCap float64
	DeferredPercentCap float64
	Now                time.Time
}

func (ctx AllocationContext) delivery() time.Time {
	if ctx.DeliveryDate != nil {
		return *ctx.DeliveryDate
	}
	return time.Time{}
}

// allocatorControlled reports whether the allocator owns events of this type:
// it removes them from the incoming list and re-emits them with computed values.
func allocatorControlled(t model.PaymentEventType) bool {
	switch t {
	case model.EventSignalAtSigning, model.EventDeferredFinancing,
		model.EventCampaignBonus, model.EventGoodStandingBonus:
		return true
	}
	return false
}

// Allocate redistributes the signal, deferred-financing and campaign-bonus
// events of a payment plan so the plan sums to its calculation target while
// honoring the down-payment floor, the deferred-financing caps and the
// campaign carve-out. The input list is never mutated; a freshly built list
// is returned. Allocate never fails: it returns its best effort and leaves
// acceptance to ValidatePlan.
func Allocate(events []model.PaymentEvent, ctx AllocationContext) []model.PaymentEvent {
	in := ctx.Inputs
	discount := EventValue(events, model.EventDiscount)
	bonus := math.Max(0, in.AppraisalValue-in.SaleValue)
	goodStanding := in.AppraisalValue > in.SaleValue
	effectiveSale := in.SaleValue - discount

	// Step 1: calculation target.
	var target float64
	switch {
	case goodStanding:
		target = in.AppraisalValue
	case in.AppraisalValue < in.SaleValue && effectiveSale < in.AppraisalValue:
		target = effectiveSale
	default:
		target = math.Max(in.AppraisalValue, effectiveSale)
	}

	// Step 2: sum of events the allocator does not control. Without a
	// good-standing bonus the discount is already folded into the target via
	// effectiveSale, so it stays out of the fixed sum too.
	fixed := 0.0
	for _, e := range events {
		if allocatorControlled(e.Type) {
			continue
		}
		if e.Type == model.EventDiscount && !goodStanding {
			continue
		}
		fixed += e.Value
	}
	remaining := target - fixed - bonus

	// Step 3: nothing left to allocate.
	if remaining <= 0 {
		out := passthrough(events)
		if bonus > 0 {
			out = append(out, rebuiltEvent(events, model.EventGoodStandingBonus, bonus, ctx))
		}
		return out
	}

	// Step 4: deferred ceiling, the tighter of the percentage cap (narrowed to
	// a pre-correction base) and the income-based cap.
	percentCapBase := MaxPrincipalByPercentCap(
		effectiveSale*ctx.DeferredPercentCap, ctx.delivery(), events, remaining, ctx.Now)
	incomeCapBase := MaxPrincipalByIncome(
		in.GrossMonthlyIncome*MaxIncomeCommitment-in.SimulatedBankInstallment,
		in.InstallmentCount, ctx.delivery(), events, ctx.Now)

	deferredCap := math.Min(percentCapBase, incomeCapBase)
	deferred := math.Max(0, math.Min(deferredCap, remaining))

	// Step 5: down-payment floor. Shift from deferred into signal up to the
	// floor; when deferred cannot cover it, absorb all of it and accept a
	// below-floor signal rather than going negative.
	signal := remaining - deferred
	// An oversized discount drives effectiveSale negative; the floor and the
	// campaign cap below must bottom out at zero, not follow it down.
	signalMin := math.Max(0, MinSignalPct*effectiveSale)
	if signal < signalMin {
		shift := math.Min(signalMin-signal, deferred)
		signal += shift
		deferred -= shift
	}

	// Step 6: re-balance against remaining. Excess comes off deferred first,
	// then signal down to its floor; shortfall goes to signal first, else to
	// deferred bounded by its cap.
	if diff := signal + deferred - remaining; diff > SumTolerance {
		cut := math.Min(diff, deferred)
		deferred -= cut
		diff -= cut
		if diff > 0 {
			signal -= math.Min(diff, math.Max(0, signal-signalMin))
		}
	} else if diff < -SumTolerance {
		short := -diff
		if signal > 0 {
			signal += short
		} else {
			add := math.Max(0, math.Min(short, deferredCap-deferred))
			deferred += add
			signal += short - add
		}
	}

	// Step 7: campaign carve-out. The excess above the floor moves into the
	// campaign bonus up to its percentage cap; any uncapped remainder stays
	// in the signal.
	campaign := 0.0
	if ctx.CampaignActive && signal > signalMin {
		excess := signal - signalMin
		campaign = math.Max(0, math.Min(excess, effectiveSale*ctx.CampaignPercentCap))
		signal -= campaign
		if over := signal + deferred + campaign - remaining; over > SumTolerance {
			deferred = math.Max(0, deferred-over)
		}
	}

	// Step 8: residual correction.
	if residual := remaining - (signal + deferred + campaign); math.Abs(residual) > SumTolerance {
		if residual > 0 {
			signal += residual
		} else {
			need := -residual
			cut := math.Min(need, deferred)
			deferred -= cut
			need -= cut
			if need > 0 {
				signal -= math.Min(need, math.Max(0, signal-signalMin))
			}
		}
	}

	// Step 9: emit. Untouched events pass through; controlled events are
	// re-added only with strictly positive values, keeping prior dates.
	out := passthrough(events)
	if signal > 0 {
		out = append(out, rebuiltEvent(events, model.EventSignalAtSigning, signal, ctx))
	}
	if deferred > 0 {
		out = append(out, rebuiltEvent(events, model.EventDeferredFinancing, deferred, ctx))
	}
	if campaign > 0 {
		out = append(out, rebuiltEvent(events, model.EventCampaignBonus, campaign, ctx))
	}
	if bonus > 0 {
		out = append(out, rebuiltEvent(events, model.EventGoodStandingBonus, bonus, ctx))
	}
	return out
}

// passthrough copies the events the allocator does not control.
func passthrough(events []model.PaymentEvent) []model.PaymentEvent {
	out := make([]model.PaymentEvent, 0, len(events)+4)
	for _, e := range events {
		if !allocatorControlled(e.Type) {
			out = append(out, e)
		}
	}
	return out
}

// rebuiltEvent re-creates a controlled event, retaining its prior date when
// one existed or defaulting to a type-appropriate date otherwise.
func rebuiltEvent(events []model.PaymentEvent, t model.PaymentEventType, value float64, ctx AllocationContext) model.PaymentEvent {
	if prior, ok := eventDate(events, t); ok {
		return model.PaymentEvent{Type: t, Value: value, Date: prior}
	}
	return model.PaymentEvent{Type: t, Value: value, Date: defaultEventDate(events, t, ctx)}
}

func defaultEventDate(events []model.PaymentEvent, t model.PaymentEventType, ctx AllocationContext) time.Time {
	if t.DeliveryLocked() && ctx.DeliveryDate != nil {
		return *ctx.DeliveryDate
	}
	if t == model.EventDeferredFinancing {
		// One month after the latest staged signal, if any.
		var latest time.Time
		for _, st := range []model.PaymentEventType{model.EventSignal1, model.EventSignal2, model.EventSignal3} {
			if d, ok := eventDate(events, st); ok && d.After(latest) {
				latest = d
			}
		}
		if !latest.IsZero() {
			return latest.AddDate(0, 1, 0)
		}
	}
	return ctx.Now
}

// AllocationOutcome is the result of the bounded allocate/re-validate loop.
// Converged distinguishes a reached fixed point from an exhausted retry budget.
type AllocationOutcome struct {
	Events     []model.PaymentEvent
	Validation model.ValidationRecord
	Attempts   int
	Converged  bool
}

// AllocateUntilValid validates the plan and, while it fails the sum rules,
// reapplies the allocator up to AllocatorMaxRetries times. The last attempt
// is returned either way; callers must check Converged.
func AllocateUntilValid(events []model.PaymentEvent, ctx AllocationContext) AllocationOutcome {
	current := events
	record := ValidatePlan(current, ctx.Inputs.AppraisalValue, ctx.Inputs.SaleValue)

	accepted := func(r model.ValidationRecord) bool {
		return r.IsValid && r.ViolationMessage == ""
	}

	attempts := 0
	for !accepted(record) && attempts < AllocatorMaxRetries {
		attempts++
		current = Allocate(current, ctx)
		record = ValidatePlan(current, ctx.Inputs.AppraisalValue, ctx.Inputs.SaleValue)
	}

	return AllocationOutcome{
		Events:     current,
		Validation: record,
		Attempts:   attempts,
		Converged:  accepted(record),
	}
}
