package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// ValidatePlan recomputes the expected plan total from the appraisal and sale
// values and compares it against the actual sum of payment events. The
// three-branch target rule mirrors the allocator's: with a good-standing
// bonus the target is the appraisal (and the discount counts toward the
// actual sum); otherwise the discount is folded into the effective sale
// value and excluded from the sum.
//
// Floor and campaign-contradiction checks populate ViolationMessage
// independently of sum validity.
func ValidatePlan(events []model.PaymentEvent, appraisalValue, saleValue float64) model.ValidationRecord {
	discount := EventValue(events, model.EventDiscount)
	goodStanding := appraisalValue > saleValue
	effectiveSale := saleValue - discount

	var expected float64
	switch {
	case goodStanding:
		expected = appraisalValue
	case appraisalValue < saleValue && effectiveSale < appraisalValue:
		expected = effectiveSale
	default:
		expected = math.Max(appraisalValue, effectiveSale)
	}

	actual := 0.0
	for _, e := range events {
		if e.Type == model.EventDiscount && !goodStanding {
			continue
		}
		actual += e.Value
	}

	record := model.ValidationRecord{
		Expected:   expected,
		Actual:     actual,
		Difference: expected - actual,
		IsValid:    math.Abs(expected-actual) < SumTolerance,
	}

	signalMin := MinSignalPct * effectiveSale
	signal := EventValue(events, model.EventSignalAtSigning)
	if signal < signalMin-SumTolerance {
		// A campaign bonus only exists when the signal reached its minimum, so
		// a below-floor signal next to one is a contradiction either way.
		if HasEvent(events, model.EventCampaignBonus) {
			record.ViolationMessage = "campaign bonus present without qualifying excess signal"
		} else if HasEvent(events, model.EventSignalAtSigning) {
			record.ViolationMessage = fmt.Sprintf(
				"signal at signing %.2f is below the %.1f%% minimum of %.2f",
				signal, MinSignalPct*100, signalMin)
		}
	}

	return record
}

// BusinessRuleInput carries the post-allocation figures for the fatal checks
// that are never auto-corrected.
type BusinessRuleInput struct {
	Events             []model.PaymentEvent
	Inputs             model.ValuationInputs
	DeliveryDate       *time.Time
	Installment        float64
	Insurance          model.InsuranceSchedule
	DeferredPercentCap float64
	InstallmentCeiling int
	Now                time.Time
}

// CheckBusinessRules verifies the plan's hard feasibility limits: peak
// monthly income commitment, the corrected deferred-financing cap, and the
// installment-count ceiling. It returns a descriptive violation message, or
// "" when all rules pass.
func CheckBusinessRules(in BusinessRuleInput) string {
	if in.Inputs.GrossMonthlyIncome > 0 {
		peak := in.Installment
		for _, m := range in.Insurance.Breakdown {
			if m.IsPayable && in.Installment+m.Value > peak {
				peak = in.Installment + m.Value
			}
		}
		commitment := peak / in.Inputs.GrossMonthlyIncome
		if commitment > MaxIncomeCommitment {
			return fmt.Sprintf(
				"peak monthly commitment of %.1f%% exceeds the %.0f%% income limit",
				commitment*100, MaxIncomeCommitment*100)
		}
	}

	deferred := EventValue(in.Events, model.EventDeferredFinancing)
	if deferred > 0 && in.DeliveryDate != nil {
		corrected := CorrectedValue(deferred, *in.DeliveryDate, in.Events, in.Now)
		cap := in.Inputs.SaleValue * in.DeferredPercentCap
		if corrected > cap+SumTolerance {
			return fmt.Sprintf(
				"corrected deferred financing %.2f exceeds the cap of %.2f (%.2f%% of sale value)",
				corrected, cap, in.DeferredPercentCap*100)
		}
	}

	if in.InstallmentCeiling > 0 && in.Inputs.InstallmentCount > in.InstallmentCeiling {
		return fmt.Sprintf(
			"installment count %d exceeds the ceiling of %d for this condition",
			in.Inputs.InstallmentCount, in.InstallmentCeiling)
	}

	return ""
}
