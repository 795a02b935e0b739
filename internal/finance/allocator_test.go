package finance_test

import (
	"math"
	"testing"

	"github.com/vivendahub/Property-Sales-Backend/internal/finance"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

func allocationCtx(inputs model.ValuationInputs) finance.AllocationContext {
	delivery := futureDelivery()
	return finance.AllocationContext{
		Inputs:             inputs,
		DeliveryDate:       &delivery,
		DeferredPercentCap: model.DeferredCapStandard,
		Now:                testNow,
	}
}

func eventValue(t *testing.T, events []model.PaymentEvent, typ model.PaymentEventType) float64 {
	t.Helper()
	for _, e := range events {
		if e.Type == typ {
			return e.Value
		}
	}
	return 0
}

// WHY: the good-standing bonus is the credit granted when the bank appraises
// above the contracted price; it must surface as its own event at exactly the
// appraisal/sale difference, never folded into signal or deferred financing.
func TestAllocate_GoodStandingBonus(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   500000,
		SaleValue:        450000,
		InstallmentCount: 36,
	})

	out := finance.Allocate(nil, ctx)

	bonus := eventValue(t, out, model.EventGoodStandingBonus)
	if math.Abs(bonus-50000) > finance.SumTolerance {
		t.Errorf("good-standing bonus = %.2f, want 50000.00", bonus)
	}

	record := finance.ValidatePlan(out, 500000, 450000)
	if !record.IsValid {
		t.Errorf("allocated plan fails sum validation: %+v", record)
	}
	if math.Abs(record.Expected-500000) > finance.SumTolerance {
		t.Errorf("expected target = %.2f, want 500000.00", record.Expected)
	}
}

// WHY: a deep discount can push the effective sale value below the appraisal;
// the calculation target must then follow the discounted price, not the
// appraisal.
func TestAllocate_DiscountBelowAppraisal(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:     200000,
		SaleValue:          300000,
		GrossMonthlyIncome: 20000,
		InstallmentCount:   36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventDiscount, Value: 150000, Date: testNow},
	}

	out := finance.Allocate(events, ctx)
	record := finance.ValidatePlan(out, 200000, 300000)

	if math.Abs(record.Expected-150000) > finance.SumTolerance {
		t.Errorf("target = %.2f, want effective sale value 150000.00", record.Expected)
	}
	if !record.IsValid {
		t.Errorf("allocated plan fails sum validation: %+v", record)
	}
	if eventValue(t, out, model.EventGoodStandingBonus) != 0 {
		t.Error("no good-standing bonus expected when appraisal < sale")
	}
}

// WHY: appraisal exactly equal to sale must fall into the no-bonus branch;
// the bonus condition is strictly greater-than.
func TestAllocate_AppraisalEqualsSale(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   300000,
		SaleValue:        300000,
		InstallmentCount: 36,
	})

	out := finance.Allocate(nil, ctx)

	if eventValue(t, out, model.EventGoodStandingBonus) != 0 {
		t.Error("equality must not produce a good-standing bonus event")
	}
	record := finance.ValidatePlan(out, 300000, 300000)
	if math.Abs(record.Expected-300000) > finance.SumTolerance {
		t.Errorf("target = %.2f, want 300000.00", record.Expected)
	}
	if !record.IsValid {
		t.Errorf("allocated plan fails sum validation: %+v", record)
	}
}

// WHY: the campaign bonus carves out only the excess above the signal floor,
// capped as a percentage of sale value; the uncapped remainder stays in the
// signal.
func TestAllocate_CampaignCarveOut(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   100000,
		SaleValue:        100000,
		InstallmentCount: 36,
	})
	ctx.CampaignActive = true
	ctx.CampaignPercentCap = 0.05 // caps the bonus at 5000

	// Fixed bank financing leaves 15500 to allocate: the 5500 floor plus a
	// 10000 excess. Income ceiling of zero keeps deferred financing out.
	events := []model.PaymentEvent{
		{Type: model.EventBankFinancing, Value: 84500, Date: testNow},
	}

	out := finance.Allocate(events, ctx)

	campaign := eventValue(t, out, model.EventCampaignBonus)
	signal := eventValue(t, out, model.EventSignalAtSigning)
	if math.Abs(campaign-5000) > finance.SumTolerance {
		t.Errorf("campaign bonus = %.2f, want 5000.00", campaign)
	}
	if math.Abs(signal-10500) > finance.SumTolerance {
		t.Errorf("signal = %.2f, want 10500.00 (floor plus uncapped remainder)", signal)
	}

	record := finance.ValidatePlan(out, 100000, 100000)
	if !record.IsValid {
		t.Errorf("allocated plan fails sum validation: %+v", record)
	}
}

// WHY: a discount larger than the sale value drives the effective sale
// negative; the signal floor and the campaign cap must bottom out at zero
// there, or the carve-out injects a negative bonus into the signal and the
// plan oversums its target on every retry.
func TestAllocate_CampaignWithDiscountOverSaleValue(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   100000,
		SaleValue:        100000,
		InstallmentCount: 36,
	})
	ctx.CampaignActive = true
	ctx.CampaignPercentCap = 0.05
	events := []model.PaymentEvent{
		{Type: model.EventDiscount, Value: 150000, Date: testNow},
	}

	out := finance.Allocate(events, ctx)

	if eventValue(t, out, model.EventCampaignBonus) != 0 {
		t.Error("no campaign bonus expected when the effective sale value is negative")
	}
	signal := eventValue(t, out, model.EventSignalAtSigning)
	if math.Abs(signal-100000) > finance.SumTolerance {
		t.Errorf("signal = %.2f, want the full 100000.00 target", signal)
	}

	record := finance.ValidatePlan(out, 100000, 100000)
	if !record.IsValid {
		t.Errorf("allocated plan fails sum validation: %+v", record)
	}

	outcome := finance.AllocateUntilValid(events, ctx)
	if !outcome.Converged {
		t.Fatalf("expected convergence, got %+v after %d attempts", outcome.Validation, outcome.Attempts)
	}
}

// WHY: when the remaining amount cannot reach the down-payment floor the
// allocator must assign the entire remainder to the signal rather than go
// negative elsewhere.
func TestAllocate_FloorOrExhausted(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   100000,
		SaleValue:        100000,
		InstallmentCount: 36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventBankFinancing, Value: 98000, Date: testNow},
	}

	out := finance.Allocate(events, ctx)

	signal := eventValue(t, out, model.EventSignalAtSigning)
	if math.Abs(signal-2000) > finance.SumTolerance {
		t.Errorf("signal = %.2f, want the whole remaining 2000.00", signal)
	}
	if eventValue(t, out, model.EventDeferredFinancing) != 0 {
		t.Error("no deferred financing expected when the remainder is below the floor")
	}
}

// WHY: with nothing left to allocate, controlled events must be dropped
// outright instead of being emitted with zero or negative values.
func TestAllocate_NothingRemaining(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   100000,
		SaleValue:        100000,
		InstallmentCount: 36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventBankFinancing, Value: 120000, Date: testNow},
		{Type: model.EventSignalAtSigning, Value: 5000, Date: testNow},
	}

	out := finance.Allocate(events, ctx)

	if len(out) != 1 || out[0].Type != model.EventBankFinancing {
		t.Fatalf("expected only the bank financing event to pass through, got %+v", out)
	}
}

// WHY: deferred financing is bounded by the tighter of the percentage cap and
// the income cap, applied to the pre-correction base value.
func TestAllocate_DeferredRespectsPercentCap(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:     300000,
		SaleValue:          300000,
		GrossMonthlyIncome: 50000,
		InstallmentCount:   36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventBankFinancing, Value: 200000, Date: testNow},
	}

	out := finance.Allocate(events, ctx)

	deferred := eventValue(t, out, model.EventDeferredFinancing)
	if deferred <= 0 {
		t.Fatal("expected a deferred financing event")
	}

	corrected := finance.CorrectedValue(deferred, futureDelivery(), out, testNow)
	cap := 300000 * model.DeferredCapStandard
	if corrected > cap+finance.SumTolerance {
		t.Errorf("corrected deferred %.2f exceeds cap %.2f", corrected, cap)
	}
}

// WHY: the allocator must reach a fixed point; re-running it on its own
// output with the same inputs may not move any value by more than the sum
// tolerance.
func TestAllocate_Idempotent(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:     200000,
		SaleValue:          300000,
		GrossMonthlyIncome: 20000,
		InstallmentCount:   36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventDiscount, Value: 150000, Date: testNow},
	}

	first := finance.Allocate(events, ctx)
	second := finance.Allocate(first, ctx)

	for _, typ := range []model.PaymentEventType{
		model.EventSignalAtSigning, model.EventDeferredFinancing,
		model.EventCampaignBonus, model.EventGoodStandingBonus,
	} {
		a := eventValue(t, first, typ)
		b := eventValue(t, second, typ)
		if math.Abs(a-b) > finance.SumTolerance {
			t.Errorf("%s moved from %.2f to %.2f on re-allocation", typ, a, b)
		}
	}
}

// WHY: the allocator must never mutate its input; callers hold the original
// list across the retry loop.
func TestAllocate_DoesNotMutateInput(t *testing.T) {
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:   100000,
		SaleValue:        100000,
		InstallmentCount: 36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventSignalAtSigning, Value: 1234, Date: testNow},
		{Type: model.EventBankFinancing, Value: 50000, Date: testNow},
	}
	snapshot := make([]model.PaymentEvent, len(events))
	copy(snapshot, events)

	finance.Allocate(events, ctx)

	for i := range events {
		if events[i] != snapshot[i] {
			t.Fatalf("input event %d mutated: %+v", i, events[i])
		}
	}
}

// WHY: controlled events must keep their prior dates; locked types default to
// the delivery date and deferred financing defaults to one month after the
// latest staged signal.
func TestAllocate_EventDates(t *testing.T) {
	delivery := futureDelivery()
	signalDate := testNow.AddDate(0, 2, 0)
	ctx := allocationCtx(model.ValuationInputs{
		AppraisalValue:     500000,
		SaleValue:          450000,
		GrossMonthlyIncome: 40000,
		InstallmentCount:   36,
	})
	events := []model.PaymentEvent{
		{Type: model.EventSignal1, Value: 10000, Date: signalDate},
		{Type: model.EventBankFinancing, Value: 300000, Date: delivery},
	}

	out := finance.Allocate(events, ctx)

	for _, e := range out {
		switch e.Type {
		case model.EventGoodStandingBonus:
			if !e.Date.Equal(delivery) {
				t.Errorf("good-standing bonus date = %v, want delivery %v", e.Date, delivery)
			}
		case model.EventDeferredFinancing:
			want := signalDate.AddDate(0, 1, 0)
			if !e.Date.Equal(want) {
				t.Errorf("deferred financing date = %v, want %v", e.Date, want)
			}
		}
	}
}

func TestAllocateUntilValid(t *testing.T) {
	t.Run("converges on a correctable plan", func(t *testing.T) {
		ctx := allocationCtx(model.ValuationInputs{
			AppraisalValue:     500000,
			SaleValue:          450000,
			GrossMonthlyIncome: 40000,
			InstallmentCount:   36,
		})
		events := []model.PaymentEvent{
			{Type: model.EventBankFinancing, Value: 250000, Date: testNow},
		}

		outcome := finance.AllocateUntilValid(events, ctx)
		if !outcome.Converged {
			t.Fatalf("expected convergence, got %+v", outcome.Validation)
		}
		if outcome.Attempts == 0 {
			t.Error("an invalid input plan should require at least one allocation")
		}
		if outcome.Attempts > finance.AllocatorMaxRetries {
			t.Errorf("attempts %d over budget", outcome.Attempts)
		}
	})

	t.Run("already valid plans pass through untouched", func(t *testing.T) {
		ctx := allocationCtx(model.ValuationInputs{
			AppraisalValue:   100000,
			SaleValue:        100000,
			InstallmentCount: 36,
		})
		events := []model.PaymentEvent{
			{Type: model.EventSignalAtSigning, Value: 20000, Date: testNow},
			{Type: model.EventBankFinancing, Value: 80000, Date: testNow},
		}

		outcome := finance.AllocateUntilValid(events, ctx)
		if !outcome.Converged || outcome.Attempts != 0 {
			t.Fatalf("expected zero-attempt convergence, got attempts=%d valid=%v",
				outcome.Attempts, outcome.Converged)
		}
	})

	t.Run("gives up with the terminal state marked", func(t *testing.T) {
		// A campaign bonus over an exhausted remainder can never satisfy the
		// floor rules; the loop must stop at its budget, not spin.
		ctx := allocationCtx(model.ValuationInputs{
			AppraisalValue:   100000,
			SaleValue:        100000,
			InstallmentCount: 36,
		})
		events := []model.PaymentEvent{
			{Type: model.EventBankFinancing, Value: 98000, Date: testNow},
		}

		outcome := finance.AllocateUntilValid(events, ctx)
		if outcome.Converged {
			t.Fatal("expected the loop to give up on a below-floor remainder")
		}
		if outcome.Attempts != finance.AllocatorMaxRetries {
			t.Errorf("attempts = %d, want the full budget %d", outcome.Attempts, finance.AllocatorMaxRetries)
		}
		if outcome.Validation.ViolationMessage == "" {
			t.Error("gave-up outcome must carry the specific violation")
		}
	})
}
