package finance_test

import (
	"math"
	"testing"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/finance"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// countingStore wraps a store and counts computations stored through it.
type countingStore struct {
	inner finance.InsuranceStore
	sets  int
}

func (s *countingStore) Get(key string) (model.InsuranceSchedule, bool) { return s.inner.Get(key) }
func (s *countingStore) Set(key string, sched model.InsuranceSchedule) {
	s.sets++
	s.inner.Set(key, sched)
}

func TestInsuranceSchedule(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	delivery := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	newCalc := func() *finance.InsuranceCalculator {
		store := finance.NewMemoryInsuranceStore(finance.InsuranceCacheTTL, clock)
		return finance.NewInsuranceCalculator(store, clock)
	}

	t.Run("progress grows linearly across the construction months", func(t *testing.T) {
		sched := newCalc().Schedule(start, delivery, 1100)

		if len(sched.Breakdown) != 12 {
			t.Fatalf("breakdown length = %d, want 12", len(sched.Breakdown))
		}
		if sched.Breakdown[0].ProgressRate != 0 {
			t.Errorf("first month progress = %.4f, want 0", sched.Breakdown[0].ProgressRate)
		}
		if sched.Breakdown[11].ProgressRate != 1 {
			t.Errorf("last month progress = %.4f, want 1", sched.Breakdown[11].ProgressRate)
		}
		if sched.Breakdown[11].Value != 1100 {
			t.Errorf("last month value = %.2f, want the full reference 1100.00", sched.Breakdown[11].Value)
		}
		if sched.Breakdown[5].MonthLabel != "06/2025" {
			t.Errorf("month label = %q, want 06/2025", sched.Breakdown[5].MonthLabel)
		}
	})

	t.Run("total sums only months from the current month onward", func(t *testing.T) {
		sched := newCalc().Schedule(start, delivery, 1100)

		// Months June through December are payable: indices 5..11, so the
		// total is 1100 * (5+6+...+11)/11 = 5600.
		want := 5600.0
		if math.Abs(sched.Total-want) > 1e-9 {
			t.Errorf("Total = %.4f, want %.4f", sched.Total, want)
		}
		for i, m := range sched.Breakdown {
			wantPayable := i >= 5
			if m.IsPayable != wantPayable {
				t.Errorf("month %d payable = %v, want %v", i, m.IsPayable, wantPayable)
			}
		}
	})

	t.Run("single-month construction yields an empty schedule", func(t *testing.T) {
		sched := newCalc().Schedule(start, start, 1100)
		if len(sched.Breakdown) != 0 || sched.Total != 0 {
			t.Errorf("expected empty schedule, got %+v", sched)
		}
	})

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		store := &countingStore{inner: finance.NewMemoryInsuranceStore(finance.InsuranceCacheTTL, clock)}
		calc := finance.NewInsuranceCalculator(store, clock)

		first := calc.Schedule(start, delivery, 1100)
		second := calc.Schedule(start, delivery, 1100)

		if store.sets != 1 {
			t.Errorf("computed %d times, want 1", store.sets)
		}
		if math.Abs(first.Total-second.Total) > 1e-9 {
			t.Errorf("cached result differs: %.2f vs %.2f", first.Total, second.Total)
		}
	})

	t.Run("cached empty breakdowns are treated as misses", func(t *testing.T) {
		store := &countingStore{inner: finance.NewMemoryInsuranceStore(finance.InsuranceCacheTTL, clock)}
		calc := finance.NewInsuranceCalculator(store, clock)

		calc.Schedule(start, start, 1100)
		calc.Schedule(start, start, 1100)

		if store.sets != 2 {
			t.Errorf("degenerate schedule computed %d times, want 2 (no caching)", store.sets)
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		current := now
		movableClock := func() time.Time { return current }
		store := &countingStore{inner: finance.NewMemoryInsuranceStore(finance.InsuranceCacheTTL, movableClock)}
		calc := finance.NewInsuranceCalculator(store, movableClock)

		calc.Schedule(start, delivery, 1100)
		current = current.Add(finance.InsuranceCacheTTL + time.Second)
		calc.Schedule(start, delivery, 1100)

		if store.sets != 2 {
			t.Errorf("computed %d times, want 2 after expiry", store.sets)
		}
	})
}
