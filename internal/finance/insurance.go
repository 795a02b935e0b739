package finance

import (
	"fmt"
	"sync"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// InsuranceStore is the injectable cache backing the insurance calculator.
// Implementations handle their own expiry.
type InsuranceStore interface {
	Get(key string) (model.InsuranceSchedule, bool)
	Set(key string, schedule model.InsuranceSchedule)
}

type storeEntry struct {
	schedule model.InsuranceSchedule
	storedAt time.Time
}

// MemoryInsuranceStore is a TTL-bounded in-memory InsuranceStore. Expiry is
// checked lazily on Get; there is no background sweep.
type MemoryInsuranceStore struct {
	mu      sync.Mutex
	entries map[string]storeEntry
	ttl     time.Duration
	clock   func() time.Time
}

// NewMemoryInsuranceStore creates a store with the given TTL. A nil clock
// defaults to time.Now.
func NewMemoryInsuranceStore(ttl time.Duration, clock func() time.Time) *MemoryInsuranceStore {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryInsuranceStore{
		entries: make(map[string]storeEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached schedule when present and unexpired. Expired
// entries are removed on lookup.
func (s *MemoryInsuranceStore) Get(key string) (model.InsuranceSchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return model.InsuranceSchedule{}, false
	}
	if s.clock().Sub(entry.storedAt) > s.ttl {
		delete(s.entries, key)
		return model.InsuranceSchedule{}, false
	}
	return entry.schedule, true
}

// Set stores a schedule under the key, resetting its TTL.
func (s *MemoryInsuranceStore) Set(key string, schedule model.InsuranceSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = storeEntry{schedule: schedule, storedAt: s.clock()}
}

// InsuranceCalculator produces month-by-month construction insurance
// schedules, memoized through the injected store.
type InsuranceCalculator struct {
	store InsuranceStore
	clock func() time.Time
}

// NewInsuranceCalculator wires a calculator to its store. A nil clock
// defaults to time.Now.
func NewInsuranceCalculator(store InsuranceStore, clock func() time.Time) *InsuranceCalculator {
	if clock == nil {
		clock = time.Now
	}
	return &InsuranceCalculator{store: store, clock: clock}
}

// Schedule computes the insurance breakdown between the construction start
// and the delivery date. Each month's premium is proportional to construction
// progress times the reference installment; only months from the current
// month onward count toward the payable total.
//
// Results are cached by (start, delivery, reference value). A cached empty
// breakdown is treated as a miss so a degenerate result from transient
// invalid dates is never served.
func (c *InsuranceCalculator) Schedule(start, delivery time.Time, referenceInstallment float64) model.InsuranceSchedule {
	key := fmt.Sprintf("%d|%d|%.2f", start.Unix(), delivery.Unix(), referenceInstallment)
	if cached, ok := c.store.Get(key); ok && len(cached.Breakdown) > 0 {
		return cached
	}

	schedule := c.compute(start, delivery, referenceInstallment)
	c.store.Set(key, schedule)
	return schedule
}

func (c *InsuranceCalculator) compute(start, delivery time.Time, referenceInstallment float64) model.InsuranceSchedule {
	totalMonths := monthsBetween(start, delivery) + 1
	if totalMonths <= 1 {
		return model.InsuranceSchedule{}
	}

	currentMonth := startOfMonth(c.clock())
	breakdown := make([]model.InsuranceMonth, 0, totalMonths)
	total := 0.0
	for i := 0; i < totalMonths; i++ {
		date := startOfMonth(start).AddDate(0, i, 0)
		progress := float64(i) / float64(totalMonths-1)
		value := progress * referenceInstallment
		payable := !date.Before(currentMonth)
		if payable {
			total += value
		}
		breakdown = append(breakdown, model.InsuranceMonth{
			MonthLabel:   date.Format("01/2006"),
			Value:        value,
			Date:         date,
			IsPayable:    payable,
			ProgressRate: progress,
		})
	}

	return model.InsuranceSchedule{Total: total, Breakdown: breakdown}
}
