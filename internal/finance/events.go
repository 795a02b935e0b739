package finance

import (
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// EventValue returns the value of the event with the given type, or 0 when absent.
func EventValue(events []model.PaymentEvent, t model.PaymentEventType) float64 {
	for _, e := range events {
		if e.Type == t {
			return e.Value
		}
	}
	return 0
}

// HasEvent reports whether an event with the given type is present.
func HasEvent(events []model.PaymentEvent, t model.PaymentEventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// EventsTotal sums the values of all events.
func EventsTotal(events []model.PaymentEvent) float64 {
	total := 0.0
	for _, e := range events {
		total += e.Value
	}
	return total
}

// eventDate returns the date of the event with the given type and whether it exists.
func eventDate(events []model.PaymentEvent, t model.PaymentEventType) (time.Time, bool) {
	for _, e := range events {
		if e.Type == t {
			return e.Date, true
		}
	}
	return time.Time{}, false
}

// monthIndex maps a date to an absolute month count, ignoring the day.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// monthsBetween returns the whole-month difference from a to b.
func monthsBetween(a, b time.Time) int {
	return monthIndex(b) - monthIndex(a)
}

// startOfMonth truncates a date to the first day of its month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// rateForMonth returns the monthly rate in force for the given month under
// the two-regime rule: pre-delivery through the delivery month inclusive,
// post-delivery afterwards.
func rateForMonth(month, delivery time.Time) float64 {
	if monthIndex(month) <= monthIndex(delivery) {
		return RatePreDelivery
	}
	return RatePostDelivery
}
