package finance

import (
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// PaymentPlan is the output of the price-table amortization solver.
type PaymentPlan struct {
	Installment float64 `json:"installment"`
	Total       float64 `json:"total"`
}

// GracePeriod returns the number of months before builder-financing
// installments begin. It starts at one month, gains one month per staged
// signal event present, and absorbs the whole months by which the delivery
// date is already overdue relative to now.
func GracePeriod(delivery time.Time, events []model.PaymentEvent, now time.Time) int {
	grace := 1
	for _, t := range []model.PaymentEventType{model.EventSignal1, model.EventSignal2, model.EventSignal3} {
		if HasEvent(events, t) {
			grace++
		}
	}
	if overdue := monthsBetween(delivery, now); overdue > 0 {
		grace += overdue
	}
	return grace
}

// InstallmentPlan computes the level builder-financing installment for the
// given principal under the two-regime price table.
//
// Each future period is discounted back to today with the rate in force for
// every intervening month; the principal divided by the summed discount
// factors gives a base installment, which is then compounded forward through
// the grace-period months.
//
// Degenerate input returns a zero plan; a zero annuity factor returns the
// principal as the total with a zero installment.
func InstallmentPlan(principal float64, installmentCount int, delivery time.Time, events []model.PaymentEvent, now time.Time) PaymentPlan {
	if principal <= 0 || installmentCount <= 0 || delivery.IsZero() {
		return PaymentPlan{}
	}

	grace := GracePeriod(delivery, events, now)

	annuity := 0.0
	discount := 1.0
	for k := 1; k <= installmentCount; k++ {
		month := now.AddDate(0, k, 0)
		discount /= 1 + rateForMonth(month, delivery)
		annuity += discount
	}
	if annuity == 0 {
		return PaymentPlan{Installment: 0, Total: principal}
	}

	installment := principal / annuity
	for g := 1; g <= grace; g++ {
		installment *= 1 + rateForMonth(now.AddDate(0, g, 0), delivery)
	}

	return PaymentPlan{
		Installment: installment,
		Total:       installment * float64(installmentCount),
	}
}

// CorrectedValue compounds a raw builder-financing principal forward through
// the grace-period months under the two-regime rate rule, without converting
// to a level installment. This is the value checked against the
// percentage-of-sale-value cap.
func CorrectedValue(principal float64, delivery time.Time, events []model.PaymentEvent, now time.Time) float64 {
	if principal <= 0 || delivery.IsZero() {
		return 0
	}

	grace := GracePeriod(delivery, events, now)
	value := principal
	for g := 1; g <= grace; g++ {
		value *= 1 + rateForMonth(now.AddDate(0, g, 0), delivery)
	}
	return value
}
