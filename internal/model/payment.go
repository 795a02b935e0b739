package model

import "time"

// PaymentEventType identifies a line item in a payment plan.
type PaymentEventType string

// Payment event types. At most one event per type may exist in a plan.
const (
	EventSignalAtSigning   PaymentEventType = "SIGNAL_AT_SIGNING"
	EventSignal1           PaymentEventType = "SIGNAL_1"
	EventSignal2           PaymentEventType = "SIGNAL_2"
	EventSignal3           PaymentEventType = "SIGNAL_3"
	EventDeferredFinancing PaymentEventType = "DEFERRED_BUILDER_FINANCING"
	EventGoodStandingBonus PaymentEventType = "GOOD_STANDING_BONUS"
	EventDiscount          PaymentEventType = "DISCOUNT"
	EventCampaignBonus     PaymentEventType = "CAMPAIGN_BONUS"
	EventFundWithdrawal    PaymentEventType = "GOVERNMENT_FUND_WITHDRAWAL"
	EventBankFinancing     PaymentEventType = "BANK_FINANCING"
)

// PaymentEvent is a single payment-plan line item.
type PaymentEvent struct {
	Type  PaymentEventType `json:"type"`
	Value float64          `json:"value"`
	Date  time.Time        `json:"date"`
}

// DeliveryLocked reports whether this event type has its date locked to the
// development's delivery date when one is known.
func (t PaymentEventType) DeliveryLocked() bool {
	switch t {
	case EventGoodStandingBonus, EventBankFinancing, EventCampaignBonus,
		EventFundWithdrawal, EventDiscount:
		return true
	}
	return false
}

// ConditionType selects between the standard and special commercial conditions
// of a development, which drive the deferred-financing cap and the
// installment-count ceiling.
type ConditionType string

const (
	ConditionStandard ConditionType = "STANDARD"
	ConditionSpecial  ConditionType = "SPECIAL"
)

// ValuationInputs carries the buyer- and unit-level figures a simulation runs on.
type ValuationInputs struct {
	AppraisalValue            float64       `json:"appraisalValue"`
	SaleValue                 float64       `json:"saleValue"`
	GrossMonthlyIncome        float64       `json:"grossMonthlyIncome"`
	SimulatedBankInstallment  float64       `json:"simulatedBankInstallment"`
	FinancingParticipantCount int           `json:"financingParticipantCount"`
	InstallmentCount          int           `json:"installmentCount"`
	ConditionType             ConditionType `json:"conditionType"`
}
