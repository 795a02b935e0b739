package validation

import (
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

// ValidateComputeSimulation checks the structural invariants of a computation
// request: event uniqueness, signal ordering, and input ranges. Financial
// feasibility is the engine's job, not validation's.
func ValidateComputeSimulation(req request.ComputeSimulationRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.UnitID); err != nil {
		errors["unitId"] = "must be a valid UUID"
	}

	if req.GrossMonthlyIncome < 0 {
		errors["grossMonthlyIncome"] = "cannot be negative"
	}
	if req.SimulatedBankInstallment < 0 {
		errors["simulatedBankInstallment"] = "cannot be negative"
	}
	if req.FinancingParticipantCount < 1 || req.FinancingParticipantCount > 4 {
		errors["financingParticipantCount"] = "must be between 1 and 4"
	}
	if req.InstallmentCount < 1 {
		errors["installmentCount"] = "must be at least 1"
	}

	switch model.ConditionType(req.ConditionType) {
	case model.ConditionStandard, model.ConditionSpecial:
	default:
		errors["conditionType"] = "must be STANDARD or SPECIAL"
	}

	if req.CampaignActive && req.CampaignPercentCap <= 0 {
		errors["campaignPercentCap"] = "required when the campaign is active"
	}

	if req.NotaryMethod != "" && req.NotaryMethod != "CARD" && req.NotaryMethod != "SLIP" {
		errors["notaryMethod"] = "must be CARD or SLIP"
	}
	if req.NotaryInstallmentCount < 0 {
		errors["notaryInstallmentCount"] = "cannot be negative"
	}

	seen := map[model.PaymentEventType]bool{}
	for _, e := range req.Events {
		t := model.PaymentEventType(e.Type)
		switch t {
		case model.EventSignalAtSigning, model.EventSignal1, model.EventSignal2,
			model.EventSignal3, model.EventDeferredFinancing, model.EventGoodStandingBonus,
			model.EventDiscount, model.EventCampaignBonus, model.EventFundWithdrawal,
			model.EventBankFinancing:
		default:
			errors["events"] = "unknown event type: " + e.Type
			continue
		}
		if seen[t] {
			errors["events"] = "duplicate event type: " + e.Type
			continue
		}
		seen[t] = true

		if e.Value < 0 {
			errors["events"] = "event values cannot be negative"
		}
		if e.Date != "" {
			if _, err := ParseDate(e.Date); err != nil {
				errors["events"] = "event dates must be valid dates"
			}
		}
	}

	// Intermediate signals must be contiguous
	if seen[model.EventSignal2] && !seen[model.EventSignal1] {
		errors["events"] = "SIGNAL_2 requires SIGNAL_1"
	}
	if seen[model.EventSignal3] && (!seen[model.EventSignal1] || !seen[model.EventSignal2]) {
		errors["events"] = "SIGNAL_3 requires SIGNAL_1 and SIGNAL_2"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateSaveBankSimConfig checks the bank simulator settings payload.
func ValidateSaveBankSimConfig(req request.SaveBankSimConfigRequest) error {
	errors := make(map[string]string)

	if req.BaseURL == "" {
		errors["baseUrl"] = "baseUrl is required"
	}
	if req.Enabled {
		if req.PortalUser == "" {
			errors["portalUser"] = "required when enabled"
		}
		if req.PortalSecret == "" {
			errors["portalSecret"] = "required when enabled"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
