package request

// PaymentEventPayload is one payment event supplied by the caller.
// Date is optional; the engine assigns defaults for missing dates.
type PaymentEventPayload struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Date  string  `json:"date,omitempty"`
}

// ComputeSimulationRequest represents the request body for running a payment-flow computation
type ComputeSimulationRequest struct {
	UnitID                    string                `json:"unitId"`
	GrossMonthlyIncome        float64               `json:"grossMonthlyIncome"`
	SimulatedBankInstallment  float64               `json:"simulatedBankInstallment"`
	FinancingParticipantCount int                   `json:"financingParticipantCount"`
	InstallmentCount          int                   `json:"installmentCount"`
	ConditionType             string                `json:"conditionType"`
	Events                    []PaymentEventPayload `json:"events"`
	CampaignActive            bool                  `json:"campaignActive,omitempty"`
	CampaignPercentCap        float64               `json:"campaignPercentCap,omitempty"`
	NotaryMethod              string                `json:"notaryMethod,omitempty"`
	NotaryInstallmentCount    int                   `json:"notaryInstallmentCount,omitempty"`
	Persist                   bool                  `json:"persist,omitempty"`
}
