package banksim

// SimulationRequest is the payload sent to the bank simulator portal.
type SimulationRequest struct {
	BuyerDocument    string  `json:"buyerDocument"`
	GrossIncome      float64 `json:"grossIncome"`
	PropertyValue    float64 `json:"propertyValue"`
	ParticipantCount int     `json:"participantCount"`
	BirthDate        string  `json:"birthDate,omitempty"`
}

// SimulationResult is the bank simulator's answer for one financing request.
type SimulationResult struct {
	SimulatedInstallment float64 `json:"simulatedInstallment"`
	GrossIncome          float64 `json:"grossIncome"`
	BankFinancing        float64 `json:"bankFinancing"`
	InterestRateYearly   float64 `json:"interestRateYearly"`
	TermMonths           int     `json:"termMonths"`
}

// Response is the raw envelope returned by the portal API.
type Response struct {
	Result *SimulationResult `json:"result"`
	Error  *string           `json:"error"`
}
