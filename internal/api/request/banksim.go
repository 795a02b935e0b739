package request

// SaveBankSimConfigRequest represents the request body for updating the bank simulator settings
type SaveBankSimConfigRequest struct {
	BaseURL      string `json:"baseUrl"`
	PortalUser   string `json:"portalUser"`
	PortalSecret string `json:"portalSecret"`
	Enabled      bool   `json:"enabled"`
}

// BankSimulateRequest represents the request body for requesting an external financing simulation
type BankSimulateRequest struct {
	BuyerDocument    string  `json:"buyerDocument"`
	GrossIncome      float64 `json:"grossIncome"`
	PropertyValue    float64 `json:"propertyValue"`
	ParticipantCount int     `json:"participantCount"`
	BirthDate        string  `json:"birthDate,omitempty"`
}
