package request

// CreateUnitRequest represents the request body for creating a unit
type CreateUnitRequest struct {
	DevelopmentID  string  `json:"developmentId"`
	Identifier     string  `json:"identifier"`
	AppraisalValue float64 `json:"appraisalValue"`
	SaleValue      float64 `json:"saleValue"`
	Status         string  `json:"status,omitempty"`
}

type UpdateUnitRequest struct {
	Identifier     *string  `json:"identifier,omitempty"`
	AppraisalValue *float64 `json:"appraisalValue,omitempty"`
	SaleValue      *float64 `json:"saleValue,omitempty"`
	Status         *string  `json:"status,omitempty"`
}
