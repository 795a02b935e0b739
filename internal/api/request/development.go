package request

// CreateDevelopmentRequest represents the request body for creating a development
type CreateDevelopmentRequest struct {
	Name                       string   `json:"name"`
	Code                       string   `json:"code"`
	ConstructionStartDate      string   `json:"constructionStartDate,omitempty"`
	DeliveryDate               string   `json:"deliveryDate,omitempty"`
	DeferredCapOverride        *float64 `json:"deferredCapOverride,omitempty"`
	InstallmentCeilingStandard *int     `json:"installmentCeilingStandard,omitempty"`
	InstallmentCeilingSpecial  *int     `json:"installmentCeilingSpecial,omitempty"`
}

type UpdateDevelopmentRequest struct {
	Name                       *string  `json:"name,omitempty"`
	Code                       *string  `json:"code,omitempty"`
	ConstructionStartDate      *string  `json:"constructionStartDate,omitempty"`
	DeliveryDate               *string  `json:"deliveryDate,omitempty"`
	DeferredCapOverride        *float64 `json:"deferredCapOverride,omitempty"`
	InstallmentCeilingStandard *int     `json:"installmentCeilingStandard,omitempty"`
	InstallmentCeilingSpecial  *int     `json:"installmentCeilingSpecial,omitempty"`
}
