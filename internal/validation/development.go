package validation

import (
	"strings"

	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
)

func ValidateCreateDevelopment(req request.CreateDevelopmentRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Code) == "" {
		errors["code"] = "code is required"
	} else if len(req.Code) > 20 {
		errors["code"] = "code must be 20 characters or less"
	}

	if req.ConstructionStartDate != "" {
		if _, err := ParseDate(req.ConstructionStartDate); err != nil {
			errors["constructionStartDate"] = "must be a valid date"
		}
	}
	if req.DeliveryDate != "" {
		if _, err := ParseDate(req.DeliveryDate); err != nil {
			errors["deliveryDate"] = "must be a valid date"
		}
	}

	if req.DeferredCapOverride != nil && (*req.DeferredCapOverride <= 0 || *req.DeferredCapOverride >= 1) {
		errors["deferredCapOverride"] = "must be a fraction between 0 and 1"
	}
	if req.InstallmentCeilingStandard != nil && *req.InstallmentCeilingStandard < 1 {
		errors["installmentCeilingStandard"] = "must be at least 1"
	}
	if req.InstallmentCeilingSpecial != nil && *req.InstallmentCeilingSpecial < 1 {
		errors["installmentCeilingSpecial"] = "must be at least 1"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateDevelopment(req request.UpdateDevelopmentRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Code != nil {
		if strings.TrimSpace(*req.Code) == "" {
			errors["code"] = "code cannot be empty"
		} else if len(*req.Code) > 20 {
			errors["code"] = "code must be 20 characters or less"
		}
	}

	if req.ConstructionStartDate != nil && *req.ConstructionStartDate != "" {
		if _, err := ParseDate(*req.ConstructionStartDate); err != nil {
			errors["constructionStartDate"] = "must be a valid date"
		}
	}
	if req.DeliveryDate != nil && *req.DeliveryDate != "" {
		if _, err := ParseDate(*req.DeliveryDate); err != nil {
			errors["deliveryDate"] = "must be a valid date"
		}
	}

	if req.DeferredCapOverride != nil && (*req.DeferredCapOverride <= 0 || *req.DeferredCapOverride >= 1) {
		errors["deferredCapOverride"] = "must be a fraction between 0 and 1"
	}
	if req.InstallmentCeilingStandard != nil && *req.InstallmentCeilingStandard < 1 {
		errors["installmentCeilingStandard"] = "must be at least 1"
	}
	if req.InstallmentCeilingSpecial != nil && *req.InstallmentCeilingSpecial < 1 {
		errors["installmentCeilingSpecial"] = "must be at least 1"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
