package validation

import (
	"strings"

	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
)

func validUnitStatus(status string) bool {
	switch status {
	case model.UnitAvailable, model.UnitReserved, model.UnitSold:
		return true
	}
	return false
}

func ValidateCreateUnit(req request.CreateUnitRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.DevelopmentID); err != nil {
		errors["developmentId"] = "must be a valid UUID"
	}

	if strings.TrimSpace(req.Identifier) == "" {
		errors["identifier"] = "identifier is required"
	} else if len(req.Identifier) > 30 {
		errors["identifier"] = "identifier must be 30 characters or less"
	}

	if req.AppraisalValue <= 0 {
		errors["appraisalValue"] = "must be greater than zero"
	}
	if req.SaleValue <= 0 {
		errors["saleValue"] = "must be greater than zero"
	}

	if req.Status != "" && !validUnitStatus(req.Status) {
		errors["status"] = "must be AVAILABLE, RESERVED or SOLD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateUnit(req request.UpdateUnitRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Identifier != nil {
		if strings.TrimSpace(*req.Identifier) == "" {
			errors["identifier"] = "identifier cannot be empty"
		} else if len(*req.Identifier) > 30 {
			errors["identifier"] = "identifier must be 30 characters or less"
		}
	}

	if req.AppraisalValue != nil && *req.AppraisalValue <= 0 {
		errors["appraisalValue"] = "must be greater than zero"
	}
	if req.SaleValue != nil && *req.SaleValue <= 0 {
		errors["saleValue"] = "must be greater than zero"
	}

	if req.Status != nil && !validUnitStatus(*req.Status) {
		errors["status"] = "must be AVAILABLE, RESERVED or SOLD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
