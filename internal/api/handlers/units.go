package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/response"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/service"
	"github.com/vivendahub/Property-Sales-Backend/internal/validation"
)

// UnitHandler handles unit catalog HTTP requests.
type UnitHandler struct {
	unitService *service.UnitService
}

// NewUnitHandler creates a new UnitHandler with the provided service dependency.
func NewUnitHandler(unitService *service.UnitService) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
	}
}

// Units lists units, optionally filtered by development and status.
func (h *UnitHandler) Units(w http.ResponseWriter, r *http.Request) {
	filter := model.UnitFilter{
		DevelopmentID: r.URL.Query().Get("developmentId"),
		Status:        r.URL.Query().Get("status"),
	}
	if filter.DevelopmentID != "" {
		if err := validation.ValidateUUID(filter.DevelopmentID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "Invalid developmentId filter", err.Error())
			return
		}
	}

	units, err := h.unitService.GetUnits(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve units", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, units)
}

// Unit returns one unit by ID.
func (h *UnitHandler) Unit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	unit, err := h.unitService.GetUnit(id)
	if errors.Is(err, apperrors.ErrUnitNotFound) {
		response.RespondError(w, http.StatusNotFound, "Unit not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve unit", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, unit)
}

// CreateUnit creates a new unit.
func (h *UnitHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateUnit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	unit, err := h.unitService.CreateUnit(req)
	switch {
	case errors.Is(err, apperrors.ErrDevelopmentNotFound):
		response.RespondError(w, http.StatusNotFound, "Development not found", "")
		return
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		response.RespondError(w, http.StatusConflict, "Unit identifier already exists in this development", "")
		return
	case err != nil:
		response.RespondError(w, http.StatusInternalServerError, "Failed to create unit", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, unit)
}

// UpdateUnit applies a partial update to a unit.
func (h *UnitHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	var req request.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateUnit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	unit, err := h.unitService.UpdateUnit(id, req)
	switch {
	case errors.Is(err, apperrors.ErrUnitNotFound):
		response.RespondError(w, http.StatusNotFound, "Unit not found", "")
		return
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		response.RespondError(w, http.StatusConflict, "Unit identifier already exists in this development", "")
		return
	case err != nil:
		response.RespondError(w, http.StatusInternalServerError, "Failed to update unit", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, unit)
}

// DeleteUnit removes a unit.
func (h *UnitHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	err := h.unitService.DeleteUnit(id)
	switch {
	case errors.Is(err, apperrors.ErrUnitNotFound):
		response.RespondError(w, http.StatusNotFound, "Unit not found", "")
		return
	case errors.Is(err, apperrors.ErrUnitInUse):
		response.RespondError(w, http.StatusConflict, "Sold units cannot be deleted", "")
		return
	case err != nil:
		response.RespondError(w, http.StatusInternalServerError, "Failed to delete unit", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}
