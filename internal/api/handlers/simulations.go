package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/response"
	"github.com/vivendahub/Property-Sales-Backend/internal/service"
	"github.com/vivendahub/Property-Sales-Backend/internal/validation"
)

// SimulationHandler handles payment-flow simulation HTTP requests.
type SimulationHandler struct {
	simulationService *service.SimulationService
}

// NewSimulationHandler creates a new SimulationHandler with the provided service dependency.
func NewSimulationHandler(simulationService *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
	}
}

// Compute runs the payment-flow computation for one unit.
//
// Plans that cannot be auto-corrected or that break a business rule return
// 422 with the partial result, so the caller sees the validation record that
// failed rather than an opaque error.
func (h *SimulationHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req request.ComputeSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateComputeSimulation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	result, err := h.simulationService.Compute(req)
	switch {
	case errors.Is(err, apperrors.ErrUnitNotFound):
		response.RespondError(w, http.StatusNotFound, "Unit not found", "")
		return
	case errors.Is(err, apperrors.ErrDevelopmentNotFound):
		response.RespondError(w, http.StatusNotFound, "Development not found", "")
		return
	case errors.Is(err, apperrors.ErrInvalidSaleValue):
		response.RespondError(w, http.StatusBadRequest, "Unit has no valid sale or appraisal value", "")
		return
	case errors.Is(err, apperrors.ErrCannotAutoCorrect),
		errors.Is(err, apperrors.ErrBusinessRuleViolation):
		respondJSON(w, http.StatusUnprocessableEntity, result)
		return
	case err != nil:
		response.RespondError(w, http.StatusInternalServerError, "Failed to compute simulation", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// Snapshot returns one persisted snapshot.
func (h *SimulationHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	snapshot, err := h.simulationService.GetSnapshot(id)
	if errors.Is(err, apperrors.ErrSnapshotNotFound) {
		response.RespondError(w, http.StatusNotFound, "Snapshot not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve snapshot", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, snapshot)
}

// SnapshotsByUnit lists the persisted snapshots for one unit.
func (h *SimulationHandler) SnapshotsByUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "uuid")

	snapshots, err := h.simulationService.GetSnapshotsByUnit(unitID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve snapshots", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, snapshots)
}
