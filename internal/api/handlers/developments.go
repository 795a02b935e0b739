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

// DevelopmentHandler handles development catalog HTTP requests.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the DevelopmentService.
type DevelopmentHandler struct {
	developmentService *service.DevelopmentService
}

// NewDevelopmentHandler creates a new DevelopmentHandler with the provided service dependency.
func NewDevelopmentHandler(developmentService *service.DevelopmentService) *DevelopmentHandler {
	return &DevelopmentHandler{
		developmentService: developmentService,
	}
}

// Developments lists all developments.
func (h *DevelopmentHandler) Developments(w http.ResponseWriter, r *http.Request) {
	developments, err := h.developmentService.GetAllDevelopments()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve developments", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, developments)
}

// DevelopmentSummaries lists per-development unit aggregates.
func (h *DevelopmentHandler) DevelopmentSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.developmentService.GetDevelopmentSummaries(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve development summaries", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, summaries)
}

// Development returns one development by ID.
func (h *DevelopmentHandler) Development(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	development, err := h.developmentService.GetDevelopment(id)
	if errors.Is(err, apperrors.ErrDevelopmentNotFound) {
		response.RespondError(w, http.StatusNotFound, "Development not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve development", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, development)
}

// CreateDevelopment creates a new development.
func (h *DevelopmentHandler) CreateDevelopment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDevelopmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDevelopment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	development, err := h.developmentService.CreateDevelopment(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to create development", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, development)
}

// UpdateDevelopment applies a partial update to a development.
func (h *DevelopmentHandler) UpdateDevelopment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	var req request.UpdateDevelopmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateDevelopment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	development, err := h.developmentService.UpdateDevelopment(id, req)
	if errors.Is(err, apperrors.ErrDevelopmentNotFound) {
		response.RespondError(w, http.StatusNotFound, "Development not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to update development", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, development)
}

// DeleteDevelopment removes a development and its units.
func (h *DevelopmentHandler) DeleteDevelopment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	err := h.developmentService.DeleteDevelopment(id)
	if errors.Is(err, apperrors.ErrDevelopmentNotFound) {
		response.RespondError(w, http.StatusNotFound, "Development not found", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to delete development", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}
