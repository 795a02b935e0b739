package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/response"
	"github.com/vivendahub/Property-Sales-Backend/internal/service"
	"github.com/vivendahub/Property-Sales-Backend/internal/validation"
)

// BankSimHandler handles bank simulator integration HTTP requests.
type BankSimHandler struct {
	bankSimService *service.BankSimService
}

// NewBankSimHandler creates a new BankSimHandler with the provided service dependency.
func NewBankSimHandler(bankSimService *service.BankSimService) *BankSimHandler {
	return &BankSimHandler{
		bankSimService: bankSimService,
	}
}

// BankSimConfigResponse exposes the integration settings without credentials.
type BankSimConfigResponse struct {
	BaseURL string `json:"baseUrl"`
	Enabled bool   `json:"enabled"`
}

// Config returns the current bank simulator settings.
func (h *BankSimHandler) Config(w http.ResponseWriter, r *http.Request) {
	c, err := h.bankSimService.GetConfig()
	if errors.Is(err, apperrors.ErrBankSimConfigNotFound) {
		response.RespondError(w, http.StatusNotFound, "Bank simulator not configured", "")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve bank simulator config", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, BankSimConfigResponse{
		BaseURL: c.BaseURL,
		Enabled: c.Enabled,
	})
}

// SaveConfig replaces the bank simulator settings.
func (h *BankSimHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	var req request.SaveBankSimConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveBankSimConfig(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	c, err := h.bankSimService.SaveConfig(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to save bank simulator config", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, BankSimConfigResponse{
		BaseURL: c.BaseURL,
		Enabled: c.Enabled,
	})
}

// Simulate requests a financing simulation from the external portal.
func (h *BankSimHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req request.BankSimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.bankSimService.Simulate(r.Context(), req)
	switch {
	case errors.Is(err, apperrors.ErrBankSimConfigNotFound):
		response.RespondError(w, http.StatusNotFound, "Bank simulator not configured", "")
		return
	case errors.Is(err, apperrors.ErrBankSimDisabled):
		response.RespondError(w, http.StatusConflict, "Bank simulator integration is disabled", "")
		return
	case err != nil:
		response.RespondError(w, http.StatusBadGateway, "Bank simulator request failed", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}
