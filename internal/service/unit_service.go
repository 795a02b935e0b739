package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/repository"
)

// UnitService handles unit catalog business logic.
type UnitService struct {
	unitRepo        *repository.UnitRepository
	developmentRepo *repository.DevelopmentRepository
	simulationRepo  *repository.SimulationRepository
}

// NewUnitService creates a new UnitService with the provided repository dependencies.
func NewUnitService(
	unitRepo *repository.UnitRepository,
	developmentRepo *repository.DevelopmentRepository,
	simulationRepo *repository.SimulationRepository,
) *UnitService {
	return &UnitService{
		unitRepo:        unitRepo,
		developmentRepo: developmentRepo,
		simulationRepo:  simulationRepo,
	}
}

// GetUnits retrieves units matching the filter.
func (s *UnitService) GetUnits(filter model.UnitFilter) ([]model.Unit, error) {
	return s.unitRepo.GetUnits(filter)
}

// GetUnit retrieves a single unit by ID.
func (s *UnitService) GetUnit(id string) (model.Unit, error) {
	return s.unitRepo.GetUnit(id)
}

// CreateUnit creates a new unit under an existing development.
func (s *UnitService) CreateUnit(req request.CreateUnitRequest) (model.Unit, error) {
	// The development must exist; foreign keys would catch this too, but the
	// sentinel gives the handler a 404 instead of a 500.
	if _, err := s.developmentRepo.GetDevelopment(req.DevelopmentID); err != nil {
		return model.Unit{}, err
	}

	status := req.Status
	if status == "" {
		status = model.UnitAvailable
	}

	u := model.Unit{
		ID:             uuid.New().String(),
		DevelopmentID:  req.DevelopmentID,
		Identifier:     req.Identifier,
		AppraisalValue: req.AppraisalValue,
		SaleValue:      req.SaleValue,
		Status:         status,
	}

	if err := s.unitRepo.CreateUnit(u); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Unit{}, apperrors.ErrDuplicateEntry
		}
		return model.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}
	return s.unitRepo.GetUnit(u.ID)
}

// UpdateUnit applies the provided fields to an existing unit.
func (s *UnitService) UpdateUnit(id string, req request.UpdateUnitRequest) (model.Unit, error) {
	u, err := s.unitRepo.GetUnit(id)
	if err != nil {
		return model.Unit{}, err
	}

	if req.Identifier != nil {
		u.Identifier = *req.Identifier
	}
	if req.AppraisalValue != nil {
		u.AppraisalValue = *req.AppraisalValue
	}
	if req.SaleValue != nil {
		u.SaleValue = *req.SaleValue
	}
	if req.Status != nil {
		u.Status = *req.Status
	}

	if err := s.unitRepo.UpdateUnit(u); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Unit{}, apperrors.ErrDuplicateEntry
		}
		return model.Unit{}, fmt.Errorf("failed to update unit: %w", err)
	}
	return u, nil
}

// DeleteUnit removes a unit. Sold units are kept for the paper trail.
func (s *UnitService) DeleteUnit(id string) error {
	u, err := s.unitRepo.GetUnit(id)
	if err != nil {
		return err
	}
	if u.Status == model.UnitSold {
		return apperrors.ErrUnitInUse
	}
	return s.unitRepo.DeleteUnit(id)
}
