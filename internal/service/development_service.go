package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/repository"
	"github.com/vivendahub/Property-Sales-Backend/internal/validation"
)

// DevelopmentService handles development catalog business logic.
type DevelopmentService struct {
	developmentRepo *repository.DevelopmentRepository
	unitRepo        *repository.UnitRepository
}

// NewDevelopmentService creates a new DevelopmentService with the provided repository dependencies.
func NewDevelopmentService(
	developmentRepo *repository.DevelopmentRepository,
	unitRepo *repository.UnitRepository,
) *DevelopmentService {
	return &DevelopmentService{
		developmentRepo: developmentRepo,
		unitRepo:        unitRepo,
	}
}

// GetAllDevelopments retrieves all developments.
func (s *DevelopmentService) GetAllDevelopments() ([]model.Development, error) {
	return s.developmentRepo.GetDevelopments()
}

// GetDevelopment retrieves a single development by ID.
func (s *DevelopmentService) GetDevelopment(id string) (model.Development, error) {
	return s.developmentRepo.GetDevelopment(id)
}

// GetDevelopmentSummaries aggregates unit counts and sale-value ranges for
// every development, fanning the per-development queries out concurrently.
func (s *DevelopmentService) GetDevelopmentSummaries(ctx context.Context) ([]model.DevelopmentSummary, error) {
	developments, err := s.developmentRepo.GetDevelopments()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.DevelopmentSummary, len(developments))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, d := range developments {
		i, d := i, d
		g.Go(func() error {
			summary, err := s.unitRepo.CountByStatus(d.ID)
			if err != nil {
				return err
			}
			summary.Name = d.Name
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate development summaries: %w", err)
	}

	return summaries, nil
}

// CreateDevelopment creates a new development from the request payload.
func (s *DevelopmentService) CreateDevelopment(req request.CreateDevelopmentRequest) (model.Development, error) {
	d := model.Development{
		ID:                         uuid.New().String(),
		Name:                       req.Name,
		Code:                       req.Code,
		DeferredCapOverride:        req.DeferredCapOverride,
		InstallmentCeilingStandard: 52,
		InstallmentCeilingSpecial:  66,
	}

	if req.ConstructionStartDate != "" {
		t, err := validation.ParseDate(req.ConstructionStartDate)
		if err != nil {
			return model.Development{}, err
		}
		d.ConstructionStartDate = &t
	}
	if req.DeliveryDate != "" {
		t, err := validation.ParseDate(req.DeliveryDate)
		if err != nil {
			return model.Development{}, err
		}
		d.DeliveryDate = &t
	}
	if req.InstallmentCeilingStandard != nil {
		d.InstallmentCeilingStandard = *req.InstallmentCeilingStandard
	}
	if req.InstallmentCeilingSpecial != nil {
		d.InstallmentCeilingSpecial = *req.InstallmentCeilingSpecial
	}

	if err := s.developmentRepo.CreateDevelopment(d); err != nil {
		return model.Development{}, fmt.Errorf("failed to create development: %w", err)
	}
	return d, nil
}

// UpdateDevelopment applies the provided fields to an existing development.
func (s *DevelopmentService) UpdateDevelopment(id string, req request.UpdateDevelopmentRequest) (model.Development, error) {
	d, err := s.developmentRepo.GetDevelopment(id)
	if err != nil {
		return model.Development{}, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Code != nil {
		d.Code = *req.Code
	}
	if req.ConstructionStartDate != nil {
		if *req.ConstructionStartDate == "" {
			d.ConstructionStartDate = nil
		} else {
			t, err := validation.ParseDate(*req.ConstructionStartDate)
			if err != nil {
				return model.Development{}, err
			}
			d.ConstructionStartDate = &t
		}
	}
	if req.DeliveryDate != nil {
		if *req.DeliveryDate == "" {
			d.DeliveryDate = nil
		} else {
			t, err := validation.ParseDate(*req.DeliveryDate)
			if err != nil {
				return model.Development{}, err
			}
			d.DeliveryDate = &t
		}
	}
	if req.DeferredCapOverride != nil {
		d.DeferredCapOverride = req.DeferredCapOverride
	}
	if req.InstallmentCeilingStandard != nil {
		d.InstallmentCeilingStandard = *req.InstallmentCeilingStandard
	}
	if req.InstallmentCeilingSpecial != nil {
		d.InstallmentCeilingSpecial = *req.InstallmentCeilingSpecial
	}

	if err := s.developmentRepo.UpdateDevelopment(d); err != nil {
		return model.Development{}, fmt.Errorf("failed to update development: %w", err)
	}
	return d, nil
}

// DeleteDevelopment removes a development and its units.
func (s *DevelopmentService) DeleteDevelopment(id string) error {
	return s.developmentRepo.DeleteDevelopment(id)
}
