package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/finance"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/money"
	"github.com/vivendahub/Property-Sales-Backend/internal/repository"
	"github.com/vivendahub/Property-Sales-Backend/internal/validation"
)

// SimulationService orchestrates the full payment-flow computation: event
// allocation, the price-table installment, insurance, business rules, the
// effective rate and notary fees, plus snapshot persistence.
type SimulationService struct {
	unitRepo        *repository.UnitRepository
	developmentRepo *repository.DevelopmentRepository
	simulationRepo  *repository.SimulationRepository
	insurance       *finance.InsuranceCalculator
	retentionDays   int
	now             func() time.Time
}

// NewSimulationService creates a new SimulationService with the provided dependencies.
// A nil now defaults to time.Now.
func NewSimulationService(
	unitRepo *repository.UnitRepository,
	developmentRepo *repository.DevelopmentRepository,
	simulationRepo *repository.SimulationRepository,
	insurance *finance.InsuranceCalculator,
	retentionDays int,
	now func() time.Time,
) *SimulationService {
	if now == nil {
		now = time.Now
	}
	return &SimulationService{
		unitRepo:        unitRepo,
		developmentRepo: developmentRepo,
		simulationRepo:  simulationRepo,
		insurance:       insurance,
		retentionDays:   retentionDays,
		now:             now,
	}
}

// Compute runs the whole simulation pipeline for one unit.
//
// On apperrors.ErrCannotAutoCorrect and apperrors.ErrBusinessRuleViolation the
// returned result still carries the validation record so the handler can show
// the caller what failed.
func (s *SimulationService) Compute(req request.ComputeSimulationRequest) (model.ComputationResult, error) {
	unit, err := s.unitRepo.GetUnit(req.UnitID)
	if err != nil {
		return model.ComputationResult{}, err
	}
	dev, err := s.developmentRepo.GetDevelopment(unit.DevelopmentID)
	if err != nil {
		return model.ComputationResult{}, err
	}
	if unit.SaleValue <= 0 || unit.AppraisalValue <= 0 {
		return model.ComputationResult{}, apperrors.ErrInvalidSaleValue
	}

	now := s.now().UTC()
	condition := model.ConditionType(req.ConditionType)
	inputs := model.ValuationInputs{
		AppraisalValue:            unit.AppraisalValue,
		SaleValue:                 unit.SaleValue,
		GrossMonthlyIncome:        req.GrossMonthlyIncome,
		SimulatedBankInstallment:  req.SimulatedBankInstallment,
		FinancingParticipantCount: req.FinancingParticipantCount,
		InstallmentCount:          req.InstallmentCount,
		ConditionType:             condition,
	}

	events, err := s.buildEvents(req.Events, dev.DeliveryDate, now)
	if err != nil {
		return model.ComputationResult{}, err
	}

	actx := finance.AllocationContext{
		Inputs:             inputs,
		DeliveryDate:       dev.DeliveryDate,
		CampaignActive:     req.CampaignActive,
		CampaignPercentCap: req.CampaignPercentCap,
		DeferredPercentCap: dev.DeferredCap(condition),
		Now:                now,
	}
	outcome := finance.AllocateUntilValid(events, actx)

	result := model.ComputationResult{
		Events:     outcome.Events,
		Validation: outcome.Validation,
	}
	if !outcome.Converged {
		return result, apperrors.ErrCannotAutoCorrect
	}

	deferred := finance.EventValue(outcome.Events, model.EventDeferredFinancing)
	var plan finance.PaymentPlan
	if dev.DeliveryDate != nil {
		plan = finance.InstallmentPlan(deferred, req.InstallmentCount, *dev.DeliveryDate, outcome.Events, now)
	}

	var insurance model.InsuranceSchedule
	if dev.ConstructionStartDate != nil && dev.DeliveryDate != nil {
		insurance = s.insurance.Schedule(*dev.ConstructionStartDate, *dev.DeliveryDate, req.SimulatedBankInstallment)
	}

	violation := finance.CheckBusinessRules(finance.BusinessRuleInput{
		Events:             outcome.Events,
		Inputs:             inputs,
		DeliveryDate:       dev.DeliveryDate,
		Installment:        plan.Installment,
		Insurance:          insurance,
		DeferredPercentCap: dev.DeferredCap(condition),
		InstallmentCeiling: dev.InstallmentCeiling(condition),
		Now:                now,
	})
	if violation != "" {
		result.Validation.ViolationMessage = violation
		return result, apperrors.ErrBusinessRuleViolation
	}

	result.FinancedAmount = deferred
	result.MonthlyInstallment = plan.Installment
	result.TotalFinanced = plan.Total
	result.EffectiveRate = finance.SolveRate(req.InstallmentCount, plan.Installment, deferred)
	result.Insurance = insurance

	notaryTotal := finance.NotaryFee(unit.AppraisalValue) +
		finance.NotaryParticipantSurcharge*float64(req.FinancingParticipantCount-1)
	result.NotaryFee = notaryTotal
	result.NotaryInstallment = finance.NotaryInstallment(
		notaryTotal, notaryCount(req), notaryMethod(req.NotaryMethod))
	result.MonthlyInstallmentDisplay = money.FormatAmount(plan.Installment)
	result.NotaryFeeDisplay = money.FormatAmount(notaryTotal)

	if req.GrossMonthlyIncome > 0 {
		result.IncomeCommitmentPct = (plan.Installment + req.SimulatedBankInstallment) / req.GrossMonthlyIncome
	}
	if deferred > 0 && dev.DeliveryDate != nil {
		corrected := finance.CorrectedValue(deferred, *dev.DeliveryDate, outcome.Events, now)
		result.DeferredCommitmentPct = corrected / unit.SaleValue
	}

	if req.Persist {
		snapshot := model.SimulationSnapshot{
			ID:        uuid.New().String(),
			UnitID:    unit.ID,
			Inputs:    inputs,
			Events:    outcome.Events,
			Result:    result,
			CreatedAt: now,
			ExpiresAt: now.AddDate(0, 0, s.retentionDays),
		}
		if err := s.simulationRepo.CreateSnapshot(snapshot); err != nil {
			return result, fmt.Errorf("failed to persist simulation snapshot: %w", err)
		}
	}

	return result, nil
}

// buildEvents converts the request payloads into model events, filling in
// default dates the same way the allocator does for its own events.
func (s *SimulationService) buildEvents(payloads []request.PaymentEventPayload, delivery *time.Time, now time.Time) ([]model.PaymentEvent, error) {
	events := make([]model.PaymentEvent, 0, len(payloads))
	for _, p := range payloads {
		e := model.PaymentEvent{
			Type:  model.PaymentEventType(p.Type),
			Value: p.Value,
		}
		if p.Date != "" {
			d, err := validation.ParseDate(p.Date)
			if err != nil {
				return nil, err
			}
			e.Date = d
		} else if e.Type.DeliveryLocked() && delivery != nil {
			e.Date = *delivery
		} else {
			e.Date = now
		}
		events = append(events, e)
	}
	return events, nil
}

func notaryMethod(method string) finance.NotaryMethod {
	if method == "SLIP" {
		return finance.NotaryMethodSlip
	}
	return finance.NotaryMethodCard
}

func notaryCount(req request.ComputeSimulationRequest) int {
	if req.NotaryInstallmentCount > 0 {
		return req.NotaryInstallmentCount
	}
	return 1
}

// GetSnapshot retrieves one persisted snapshot.
func (s *SimulationService) GetSnapshot(id string) (model.SimulationSnapshot, error) {
	return s.simulationRepo.GetSnapshot(id)
}

// GetSnapshotsByUnit retrieves the persisted snapshots for a unit.
func (s *SimulationService) GetSnapshotsByUnit(unitID string) ([]model.SimulationSnapshot, error) {
	return s.simulationRepo.GetSnapshotsByUnit(unitID)
}

// PurgeExpiredSnapshots removes snapshots past their expiry. Called by the
// nightly cron job.
func (s *SimulationService) PurgeExpiredSnapshots() (int64, error) {
	return s.simulationRepo.PurgeExpired(s.now())
}
