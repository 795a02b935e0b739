package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestSimulationService_Compute(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSimulationService(t, db, fixedClock)

	dev := testutil.NewDevelopment().
		WithConstructionStartDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		WithDeliveryDate(time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, db)
	unit := testutil.NewUnit(dev.ID).
		WithAppraisalValue(200_000).
		WithSaleValue(200_000).
		Build(t, db)

	baseRequest := func() request.ComputeSimulationRequest {
		return request.ComputeSimulationRequest{
			UnitID:                    unit.ID,
			GrossMonthlyIncome:        20_000,
			SimulatedBankInstallment:  2_000,
			FinancingParticipantCount: 2,
			InstallmentCount:          36,
			ConditionType:             string(model.ConditionStandard),
			Events: []request.PaymentEventPayload{
				{Type: string(model.EventBankFinancing), Value: 150_000},
			},
		}
	}

	t.Run("allocates a convergent plan and fills every result field", func(t *testing.T) {
		result, err := svc.Compute(baseRequest())
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}

		if !result.Validation.IsValid {
			t.Fatalf("Expected valid plan, got %+v", result.Validation)
		}
		if result.Validation.ViolationMessage != "" {
			t.Errorf("Expected no violation, got %q", result.Validation.ViolationMessage)
		}

		total := 0.0
		for _, e := range result.Events {
			total += e.Value
		}
		if diff := total - 200_000; diff > 0.01 || diff < -0.01 {
			t.Errorf("Expected events to sum to 200000, got %v", total)
		}

		if result.FinancedAmount <= 0 {
			t.Errorf("Expected positive deferred financing, got %v", result.FinancedAmount)
		}
		if result.MonthlyInstallment <= 0 {
			t.Errorf("Expected positive installment, got %v", result.MonthlyInstallment)
		}
		if result.TotalFinanced < result.FinancedAmount {
			t.Errorf("Total financed %v below principal %v", result.TotalFinanced, result.FinancedAmount)
		}
		if result.EffectiveRate <= 0 {
			t.Errorf("Expected positive effective rate, got %v", result.EffectiveRate)
		}
		if result.IncomeCommitmentPct <= 0 || result.IncomeCommitmentPct > 0.5 {
			t.Errorf("Income commitment out of range: %v", result.IncomeCommitmentPct)
		}
		if result.DeferredCommitmentPct > model.DeferredCapStandard+0.001 {
			t.Errorf("Deferred commitment %v exceeds cap", result.DeferredCommitmentPct)
		}
		if len(result.Insurance.Breakdown) == 0 {
			t.Error("Expected an insurance breakdown between start and delivery")
		}

		// Tier for 200k appraisal plus one extra participant
		if result.NotaryFee != 3_480+250 {
			t.Errorf("Expected notary fee 3730, got %v", result.NotaryFee)
		}
		if result.NotaryInstallment != result.NotaryFee {
			t.Errorf("Expected single card installment equal to the fee, got %v", result.NotaryInstallment)
		}
		if result.NotaryFeeDisplay != "3.730,00" {
			t.Errorf("Expected notary fee display 3.730,00, got %q", result.NotaryFeeDisplay)
		}
	})

	t.Run("persists a snapshot with the retention window", func(t *testing.T) {
		req := baseRequest()
		req.Persist = true
		if _, err := svc.Compute(req); err != nil {
			t.Fatalf("Compute failed: %v", err)
		}

		snapshots, err := svc.GetSnapshotsByUnit(unit.ID)
		if err != nil {
			t.Fatalf("GetSnapshotsByUnit failed: %v", err)
		}
		if len(snapshots) != 1 {
			t.Fatalf("Expected 1 snapshot, got %d", len(snapshots))
		}
		if !snapshots[0].ExpiresAt.Equal(testNow.AddDate(0, 0, 30)) {
			t.Errorf("Expected 30-day expiry, got %v", snapshots[0].ExpiresAt)
		}
	})

	t.Run("overcommitted fixed events exhaust the allocator", func(t *testing.T) {
		req := baseRequest()
		req.Events = []request.PaymentEventPayload{
			{Type: string(model.EventBankFinancing), Value: 250_000},
		}

		result, err := svc.Compute(req)
		if !errors.Is(err, apperrors.ErrCannotAutoCorrect) {
			t.Fatalf("Expected ErrCannotAutoCorrect, got %v", err)
		}
		if result.Validation.IsValid {
			t.Error("Expected invalid validation record on the partial result")
		}
	})

	t.Run("installment count over the ceiling is a business rule violation", func(t *testing.T) {
		req := baseRequest()
		req.InstallmentCount = 60 // standard ceiling is 52

		result, err := svc.Compute(req)
		if !errors.Is(err, apperrors.ErrBusinessRuleViolation) {
			t.Fatalf("Expected ErrBusinessRuleViolation, got %v", err)
		}
		if result.Validation.ViolationMessage == "" {
			t.Error("Expected a violation message on the partial result")
		}
	})

	t.Run("unknown unit returns not found", func(t *testing.T) {
		req := baseRequest()
		req.UnitID = testutil.MakeID()

		_, err := svc.Compute(req)
		if !errors.Is(err, apperrors.ErrUnitNotFound) {
			t.Fatalf("Expected ErrUnitNotFound, got %v", err)
		}
	})
}

func TestSimulationService_PurgeExpiredSnapshots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestSimulationService(t, db, fixedClock)

	dev := testutil.NewDevelopment().
		WithConstructionStartDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
		WithDeliveryDate(time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, db)
	unit := testutil.NewUnit(dev.ID).Build(t, db)

	req := request.ComputeSimulationRequest{
		UnitID:                    unit.ID,
		GrossMonthlyIncome:        20_000,
		SimulatedBankInstallment:  2_000,
		FinancingParticipantCount: 1,
		InstallmentCount:          36,
		ConditionType:             string(model.ConditionStandard),
		Events: []request.PaymentEventPayload{
			{Type: string(model.EventBankFinancing), Value: 150_000},
		},
		Persist: true,
	}
	if _, err := svc.Compute(req); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// Nothing expires inside the retention window.
	deleted, err := svc.PurgeExpiredSnapshots()
	if err != nil {
		t.Fatalf("PurgeExpiredSnapshots failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Expected 0 purged snapshots, got %d", deleted)
	}
}
