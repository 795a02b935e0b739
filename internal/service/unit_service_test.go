package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vivendahub/Property-Sales-Backend/internal/apperrors"
	"github.com/vivendahub/Property-Sales-Backend/internal/api/request"
	"github.com/vivendahub/Property-Sales-Backend/internal/model"
	"github.com/vivendahub/Property-Sales-Backend/internal/testutil"
)

func TestUnitService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestUnitService(t, db)

	dev := testutil.NewDevelopment().Build(t, db)

	t.Run("create defaults status to available", func(t *testing.T) {
		unit, err := svc.CreateUnit(request.CreateUnitRequest{
			DevelopmentID:  dev.ID,
			Identifier:     "T1-101",
			AppraisalValue: 260_000,
			SaleValue:      250_000,
		})
		if err != nil {
			t.Fatalf("CreateUnit failed: %v", err)
		}
		if unit.Status != model.UnitAvailable {
			t.Errorf("Expected AVAILABLE, got %s", unit.Status)
		}
	})

	t.Run("duplicate identifier within a development conflicts", func(t *testing.T) {
		_, err := svc.CreateUnit(request.CreateUnitRequest{
			DevelopmentID:  dev.ID,
			Identifier:     "T1-101",
			AppraisalValue: 260_000,
			SaleValue:      250_000,
		})
		if !errors.Is(err, apperrors.ErrDuplicateEntry) {
			t.Errorf("Expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("create under unknown development returns not found", func(t *testing.T) {
		_, err := svc.CreateUnit(request.CreateUnitRequest{
			DevelopmentID:  testutil.MakeID(),
			Identifier:     "T9-999",
			AppraisalValue: 100_000,
			SaleValue:      100_000,
		})
		if !errors.Is(err, apperrors.ErrDevelopmentNotFound) {
			t.Errorf("Expected ErrDevelopmentNotFound, got %v", err)
		}
	})

	t.Run("sold units cannot be deleted", func(t *testing.T) {
		sold := testutil.NewUnit(dev.ID).Sold().Build(t, db)

		err := svc.DeleteUnit(sold.ID)
		if !errors.Is(err, apperrors.ErrUnitInUse) {
			t.Errorf("Expected ErrUnitInUse, got %v", err)
		}
	})

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		unit := testutil.NewUnit(dev.ID).WithSaleValue(300_000).Build(t, db)

		status := model.UnitReserved
		updated, err := svc.UpdateUnit(unit.ID, request.UpdateUnitRequest{Status: &status})
		if err != nil {
			t.Fatalf("UpdateUnit failed: %v", err)
		}
		if updated.Status != model.UnitReserved {
			t.Errorf("Expected RESERVED, got %s", updated.Status)
		}
		if updated.SaleValue != 300_000 {
			t.Errorf("Expected sale value untouched, got %v", updated.SaleValue)
		}
	})
}

func TestDevelopmentService_Summaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestDevelopmentService(t, db)

	devA := testutil.NewDevelopment().WithName("Aurora").Build(t, db)
	devB := testutil.NewDevelopment().WithName("Boreal").Build(t, db)

	testutil.NewUnit(devA.ID).WithSaleValue(200_000).Build(t, db)
	testutil.NewUnit(devA.ID).WithSaleValue(350_000).Sold().Build(t, db)
	testutil.NewUnit(devB.ID).WithSaleValue(180_000).Build(t, db)

	summaries, err := svc.GetDevelopmentSummaries(context.Background())
	if err != nil {
		t.Fatalf("GetDevelopmentSummaries failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}

	byName := map[string]model.DevelopmentSummary{}
	for _, s := range summaries {
		byName[s.Name] = s
	}

	a := byName["Aurora"]
	if a.TotalUnits != 2 || a.AvailableUnits != 1 {
		t.Errorf("Aurora: expected 2 total / 1 available, got %d/%d", a.TotalUnits, a.AvailableUnits)
	}
	if a.MinSaleValue != 200_000 || a.MaxSaleValue != 350_000 {
		t.Errorf("Aurora: expected range 200000-350000, got %v-%v", a.MinSaleValue, a.MaxSaleValue)
	}

	b := byName["Boreal"]
	if b.TotalUnits != 1 || b.AvailableUnits != 1 {
		t.Errorf("Boreal: expected 1 total / 1 available, got %d/%d", b.TotalUnits, b.AvailableUnits)
	}
}
