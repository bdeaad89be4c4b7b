package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/tax"
)

func newTestService(t *testing.T) *InspectionService {
	t.Helper()

	c, err := catalog.New(
		[]models.MakerInfo{{ID: "toyota", Name: "トヨタ"}, {ID: "suzuki", Name: "スズキ"}},
		[]models.Vehicle{
			{ID: "sedan", Maker: "toyota", ModelName: "セダン", Category: models.CategoryStandard, Weight: 1500},
			{ID: "van", Maker: "toyota", ModelName: "バン", Category: models.CategoryLarge, Weight: 1970},
			{ID: "kei", Maker: "suzuki", ModelName: "軽", Category: models.CategoryKei, Weight: 850, IsHybrid: true},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	clock := func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return NewInspectionService(zap.NewNop(), c, tax.NewCalculator(clock))
}

func TestQuote(t *testing.T) {
	svc := newTestService(t)

	quote, err := svc.Quote("sedan", 2020, true)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if quote.Cost.TotalLegal != 31750 || quote.Cost.TotalWithFee != 71750 {
		t.Errorf("cost = %+v", quote.Cost)
	}
	if quote.Vehicle.MakerName != "トヨタ" {
		t.Errorf("maker name = %q", quote.Vehicle.MakerName)
	}

	legal, err := svc.Quote("sedan", 2020, false)
	if err != nil {
		t.Fatal(err)
	}
	if legal.Cost.BaseFee != 0 || legal.Cost.TotalWithFee != legal.Cost.TotalLegal {
		t.Errorf("legal only cost = %+v", legal.Cost)
	}
}

func TestQuote_Errors(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Quote("missing", 2020, true); !errors.Is(err, catalog.ErrVehicleNotFound) {
		t.Errorf("err = %v, want ErrVehicleNotFound", err)
	}
	if _, err := svc.Quote("sedan", 2026, true); !errors.Is(err, ErrInvalidRegistrationYear) {
		t.Errorf("future year err = %v", err)
	}
	if _, err := svc.Quote("sedan", 1900, true); !errors.Is(err, ErrInvalidRegistrationYear) {
		t.Errorf("old year err = %v", err)
	}
}

func TestMakers(t *testing.T) {
	svc := newTestService(t)

	makers := svc.Makers()
	if len(makers) != 2 {
		t.Fatalf("len = %d", len(makers))
	}
	if makers[0].ID != "toyota" || makers[0].VehicleCount != 2 {
		t.Errorf("makers[0] = %+v", makers[0])
	}

	mv, err := svc.MakerVehicles("suzuki")
	if err != nil || len(mv.Vehicles) != 1 {
		t.Errorf("MakerVehicles(suzuki) = %+v, %v", mv, err)
	}
	if _, err := svc.MakerVehicles("honda"); !errors.Is(err, catalog.ErrMakerNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestScenarios(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Scenarios("kei")
	if err != nil {
		t.Fatal(err)
	}
	if got.ReferenceYear != 2025 {
		t.Errorf("reference year = %d", got.ReferenceYear)
	}
	for _, s := range got.Scenarios {
		if s.Cost.WeightTax != 0 {
			t.Errorf("%s: hybrid kei weight tax = %d, want 0", s.Label, s.Cost.WeightTax)
		}
	}
	if got.Typical.Age != tax.TypicalAge {
		t.Errorf("typical age = %d", got.Typical.Age)
	}
}

func TestWeightTax(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.WeightTax(1500, false, 2006, models.CategoryStandard)
	if err != nil {
		t.Fatal(err)
	}
	if res.Amount != 18900 {
		t.Errorf("amount = %d, want 18900", res.Amount)
	}

	for _, weight := range []int{0, -1, maxWeightKg + 1, math.MaxInt} {
		if _, err := svc.WeightTax(weight, false, 2006, models.CategoryStandard); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("weight %d: err = %v, want ErrInvalidWeight", weight, err)
		}
	}
	if res, err := svc.WeightTax(maxWeightKg, false, 2006, models.CategoryLarge); err != nil || res.Amount <= 0 {
		t.Errorf("max weight: res = %+v, err = %v", res, err)
	}
}

func TestDefaultRegistrationYear(t *testing.T) {
	svc := newTestService(t)
	if got := svc.DefaultRegistrationYear(); got != 2020 {
		t.Errorf("default registration year = %d, want 2020", got)
	}
}
