package tax

import (
	"testing"
	"time"

	"github.com/aska-auto/shaken/internal/models"
)

var (
	sedan = models.Vehicle{
		ID:        "test-sedan",
		Maker:     "toyota",
		MakerName: "トヨタ",
		ModelName: "テストセダン",
		Category:  models.CategoryStandard,
		Weight:    1500,
	}
	keiHybrid = models.Vehicle{
		ID:        "test-kei",
		Maker:     "suzuki",
		MakerName: "スズキ",
		ModelName: "テスト軽",
		Category:  models.CategoryKei,
		Weight:    870,
		IsHybrid:  true,
	}
)

func TestCalculateInspectionCost_StandardScenario(t *testing.T) {
	got := CalculateInspectionCost(sedan, refYear-5, refYear, true)
	want := models.InspectionCost{
		WeightTax:    12300,
		Jibaiseki:    17650,
		Stamp:        1800,
		BaseFee:      40000,
		TotalLegal:   31750,
		TotalWithFee: 71750,
	}
	if got != want {
		t.Fatalf("cost = %+v, want %+v", got, want)
	}
}

func TestCalculateInspectionCost_HybridKeiOverride(t *testing.T) {
	cost, weightTax := CalculateInspectionDetail(keiHybrid, refYear-20, refYear, true)
	if cost.WeightTax != 0 {
		t.Fatalf("weight tax = %d, want 0", cost.WeightTax)
	}
	if !weightTax.IsReduced {
		t.Error("expected reduced weight tax")
	}
	if cost.BaseFee != 35000 {
		t.Errorf("base fee = %d, want 35000", cost.BaseFee)
	}
}

func TestCalculateInspectionCost_EcoFlags(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*models.Vehicle)
	}{
		{"is_eco", func(v *models.Vehicle) { v.IsEco = true }},
		{"is_hybrid", func(v *models.Vehicle) { v.IsHybrid = true }},
		{"is_electric", func(v *models.Vehicle) { v.IsElectric = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sedan
			tt.mod(&v)
			cost := CalculateInspectionCost(v, refYear-20, refYear, false)
			if cost.WeightTax != 3*2500 {
				t.Errorf("weight tax = %d, want %d", cost.WeightTax, 3*2500)
			}
		})
	}
}

func TestCalculateInspectionCost_Invariants(t *testing.T) {
	vehicles := []models.Vehicle{sedan, keiHybrid,
		{ID: "truck", Category: models.CategoryLarge, Weight: 3100},
		{ID: "kei", Category: models.CategoryKei, Weight: 700},
	}
	for _, v := range vehicles {
		for age := 0; age <= 25; age++ {
			for _, withFee := range []bool{true, false} {
				c := CalculateInspectionCost(v, refYear-age, refYear, withFee)
				if c.TotalLegal != c.WeightTax+c.Jibaiseki+c.Stamp {
					t.Fatalf("%s age=%d: total legal %d != %d+%d+%d", v.ID, age, c.TotalLegal, c.WeightTax, c.Jibaiseki, c.Stamp)
				}
				if c.TotalWithFee != c.TotalLegal+c.BaseFee {
					t.Fatalf("%s age=%d: total with fee %d != %d+%d", v.ID, age, c.TotalWithFee, c.TotalLegal, c.BaseFee)
				}
				if !withFee && c.BaseFee != 0 {
					t.Fatalf("%s age=%d: base fee = %d without fee", v.ID, age, c.BaseFee)
				}
			}
		}
	}
}

func TestCalculateLegalCostOnly(t *testing.T) {
	for _, v := range []models.Vehicle{sedan, keiHybrid} {
		got := CalculateLegalCostOnly(v, refYear-8, refYear)
		want := CalculateInspectionCost(v, refYear-8, refYear, false)
		if got != want {
			t.Errorf("%s: legal only = %+v, want %+v", v.ID, got, want)
		}
		if got.BaseFee != 0 {
			t.Errorf("%s: base fee = %d, want 0", v.ID, got.BaseFee)
		}
	}
}

func TestGetJibaisekiRate(t *testing.T) {
	if got := GetJibaisekiRate(models.CategoryLarge, models.Term37Months); got != 28750 {
		t.Errorf("large/37 = %d, want 28750", got)
	}
	if got := GetJibaisekiRate(models.CategoryKei, models.Term24Months); got != 17540 {
		t.Errorf("kei/24 = %d, want 17540", got)
	}
	for _, c := range models.Categories {
		for _, term := range models.InsuranceTerms {
			if GetJibaisekiRate(c, term) <= 0 {
				t.Errorf("%s/%d: rate must be positive", c, term)
			}
		}
	}
}

func TestGetJibaisekiRate_PanicsOutsideTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported term")
		}
	}()
	GetJibaisekiRate(models.CategoryKei, models.InsuranceTerm(30))
}

func TestGetStampFee(t *testing.T) {
	for _, c := range models.Categories {
		if got := GetStampFee(c); got != 1800 {
			t.Errorf("%s: stamp = %d, want 1800", c, got)
		}
	}
}

func TestScenarios(t *testing.T) {
	scenarios := Scenarios(sedan, refYear)
	if len(scenarios) != 5 {
		t.Fatalf("len = %d, want 5", len(scenarios))
	}
	wantTax := []int{12300, 12300, 12300, 17100, 18900}
	for i, s := range scenarios {
		if s.RegistrationYear != refYear-s.Age {
			t.Errorf("%s: registration year = %d, want %d", s.Label, s.RegistrationYear, refYear-s.Age)
		}
		if s.Cost.WeightTax != wantTax[i] {
			t.Errorf("%s: weight tax = %d, want %d", s.Label, s.Cost.WeightTax, wantTax[i])
		}
	}

	typical := TypicalScenario(scenarios)
	if typical.Age != TypicalAge || typical.Cost.TotalLegal != 31750 {
		t.Errorf("typical = %+v", typical)
	}
}

func TestCalculator_UsesClock(t *testing.T) {
	// 2025-12-31 16:00 UTC は JST で 2026年
	clock := func() time.Time { return time.Date(2025, 12, 31, 16, 0, 0, 0, time.UTC) }
	calc := NewCalculator(clock)

	if got := calc.ReferenceYear(); got != 2026 {
		t.Fatalf("reference year = %d, want 2026", got)
	}

	quote := calc.Quote(sedan, 2021, true)
	if quote.Cost.TotalWithFee != 71750 {
		t.Errorf("total with fee = %d, want 71750", quote.Cost.TotalWithFee)
	}
	if quote.WeightTax.Category != "普通車 1.5t（通常）" {
		t.Errorf("weight tax category = %q", quote.WeightTax.Category)
	}
	if quote.RegistrationYear != 2021 {
		t.Errorf("registration year = %d", quote.RegistrationYear)
	}

	if got := calc.LegalCostOnly(sedan, 2021); got.BaseFee != 0 || got.TotalLegal != 31750 {
		t.Errorf("legal only = %+v", got)
	}
	if got := calc.WeightTax(800, false, 2006, models.CategoryKei); got.Amount != 8800 {
		t.Errorf("kei weight tax = %d, want 8800", got.Amount)
	}
}
