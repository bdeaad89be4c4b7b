package tax

import (
	"math"
	"testing"

	"github.com/aska-auto/shaken/internal/models"
)

const refYear = 2025

func TestCalculateWeightTax_Kei(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		isEco     bool
		amount    int
		category  string
		isReduced bool
	}{
		{"normal", 5, false, 6600, "軽自動車（通常）", false},
		{"age 13 stays normal", 13, false, 6600, "軽自動車（通常）", false},
		{"age 14 is over13", 14, false, 8200, "軽自動車（13年超）", false},
		{"age 18 is still over13", 18, false, 8200, "軽自動車（13年超）", false},
		{"age 19 is over18", 19, false, 8800, "軽自動車（18年超）", false},
		{"eco new", 1, true, 0, "軽自動車（エコカー免税）", true},
		{"eco overrides over18", 25, true, 0, "軽自動車（エコカー免税）", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWeightTax(models.WeightTaxParams{
				Weight:           850,
				IsEco:            tt.isEco,
				RegistrationYear: refYear - tt.age,
				ReferenceYear:    refYear,
				Category:         models.CategoryKei,
			})
			if got.Amount != tt.amount {
				t.Errorf("amount = %d, want %d", got.Amount, tt.amount)
			}
			if got.Category != tt.category {
				t.Errorf("category = %q, want %q", got.Category, tt.category)
			}
			if got.IsReduced != tt.isReduced {
				t.Errorf("is_reduced = %v, want %v", got.IsReduced, tt.isReduced)
			}
			if got.Description == "" {
				t.Error("description is empty")
			}
		})
	}
}

func TestCalculateWeightTax_KeiEcoIgnoresWeight(t *testing.T) {
	for _, weight := range []int{1, 700, 1020, 2500} {
		for age := 0; age <= 30; age++ {
			got := CalculateWeightTax(models.WeightTaxParams{
				Weight:           weight,
				IsEco:            true,
				RegistrationYear: refYear - age,
				ReferenceYear:    refYear,
				Category:         models.CategoryKei,
			})
			if got.Amount != 0 {
				t.Fatalf("weight=%d age=%d: amount = %d, want 0", weight, age, got.Amount)
			}
		}
	}
}

func TestCalculateWeightTax_Standard(t *testing.T) {
	tests := []struct {
		name     string
		category models.VehicleCategory
		weight   int
		age      int
		isEco    bool
		amount   int
		label    string
	}{
		{"1500kg normal", models.CategoryStandard, 1500, 5, false, 12300, "普通車 1.5t（通常）"},
		{"1001kg rounds up to 3 units", models.CategoryStandard, 1001, 5, false, 12300, "普通車 1.5t（通常）"},
		{"1000kg is 2 units", models.CategoryStandard, 1000, 5, false, 8200, "普通車 1t（通常）"},
		{"over13", models.CategoryStandard, 1500, 14, false, 17100, "普通車 1.5t（13年超）"},
		{"age 18 stays over13", models.CategoryStandard, 1500, 18, false, 17100, "普通車 1.5t（13年超）"},
		{"over18", models.CategoryStandard, 1500, 19, false, 18900, "普通車 1.5t（18年超）"},
		{"eco", models.CategoryStandard, 1500, 20, true, 7500, "普通車 1.5t（エコカー減税）"},
		{"large uses the same table", models.CategoryLarge, 2450, 3, false, 20500, "普通車 2.5t（通常）"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWeightTax(models.WeightTaxParams{
				Weight:           tt.weight,
				IsEco:            tt.isEco,
				RegistrationYear: refYear - tt.age,
				ReferenceYear:    refYear,
				Category:         tt.category,
			})
			if got.Amount != tt.amount {
				t.Errorf("amount = %d, want %d", got.Amount, tt.amount)
			}
			if got.Category != tt.label {
				t.Errorf("category = %q, want %q", got.Category, tt.label)
			}
			if got.IsReduced != tt.isEco {
				t.Errorf("is_reduced = %v, want %v", got.IsReduced, tt.isEco)
			}
		})
	}
}

func TestCalculateWeightTax_ProportionalToUnits(t *testing.T) {
	for _, age := range []int{0, 13, 14, 18, 19, 30} {
		for units := 1; units <= 6; units++ {
			one := CalculateWeightTax(models.WeightTaxParams{
				Weight:           units * 500,
				RegistrationYear: refYear - age,
				ReferenceYear:    refYear,
				Category:         models.CategoryStandard,
			})
			two := CalculateWeightTax(models.WeightTaxParams{
				Weight:           units * 2 * 500,
				RegistrationYear: refYear - age,
				ReferenceYear:    refYear,
				Category:         models.CategoryStandard,
			})
			if two.Amount != 2*one.Amount {
				t.Fatalf("age=%d units=%d: doubled amount = %d, want %d", age, units, two.Amount, 2*one.Amount)
			}
		}
	}
}

func TestSelectBracket(t *testing.T) {
	tests := []struct {
		age   int
		isEco bool
		want  bracket
	}{
		{0, false, bracketNormal},
		{13, false, bracketNormal},
		{14, false, bracketOver13},
		{18, false, bracketOver13},
		{19, false, bracketOver18},
		{19, true, bracketEco},
		{-1, false, bracketNormal},
	}
	for _, tt := range tests {
		if got := selectBracket(tt.age, tt.isEco); got != tt.want {
			t.Errorf("selectBracket(%d, %v) = %d, want %d", tt.age, tt.isEco, got, tt.want)
		}
	}
}

func TestWeightUnits(t *testing.T) {
	tests := map[int]int{
		0:    0,
		1:    1,
		500:  1,
		501:  2,
		1001: 3,
		1500: 3,
		2000: 4,

		math.MaxInt: (math.MaxInt-1)/500 + 1,
	}
	for weight, want := range tests {
		if got := WeightUnits(weight); got != want {
			t.Errorf("WeightUnits(%d) = %d, want %d", weight, got, want)
		}
	}
}
