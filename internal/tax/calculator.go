package tax

import (
	"time"

	"github.com/aska-auto/shaken/internal/models"
)

// jst 日本時間（年の切り替わりは JST 基準）
var jst = time.FixedZone("JST", 9*60*60)

// Calculator 現在時刻から基準年を決めて計算する
type Calculator struct {
	now func() time.Time
}

// NewCalculator 計算機を作成（now が nil なら time.Now）
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Now 現在時刻（JST）
func (c *Calculator) Now() time.Time {
	return c.now().In(jst)
}

// ReferenceYear 基準年
func (c *Calculator) ReferenceYear() int {
	return c.Now().Year()
}

// WeightTax 重量税を計算
func (c *Calculator) WeightTax(weight int, isEco bool, registrationYear int, category models.VehicleCategory) models.WeightTaxResult {
	return CalculateWeightTax(models.WeightTaxParams{
		Weight:           weight,
		IsEco:            isEco,
		RegistrationYear: registrationYear,
		ReferenceYear:    c.ReferenceYear(),
		Category:         category,
	})
}

// InspectionCost 車検費用を計算
func (c *Calculator) InspectionCost(vehicle models.Vehicle, registrationYear int, includeBaseFee bool) models.InspectionCost {
	return CalculateInspectionCost(vehicle, registrationYear, c.ReferenceYear(), includeBaseFee)
}

// LegalCostOnly 法定費用のみを計算
func (c *Calculator) LegalCostOnly(vehicle models.Vehicle, registrationYear int) models.InspectionCost {
	return CalculateLegalCostOnly(vehicle, registrationYear, c.ReferenceYear())
}

// Quote 車検費用の見積もり
func (c *Calculator) Quote(vehicle models.Vehicle, registrationYear int, includeBaseFee bool) models.InspectionQuote {
	now := c.Now()
	cost, weightTax := CalculateInspectionDetail(vehicle, registrationYear, now.Year(), includeBaseFee)
	return models.InspectionQuote{
		Vehicle:          vehicle,
		Cost:             cost,
		WeightTax:        weightTax,
		RegistrationYear: registrationYear,
		CalculatedAt:     now,
	}
}

// Scenarios 経過年数別の車検費用
func (c *Calculator) Scenarios(vehicle models.Vehicle) []models.CostScenario {
	return Scenarios(vehicle, c.ReferenceYear())
}
