package tax

import "github.com/aska-auto/shaken/internal/models"

// scenarioAges 経過年数別シミュレーションの対象
var scenarioAges = []struct {
	age   int
	label string
}{
	{3, "新車から3年目（初回車検）"},
	{5, "5年経過"},
	{10, "10年経過"},
	{14, "13年超"},
	{19, "18年超"},
}

// TypicalAge 代表的な費用として表示する経過年数
const TypicalAge = 5

// Scenarios 経過年数別の車検費用を計算
func Scenarios(vehicle models.Vehicle, referenceYear int) []models.CostScenario {
	scenarios := make([]models.CostScenario, 0, len(scenarioAges))
	for _, s := range scenarioAges {
		year := referenceYear - s.age
		scenarios = append(scenarios, models.CostScenario{
			Label:            s.label,
			RegistrationYear: year,
			Age:              s.age,
			Cost:             CalculateInspectionCost(vehicle, year, referenceYear, true),
		})
	}
	return scenarios
}

// TypicalScenario 5年経過車両のシナリオ
func TypicalScenario(scenarios []models.CostScenario) models.CostScenario {
	for _, s := range scenarios {
		if s.Age == TypicalAge {
			return s
		}
	}
	if len(scenarios) > 0 {
		return scenarios[0]
	}
	return models.CostScenario{}
}
