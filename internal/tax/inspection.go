package tax

import "github.com/aska-auto/shaken/internal/models"

// CalculateInspectionDetail 車検費用と重量税の判定内容を計算
func CalculateInspectionDetail(vehicle models.Vehicle, registrationYear, referenceYear int, includeBaseFee bool) (models.InspectionCost, models.WeightTaxResult) {
	weightTax := CalculateWeightTax(models.WeightTaxParams{
		Weight:           vehicle.Weight,
		IsEco:            vehicle.EcoEligible(),
		RegistrationYear: registrationYear,
		ReferenceYear:    referenceYear,
		Category:         vehicle.Category,
	})

	cost := models.InspectionCost{
		WeightTax: weightTax.Amount,
		Jibaiseki: GetJibaisekiRate(vehicle.Category, models.DefaultInsuranceTerm),
		Stamp:     GetStampFee(vehicle.Category),
	}
	if includeBaseFee {
		cost.BaseFee = GetBaseFee(vehicle.Category)
	}
	cost.TotalLegal = cost.WeightTax + cost.Jibaiseki + cost.Stamp
	cost.TotalWithFee = cost.TotalLegal + cost.BaseFee

	return cost, weightTax
}

// CalculateInspectionCost 車検費用の合計を計算
func CalculateInspectionCost(vehicle models.Vehicle, registrationYear, referenceYear int, includeBaseFee bool) models.InspectionCost {
	cost, _ := CalculateInspectionDetail(vehicle, registrationYear, referenceYear, includeBaseFee)
	return cost
}

// CalculateLegalCostOnly 法定費用のみを計算（基本料金を含めない）
func CalculateLegalCostOnly(vehicle models.Vehicle, registrationYear, referenceYear int) models.InspectionCost {
	return CalculateInspectionCost(vehicle, registrationYear, referenceYear, false)
}
