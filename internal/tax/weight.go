// Package tax 車検の法定費用（重量税・自賠責保険・印紙代）の計算
//
// 税率はすべて年度ごとの表として保持する。計算は基準年を明示的に受け取る純粋関数で、
// 現在時刻の参照は Calculator のみが行う。
package tax

import (
	"strconv"

	"github.com/aska-auto/shaken/internal/models"
)

// 重量税の課税単位と重課の閾値
const (
	weightUnitKg = 500
	over13Years  = 13
	over18Years  = 18
)

// bracket 税率区分
type bracket int

const (
	bracketNormal bracket = iota
	bracketOver13
	bracketOver18
	bracketEco
)

// weightTaxRates 区分ごとの税率（2年分・自家用）
type weightTaxRates struct {
	Normal int
	Over13 int
	Over18 int
	Eco    int
}

func (r weightTaxRates) rate(b bracket) int {
	switch b {
	case bracketEco:
		return r.Eco
	case bracketOver18:
		return r.Over18
	case bracketOver13:
		return r.Over13
	default:
		return r.Normal
	}
}

// keiWeightTax 軽自動車の重量税（定額）
var keiWeightTax = weightTaxRates{
	Normal: 6600,
	Over13: 8200,
	Over18: 8800,
	Eco:    0, // エコカー免税
}

// standardWeightTaxPer500kg 普通車の重量税（0.5トンあたり）
var standardWeightTaxPer500kg = weightTaxRates{
	Normal: 4100,
	Over13: 5700,
	Over18: 6300,
	Eco:    2500, // エコカー減税（本則税率）
}

// selectBracket エコカー > 18年超 > 13年超 > 通常 の順で判定
func selectBracket(age int, isEco bool) bracket {
	switch {
	case isEco:
		return bracketEco
	case age > over18Years:
		return bracketOver18
	case age > over13Years:
		return bracketOver13
	default:
		return bracketNormal
	}
}

var bracketLabels = map[bracket]string{
	bracketNormal: "通常",
	bracketOver13: "13年超",
	bracketOver18: "18年超",
}

var bracketDescriptions = map[bracket]string{
	bracketNormal: "標準税率",
	bracketOver13: "初度登録から13年超のため重課",
	bracketOver18: "初度登録から18年超のため重課",
}

// CalculateWeightTax 重量税を計算する
func CalculateWeightTax(params models.WeightTaxParams) models.WeightTaxResult {
	b := selectBracket(params.Age(), params.IsEco)
	if params.Category == models.CategoryKei {
		return keiWeightTaxResult(b)
	}
	return standardWeightTaxResult(params.Weight, b)
}

func keiWeightTaxResult(b bracket) models.WeightTaxResult {
	if b == bracketEco {
		return models.WeightTaxResult{
			Amount:      keiWeightTax.Eco,
			Category:    "軽自動車（エコカー免税）",
			Description: "エコカー減税により免税",
			IsReduced:   true,
		}
	}
	return models.WeightTaxResult{
		Amount:      keiWeightTax.rate(b),
		Category:    "軽自動車（" + bracketLabels[b] + "）",
		Description: bracketDescriptions[b],
	}
}

func standardWeightTaxResult(weight int, b bracket) models.WeightTaxResult {
	units := WeightUnits(weight)
	prefix := "普通車 " + formatTonnage(units) + "t"

	if b == bracketEco {
		return models.WeightTaxResult{
			Amount:      units * standardWeightTaxPer500kg.Eco,
			Category:    prefix + "（エコカー減税）",
			Description: "エコカー減税（本則税率）適用",
			IsReduced:   true,
		}
	}
	return models.WeightTaxResult{
		Amount:      units * standardWeightTaxPer500kg.rate(b),
		Category:    prefix + "（" + bracketLabels[b] + "）",
		Description: bracketDescriptions[b],
	}
}

// WeightUnits 0.5トン単位（切り上げ）の課税単位数
func WeightUnits(weight int) int {
	if weight <= 0 {
		return 0
	}
	return (weight-1)/weightUnitKg + 1
}

// formatTonnage 単位数をトン表記に変換（3 -> "1.5", 4 -> "2"）
func formatTonnage(units int) string {
	return strconv.FormatFloat(float64(units)*weightUnitKg/1000, 'f', -1, 64)
}
