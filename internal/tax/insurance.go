package tax

import (
	"fmt"

	"github.com/aska-auto/shaken/internal/models"
)

// jibaisekiRates 自賠責保険料（2024年4月〜）
var jibaisekiRates = map[models.VehicleCategory]map[models.InsuranceTerm]int{
	models.CategoryKei: {
		models.Term24Months: 17540,
		models.Term25Months: 18040,
		models.Term36Months: 22600,
		models.Term37Months: 23100,
	},
	models.CategoryStandard: {
		models.Term24Months: 17650,
		models.Term25Months: 18160,
		models.Term36Months: 23690,
		models.Term37Months: 24190,
	},
	models.CategoryLarge: {
		models.Term24Months: 20370,
		models.Term25Months: 20950,
		models.Term36Months: 28170,
		models.Term37Months: 28750,
	},
}

// stampFees 印紙代（検査手数料）
var stampFees = map[models.VehicleCategory]int{
	models.CategoryKei:      1800,
	models.CategoryStandard: 1800, // 指定工場
	models.CategoryLarge:    1800,
}

// baseInspectionFees 当店の車検基本料金
var baseInspectionFees = map[models.VehicleCategory]int{
	models.CategoryKei:      35000,
	models.CategoryStandard: 40000,
	models.CategoryLarge:    50000,
}

// GetJibaisekiRate 自賠責保険料を取得
//
// category と term は境界で ParseVehicleCategory / ParseInsuranceTerm により
// 検証済みであること。表にない値はプログラムの誤りとして panic する。
func GetJibaisekiRate(category models.VehicleCategory, term models.InsuranceTerm) int {
	rate, ok := jibaisekiRates[category][term]
	if !ok {
		panic(fmt.Sprintf("tax: no jibaiseki rate for %q/%d months", category, term))
	}
	return rate
}

// GetStampFee 印紙代を取得
func GetStampFee(category models.VehicleCategory) int {
	return mustLookup(stampFees, category, "stamp fee")
}

// GetBaseFee 基本料金を取得
func GetBaseFee(category models.VehicleCategory) int {
	return mustLookup(baseInspectionFees, category, "base fee")
}

func mustLookup(table map[models.VehicleCategory]int, category models.VehicleCategory, what string) int {
	v, ok := table[category]
	if !ok {
		panic(fmt.Sprintf("tax: no %s for category %q", what, category))
	}
	return v
}
