package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedTerm 自賠責の対象外の契約期間
var ErrUnsupportedTerm = errors.New("unsupported insurance term")

// InsuranceTerm 自賠責保険の契約期間（月）
type InsuranceTerm int

const (
	Term24Months InsuranceTerm = 24
	Term25Months InsuranceTerm = 25
	Term36Months InsuranceTerm = 36
	Term37Months InsuranceTerm = 37

	DefaultInsuranceTerm = Term24Months
)

// InsuranceTerms 全契約期間
var InsuranceTerms = []InsuranceTerm{Term24Months, Term25Months, Term36Months, Term37Months}

// ParseInsuranceTerm 月数から契約期間を解析
func ParseInsuranceTerm(months int) (InsuranceTerm, error) {
	t := InsuranceTerm(months)
	if !t.Valid() {
		return 0, fmt.Errorf("parse term %d: %w", months, ErrUnsupportedTerm)
	}
	return t, nil
}

// Valid 有効な契約期間かどうか
func (t InsuranceTerm) Valid() bool {
	switch t {
	case Term24Months, Term25Months, Term36Months, Term37Months:
		return true
	}
	return false
}

// WeightTaxParams 重量税計算パラメータ
type WeightTaxParams struct {
	Weight           int             `json:"weight"`
	IsEco            bool            `json:"is_eco"`
	RegistrationYear int             `json:"registration_year"`
	ReferenceYear    int             `json:"reference_year"` // 経過年数の基準年
	Category         VehicleCategory `json:"category"`
}

// Age 初度登録からの経過年数
func (p WeightTaxParams) Age() int {
	return p.ReferenceYear - p.RegistrationYear
}

// WeightTaxResult 重量税計算結果
type WeightTaxResult struct {
	Amount      int    `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsReduced   bool   `json:"is_reduced"`
}

// InspectionCost 車検費用内訳（円）
type InspectionCost struct {
	WeightTax    int `json:"weight_tax"`
	Jibaiseki    int `json:"jibaiseki"`
	Stamp        int `json:"stamp"`          // 印紙代
	BaseFee      int `json:"base_fee"`       // 基本料金
	TotalLegal   int `json:"total_legal"`    // 法定費用合計
	TotalWithFee int `json:"total_with_fee"` // 総額
}

// InspectionQuote 車検費用 API レスポンス
type InspectionQuote struct {
	Vehicle          Vehicle         `json:"vehicle"`
	Cost             InspectionCost  `json:"cost"`
	WeightTax        WeightTaxResult `json:"weight_tax"`
	RegistrationYear int             `json:"registration_year"`
	CalculatedAt     time.Time       `json:"calculated_at"`
}

// CostScenario 経過年数別の費用シナリオ
type CostScenario struct {
	Label            string         `json:"label"`
	RegistrationYear int            `json:"registration_year"`
	Age              int            `json:"age"`
	Cost             InspectionCost `json:"cost"`
}
