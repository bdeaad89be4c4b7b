package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory 未知の車両区分
var ErrUnknownCategory = errors.New("unknown vehicle category")

// VehicleCategory 車両区分
type VehicleCategory string

const (
	CategoryKei      VehicleCategory = "kei"      // 軽自動車
	CategoryStandard VehicleCategory = "standard" // 普通車
	CategoryLarge    VehicleCategory = "large"    // 大型車
)

// Categories 全車両区分
var Categories = []VehicleCategory{CategoryKei, CategoryStandard, CategoryLarge}

// ParseVehicleCategory 文字列から車両区分を解析
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	c := VehicleCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("parse category %q: %w", s, ErrUnknownCategory)
	}
	return c, nil
}

// Valid 有効な区分かどうか
func (c VehicleCategory) Valid() bool {
	switch c {
	case CategoryKei, CategoryStandard, CategoryLarge:
		return true
	}
	return false
}

// Label 表示名
func (c VehicleCategory) Label() string {
	switch c {
	case CategoryKei:
		return "軽自動車"
	case CategoryLarge:
		return "大型車"
	default:
		return "普通車"
	}
}

// Maker メーカーコード
type Maker string

// MakerInfo メーカー情報
type MakerInfo struct {
	ID     Maker  `json:"id" yaml:"id" db:"id"`
	Name   string `json:"name" yaml:"name" db:"name"`
	NameEn string `json:"name_en" yaml:"name_en" db:"name_en"`
}

// Vehicle 車種情報
type Vehicle struct {
	ID           string          `json:"id" yaml:"id" db:"id"`
	Maker        Maker           `json:"maker" yaml:"maker" db:"maker"`
	MakerName    string          `json:"maker_name" yaml:"maker_name,omitempty" db:"maker_name"`
	Model        string          `json:"model" yaml:"model" db:"model"`
	ModelName    string          `json:"model_name" yaml:"model_name" db:"model_name"`
	Category     VehicleCategory `json:"category" yaml:"category" db:"category"`
	Weight       int             `json:"weight" yaml:"weight" db:"weight"`                   // kg
	Displacement int             `json:"displacement" yaml:"displacement" db:"displacement"` // cc
	IsEco        bool            `json:"is_eco" yaml:"is_eco" db:"is_eco"`
	IsHybrid     bool            `json:"is_hybrid" yaml:"is_hybrid" db:"is_hybrid"`
	IsElectric   bool            `json:"is_electric" yaml:"is_electric" db:"is_electric"`
}

// EcoEligible 重量税のエコカー扱いになるか（ハイブリッド・EV を含む）
func (v Vehicle) EcoEligible() bool {
	return v.IsEco || v.IsHybrid || v.IsElectric
}

// DisplayName メーカー名 + 車種名
func (v Vehicle) DisplayName() string {
	return v.MakerName + " " + v.ModelName
}
