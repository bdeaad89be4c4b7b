package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/tax"
)

var (
	ErrInvalidRegistrationYear = errors.New("invalid registration year")
	ErrInvalidWeight           = errors.New("invalid weight")
)

const (
	// 受け付ける初度登録年の下限
	minRegistrationYear = 1950
	// 受け付ける車両重量の上限（kg）
	maxWeightKg = 100000
)

// MakerSummary メーカーと車種数
type MakerSummary struct {
	models.MakerInfo
	VehicleCount int `json:"vehicle_count"`
}

// MakerVehicles メーカーと車種一覧
type MakerVehicles struct {
	Maker    models.MakerInfo `json:"maker"`
	Vehicles []models.Vehicle `json:"vehicles"`
}

// VehicleScenarios 車種の経過年数別費用
type VehicleScenarios struct {
	Vehicle       models.Vehicle        `json:"vehicle"`
	ReferenceYear int                   `json:"reference_year"`
	Scenarios     []models.CostScenario `json:"scenarios"`
	Typical       models.CostScenario   `json:"typical"`
}

// InspectionService 車検費用シミュレーション
type InspectionService struct {
	logger  *zap.Logger
	catalog *catalog.Catalog
	calc    *tax.Calculator
}

// NewInspectionService サービスを作成
func NewInspectionService(logger *zap.Logger, c *catalog.Catalog, calc *tax.Calculator) *InspectionService {
	return &InspectionService{
		logger:  logger,
		catalog: c,
		calc:    calc,
	}
}

// Catalog 車種マスター
func (s *InspectionService) Catalog() *catalog.Catalog {
	return s.catalog
}

// ReferenceYear 計算の基準年
func (s *InspectionService) ReferenceYear() int {
	return s.calc.ReferenceYear()
}

// Now 現在時刻（JST）
func (s *InspectionService) Now() time.Time {
	return s.calc.Now()
}

// DefaultRegistrationYear 初度登録年の既定値（5年経過）
func (s *InspectionService) DefaultRegistrationYear() int {
	return s.ReferenceYear() - tax.TypicalAge
}

// Makers メーカー一覧（車種数付き）
func (s *InspectionService) Makers() []MakerSummary {
	makers := s.catalog.Makers()
	summaries := make([]MakerSummary, 0, len(makers))
	for _, m := range makers {
		summaries = append(summaries, MakerSummary{
			MakerInfo:    m,
			VehicleCount: len(s.catalog.VehiclesByMaker(m.ID)),
		})
	}
	return summaries
}

// MakerVehicles メーカー別の車種一覧
func (s *InspectionService) MakerVehicles(maker models.Maker) (*MakerVehicles, error) {
	info, err := s.catalog.Maker(maker)
	if err != nil {
		return nil, err
	}
	return &MakerVehicles{
		Maker:    info,
		Vehicles: s.catalog.VehiclesByMaker(maker),
	}, nil
}

// Vehicle 車種を取得
func (s *InspectionService) Vehicle(id string) (models.Vehicle, error) {
	return s.catalog.Vehicle(id)
}

// Quote 車種と初度登録年から車検費用を計算
func (s *InspectionService) Quote(vehicleID string, registrationYear int, includeBaseFee bool) (*models.InspectionQuote, error) {
	vehicle, err := s.catalog.Vehicle(vehicleID)
	if err != nil {
		return nil, err
	}
	if err := s.CheckRegistrationYear(registrationYear); err != nil {
		return nil, err
	}

	quote := s.calc.Quote(vehicle, registrationYear, includeBaseFee)
	s.logger.Debug("Calculated inspection cost",
		zap.String("vehicle", vehicle.ID),
		zap.Int("registration_year", registrationYear),
		zap.Bool("include_base_fee", includeBaseFee),
		zap.Int("total_legal", quote.Cost.TotalLegal),
	)
	return &quote, nil
}

// Scenarios 経過年数別の車検費用
func (s *InspectionService) Scenarios(vehicleID string) (*VehicleScenarios, error) {
	vehicle, err := s.catalog.Vehicle(vehicleID)
	if err != nil {
		return nil, err
	}

	ref := s.calc.ReferenceYear()
	scenarios := tax.Scenarios(vehicle, ref)
	return &VehicleScenarios{
		Vehicle:       vehicle,
		ReferenceYear: ref,
		Scenarios:     scenarios,
		Typical:       tax.TypicalScenario(scenarios),
	}, nil
}

// WeightTax 重量税のみを計算
func (s *InspectionService) WeightTax(weight int, isEco bool, registrationYear int, category models.VehicleCategory) (models.WeightTaxResult, error) {
	if weight <= 0 || weight > maxWeightKg {
		return models.WeightTaxResult{}, fmt.Errorf("weight %d: %w", weight, ErrInvalidWeight)
	}
	if err := s.CheckRegistrationYear(registrationYear); err != nil {
		return models.WeightTaxResult{}, err
	}
	return s.calc.WeightTax(weight, isEco, registrationYear, category), nil
}

// CheckRegistrationYear 初度登録年の範囲チェック（未来の年は不可）
func (s *InspectionService) CheckRegistrationYear(year int) error {
	if year < minRegistrationYear || year > s.calc.ReferenceYear() {
		return fmt.Errorf("registration year %d: %w", year, ErrInvalidRegistrationYear)
	}
	return nil
}
