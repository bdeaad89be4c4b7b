// Package catalog 車種マスター
//
// カタログは起動時に一度だけ構築され、以降は読み取り専用。
// ロックなしで複数のリクエストから同時に参照できる。
package catalog

import (
	"errors"
	"fmt"

	"github.com/aska-auto/shaken/internal/models"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrMakerNotFound   = errors.New("maker not found")
	ErrInvalidVehicle  = errors.New("invalid vehicle")
)

// Catalog メーカー・車種の一覧
type Catalog struct {
	makers    []models.MakerInfo
	vehicles  []models.Vehicle
	makerByID map[models.Maker]models.MakerInfo
	byID      map[string]models.Vehicle
	byMaker   map[models.Maker][]models.Vehicle
}

// New カタログを構築（MakerName はメーカー情報から補完する）
func New(makers []models.MakerInfo, vehicles []models.Vehicle) (*Catalog, error) {
	c := &Catalog{
		makers:    make([]models.MakerInfo, 0, len(makers)),
		vehicles:  make([]models.Vehicle, 0, len(vehicles)),
		makerByID: make(map[models.Maker]models.MakerInfo, len(makers)),
		byID:      make(map[string]models.Vehicle, len(vehicles)),
		byMaker:   make(map[models.Maker][]models.Vehicle, len(makers)),
	}

	for _, m := range makers {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("maker %q: id and name are required", m.ID)
		}
		if _, dup := c.makerByID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate maker %q", m.ID)
		}
		c.makerByID[m.ID] = m
		c.makers = append(c.makers, m)
	}

	for _, v := range vehicles {
		maker, ok := c.makerByID[v.Maker]
		if !ok {
			return nil, fmt.Errorf("vehicle %q: maker %q: %w", v.ID, v.Maker, ErrMakerNotFound)
		}
		if err := validate(v); err != nil {
			return nil, err
		}
		if _, dup := c.byID[v.ID]; dup {
			return nil, fmt.Errorf("vehicle %q: duplicate id: %w", v.ID, ErrInvalidVehicle)
		}
		v.MakerName = maker.Name

		c.vehicles = append(c.vehicles, v)
		c.byID[v.ID] = v
		c.byMaker[v.Maker] = append(c.byMaker[v.Maker], v)
	}

	return c, nil
}

func validate(v models.Vehicle) error {
	switch {
	case v.ID == "":
		return fmt.Errorf("vehicle without id: %w", ErrInvalidVehicle)
	case v.ModelName == "":
		return fmt.Errorf("vehicle %q: model name is required: %w", v.ID, ErrInvalidVehicle)
	case !v.Category.Valid():
		return fmt.Errorf("vehicle %q: category %q: %w", v.ID, v.Category, models.ErrUnknownCategory)
	case v.Weight <= 0:
		return fmt.Errorf("vehicle %q: weight must be positive: %w", v.ID, ErrInvalidVehicle)
	case v.Displacement < 0:
		return fmt.Errorf("vehicle %q: displacement must not be negative: %w", v.ID, ErrInvalidVehicle)
	}
	return nil
}

// Makers メーカー一覧
func (c *Catalog) Makers() []models.MakerInfo {
	return append([]models.MakerInfo(nil), c.makers...)
}

// Maker メーカー情報を取得
func (c *Catalog) Maker(id models.Maker) (models.MakerInfo, error) {
	m, ok := c.makerByID[id]
	if !ok {
		return models.MakerInfo{}, fmt.Errorf("get maker %q: %w", id, ErrMakerNotFound)
	}
	return m, nil
}

// Vehicle 車種を取得
func (c *Catalog) Vehicle(id string) (models.Vehicle, error) {
	v, ok := c.byID[id]
	if !ok {
		return models.Vehicle{}, fmt.Errorf("get vehicle %q: %w", id, ErrVehicleNotFound)
	}
	return v, nil
}

// VehicleOf メーカーに属する車種を取得（URL の整合性チェック用）
func (c *Catalog) VehicleOf(maker models.Maker, id string) (models.Vehicle, error) {
	v, err := c.Vehicle(id)
	if err != nil {
		return models.Vehicle{}, err
	}
	if v.Maker != maker {
		return models.Vehicle{}, fmt.Errorf("vehicle %q is not made by %q: %w", id, maker, ErrVehicleNotFound)
	}
	return v, nil
}

// VehiclesByMaker メーカー別の車種一覧
func (c *Catalog) VehiclesByMaker(maker models.Maker) []models.Vehicle {
	return append([]models.Vehicle(nil), c.byMaker[maker]...)
}

// Vehicles 全車種
func (c *Catalog) Vehicles() []models.Vehicle {
	return append([]models.Vehicle(nil), c.vehicles...)
}

// Len 車種数
func (c *Catalog) Len() int {
	return len(c.vehicles)
}
