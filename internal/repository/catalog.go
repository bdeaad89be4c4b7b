package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/models"
)

// CatalogRepository 車種マスターの保存先
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository 車種マスターリポジトリを作成
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Count 登録済みの車種数
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return n, nil
}

// Seed カタログを書き込む（既存行は上書き）
func (r *CatalogRepository) Seed(ctx context.Context, c *catalog.Catalog) error {
	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i, m := range c.Makers() {
			batch.Queue(`
				INSERT INTO makers (id, name, name_en, position)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, name_en = EXCLUDED.name_en, position = EXCLUDED.position
			`, string(m.ID), m.Name, m.NameEn, i)
		}
		for i, v := range c.Vehicles() {
			batch.Queue(`
				INSERT INTO vehicles (id, maker, model, model_name, category, weight, displacement, is_eco, is_hybrid, is_electric, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				ON CONFLICT (id) DO UPDATE SET
					maker = EXCLUDED.maker,
					model = EXCLUDED.model,
					model_name = EXCLUDED.model_name,
					category = EXCLUDED.category,
					weight = EXCLUDED.weight,
					displacement = EXCLUDED.displacement,
					is_eco = EXCLUDED.is_eco,
					is_hybrid = EXCLUDED.is_hybrid,
					is_electric = EXCLUDED.is_electric,
					position = EXCLUDED.position
			`, v.ID, string(v.Maker), v.Model, v.ModelName, string(v.Category),
				v.Weight, v.Displacement, v.IsEco, v.IsHybrid, v.IsElectric, i)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		return nil
	})
}

// Load データベースからカタログを構築
func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	makers, err := r.listMakers(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := r.listVehicles(ctx)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(makers, vehicles)
	if err != nil {
		return nil, fmt.Errorf("build catalog from database: %w", err)
	}
	return c, nil
}

func (r *CatalogRepository) listMakers(ctx context.Context) ([]models.MakerInfo, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name, name_en FROM makers ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list makers: %w", err)
	}
	defer rows.Close()

	var makers []models.MakerInfo
	for rows.Next() {
		var m models.MakerInfo
		if err := rows.Scan(&m.ID, &m.Name, &m.NameEn); err != nil {
			return nil, fmt.Errorf("scan maker: %w", err)
		}
		makers = append(makers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate makers: %w", err)
	}
	return makers, nil
}

func (r *CatalogRepository) listVehicles(ctx context.Context) ([]models.Vehicle, error) {
	query := `
		SELECT id, maker, model, model_name, category, weight, displacement, is_eco, is_hybrid, is_electric
		FROM vehicles ORDER BY position, id
	`
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		err := rows.Scan(
			&v.ID,
			&v.Maker,
			&v.Model,
			&v.ModelName,
			&v.Category,
			&v.Weight,
			&v.Displacement,
			&v.IsEco,
			&v.IsHybrid,
			&v.IsElectric,
		)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicles: %w", err)
	}
	return vehicles, nil
}
