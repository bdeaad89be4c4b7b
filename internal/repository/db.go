package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB データベース接続プール
type DB struct {
	Pool *pgxpool.Pool
}

// New データベースに接続
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// 起動時に一度読むだけなので小さめ
	config.MaxConns = 4
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close 接続プールを閉じる
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate マイグレーションを実行
func (db *DB) Migrate(ctx context.Context) error {
	migrations := []string{
		migrationCreateMakers,
		migrationCreateVehicles,
		migrationCreateVehiclesMakerIndex,
	}

	for _, m := range migrations {
		if _, err := db.Pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
	}

	return nil
}

const migrationCreateMakers = `
CREATE TABLE IF NOT EXISTS makers (
    id VARCHAR(32) PRIMARY KEY,
    name VARCHAR(64) NOT NULL,
    name_en VARCHAR(64) NOT NULL DEFAULT '',
    position INTEGER NOT NULL DEFAULT 0
)`

const migrationCreateVehicles = `
CREATE TABLE IF NOT EXISTS vehicles (
    id VARCHAR(64) PRIMARY KEY,
    maker VARCHAR(32) NOT NULL REFERENCES makers(id),
    model VARCHAR(64) NOT NULL DEFAULT '',
    model_name VARCHAR(128) NOT NULL,
    category VARCHAR(16) NOT NULL CHECK (category IN ('kei', 'standard', 'large')),
    weight INTEGER NOT NULL CHECK (weight > 0),
    displacement INTEGER NOT NULL DEFAULT 0 CHECK (displacement >= 0),
    is_eco BOOLEAN NOT NULL DEFAULT FALSE,
    is_hybrid BOOLEAN NOT NULL DEFAULT FALSE,
    is_electric BOOLEAN NOT NULL DEFAULT FALSE,
    position INTEGER NOT NULL DEFAULT 0
)`

const migrationCreateVehiclesMakerIndex = `
CREATE INDEX IF NOT EXISTS idx_vehicles_maker ON vehicles(maker, position)`
