package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/catalog"
)

// OpenCatalog データベースからカタログを読み込む（空なら seed を書き込んでから読む）
func OpenCatalog(ctx context.Context, databaseURL string, seed *catalog.Catalog, logger *zap.Logger) (*catalog.Catalog, error) {
	db, err := New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return nil, err
	}

	repo := NewCatalogRepository(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := repo.Seed(ctx, seed); err != nil {
			return nil, err
		}
		logger.Info("Seeded catalog", zap.Int("vehicles", seed.Len()))
	}

	c, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("Loaded catalog from database", zap.Int("vehicles", c.Len()))
	return c, nil
}
