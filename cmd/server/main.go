package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aska-auto/shaken/internal/api/handlers"
	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/config"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/repository"
	"github.com/aska-auto/shaken/internal/seo"
	"github.com/aska-auto/shaken/internal/service"
	"github.com/aska-auto/shaken/internal/tax"
	"github.com/aska-auto/shaken/pkg/ws"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// ロガー初期化
	logger := initLogger(cfg.Debug)
	defer logger.Sync()

	logger.Info("Starting shaken server",
		zap.String("port", cfg.ServerPort),
		zap.String("catalog_source", cfg.CatalogSource),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 車種マスター
	vehicles, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog ready",
		zap.Int("makers", len(vehicles.Makers())),
		zap.Int("vehicles", vehicles.Len()),
	)

	// サービス
	inspectionService := service.NewInspectionService(logger, vehicles, tax.NewCalculator(time.Now))

	// WebSocket Hub
	wsHub := ws.NewHub(logger)
	wsHub.SetWelcome(inspectionService.Welcome)
	go wsHub.Run(ctx)

	// 年が変わったら接続中のクライアントに知らせる
	go inspectionService.WatchReferenceYear(ctx, time.Minute, inspectionService.ReferenceYear(), func(year int) {
		wsHub.BroadcastMessage(ws.MsgTypeReferenceYear, gin.H{"reference_year": year})
	})

	handler := handlers.NewHandler(logger, inspectionService, seo.NewBuilder(cfg.SiteURL, models.Company), wsHub)

	// Gin モード
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// ルーター
	router, err := handlers.NewRouter(logger, handler, handlers.RouterOptions{
		RateLimit: cfg.APIRateLimit,
		RateBurst: cfg.APIRateBurst,
	})
	if err != nil {
		logger.Fatal("Failed to create router", zap.Error(err))
	}

	// HTTP サーバー起動
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", server.Addr))

	// 終了シグナルを待つ
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Hub と年次監視を止める
	cancel()

	// グレースフルシャットダウン
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// loadCatalog 設定に応じて車種マスターを読み込む
func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	embedded, err := catalog.Embedded()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogSource != config.CatalogPostgres {
		return embedded, nil
	}
	return repository.OpenCatalog(ctx, cfg.DatabaseURL, embedded, logger)
}

// initLogger ロガー初期化
func initLogger(debug bool) *zap.Logger {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	logger, _ := config.Build()
	return logger
}
