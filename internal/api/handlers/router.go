package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/api/middleware"
	"github.com/aska-auto/shaken/internal/web"
)

// RouterOptions ルーターの設定
type RouterOptions struct {
	RateLimit float64
	RateBurst int
}

// NewRouter ミドルウェア・テンプレート・ルートを組み込んだ gin エンジン
func NewRouter(logger *zap.Logger, h *Handler, opts RouterOptions) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("load static files: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", static)

	h.RegisterRoutes(router, middleware.RateLimit(opts.RateLimit, opts.RateBurst))
	return router, nil
}
