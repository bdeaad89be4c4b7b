package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/api/middleware"
	"github.com/aska-auto/shaken/internal/api/response"
	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/seo"
	"github.com/aska-auto/shaken/internal/service"
	"github.com/aska-auto/shaken/pkg/ws"
)

// Handler HTTP ハンドラ
type Handler struct {
	logger   *zap.Logger
	service  *service.InspectionService
	seo      *seo.Builder
	wsHub    *ws.Hub
	upgrader websocket.Upgrader
}

// NewHandler ハンドラを作成
func NewHandler(logger *zap.Logger, svc *service.InspectionService, builder *seo.Builder, wsHub *ws.Hub) *Handler {
	return &Handler{
		logger:  logger,
		service: svc,
		seo:     builder,
		wsHub:   wsHub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// RegisterRoutes ルート登録
func (h *Handler) RegisterRoutes(r *gin.Engine, limiter gin.HandlerFunc) {
	// API
	api := r.Group("/api", limiter)
	{
		// 車種マスター
		api.GET("/makers", h.ListMakers)
		api.GET("/makers/:maker/vehicles", h.ListMakerVehicles)
		api.GET("/vehicles/:id", h.GetVehicle)

		// 費用計算
		api.GET("/vehicles/:id/inspection", h.GetInspectionCost)
		api.GET("/vehicles/:id/scenarios", h.GetScenarios)
		api.POST("/weight-tax", h.CalculateWeightTax)
		api.GET("/jibaiseki", h.GetJibaiseki)
		api.GET("/stamp-fee", h.GetStampFee)
	}

	// ページ
	r.GET("/", h.HomePage)
	r.GET("/inspection", h.InspectionPage)
	r.GET("/inspection/:maker", h.MakerPage)
	r.GET("/inspection/:maker/:model", h.VehiclePage)
	r.GET("/contact", h.ContactPage)
	r.NoRoute(h.NotFound)

	// シミュレーター（WebSocket）
	r.GET("/ws/simulator", h.HandleWebSocket)

	// SEO
	r.GET("/sitemap.xml", h.Sitemap)
	r.GET("/robots.txt", h.Robots)

	// ヘルスチェック
	r.GET("/health", h.HealthCheck)
}

// HealthCheck ヘルスチェック
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"vehicles":       h.service.Catalog().Len(),
		"reference_year": h.service.ReferenceYear(),
		"ws_clients":     h.wsHub.ClientCount(),
	})
}

// statusOf エラーに対応する HTTP ステータス
func statusOf(err error) int {
	switch {
	case errors.Is(err, catalog.ErrVehicleNotFound),
		errors.Is(err, catalog.ErrMakerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRegistrationYear),
		errors.Is(err, service.ErrInvalidWeight),
		errors.Is(err, models.ErrUnknownCategory),
		errors.Is(err, models.ErrUnsupportedTerm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail エラーをレスポンスに変換（500 はログに残す）
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Error(c, status, "Internal server error")
		return
	}
	_ = c.Error(err)
	response.Error(c, status, err.Error())
}
