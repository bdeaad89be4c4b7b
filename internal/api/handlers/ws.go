package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aska-auto/shaken/pkg/ws"
)

// HandleWebSocket 対話型シミュレーター
// GET /ws/simulator
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	client := ws.NewClient(h.wsHub, conn, h.service.NewSimulatorSession())
	client.Register()

	// 読み書きを別ゴルーチンで
	go client.ReadPump()
	go client.WritePump()
}
