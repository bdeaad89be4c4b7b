package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 統一レスポンス
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success 成功レスポンス
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Error エラーレスポンス
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Success: false,
		Error:   msg,
	})
}

// Abort エラーを返して後続のハンドラを止める
func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Success: false,
		Error:   msg,
	})
}
