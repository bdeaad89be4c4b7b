package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Sitemap sitemap.xml
// GET /sitemap.xml
func (h *Handler) Sitemap(c *gin.Context) {
	var buf bytes.Buffer
	set := h.seo.Sitemap(h.service.Catalog(), h.service.Now())
	if err := set.Encode(&buf); err != nil {
		h.logger.Error("Failed to encode sitemap", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

// Robots robots.txt
// GET /robots.txt
func (h *Handler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.seo.Robots())
}
