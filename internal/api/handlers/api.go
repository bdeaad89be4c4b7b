package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aska-auto/shaken/internal/api/response"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/service"
	"github.com/aska-auto/shaken/internal/tax"
)

// ListMakers メーカー一覧
// GET /api/makers
func (h *Handler) ListMakers(c *gin.Context) {
	response.Success(c, h.service.Makers())
}

// ListMakerVehicles メーカー別の車種一覧
// GET /api/makers/:maker/vehicles
func (h *Handler) ListMakerVehicles(c *gin.Context) {
	mv, err := h.service.MakerVehicles(models.Maker(c.Param("maker")))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, mv)
}

// GetVehicle 車種詳細
// GET /api/vehicles/:id
func (h *Handler) GetVehicle(c *gin.Context) {
	v, err := h.service.Vehicle(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, v)
}

// GetInspectionCost 車検費用の見積もり
// GET /api/vehicles/:id/inspection?registration_year=2020&include_base_fee=true
func (h *Handler) GetInspectionCost(c *gin.Context) {
	registrationYear := h.service.DefaultRegistrationYear()
	if s := c.Query("registration_year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			h.fail(c, fmt.Errorf("registration year %q: %w", s, service.ErrInvalidRegistrationYear))
			return
		}
		registrationYear = year
	}

	includeBaseFee := true
	if s := c.Query("include_base_fee"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid include_base_fee")
			return
		}
		includeBaseFee = b
	}

	quote, err := h.service.Quote(c.Param("id"), registrationYear, includeBaseFee)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, quote)
}

// GetScenarios 経過年数別の車検費用
// GET /api/vehicles/:id/scenarios
func (h *Handler) GetScenarios(c *gin.Context) {
	scenarios, err := h.service.Scenarios(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, scenarios)
}

// weightTaxRequest 重量税計算のリクエスト
type weightTaxRequest struct {
	Weight           int    `json:"weight" binding:"required"`
	IsEco            bool   `json:"is_eco"`
	RegistrationYear int    `json:"registration_year" binding:"required"`
	Category         string `json:"category" binding:"required"`
}

// CalculateWeightTax 重量税のみを計算
// POST /api/weight-tax
func (h *Handler) CalculateWeightTax(c *gin.Context) {
	var req weightTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	category, err := models.ParseVehicleCategory(req.Category)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.service.WeightTax(req.Weight, req.IsEco, req.RegistrationYear, category)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, result)
}

// GetJibaiseki 自賠責保険料
// GET /api/jibaiseki?category=standard&months=24
func (h *Handler) GetJibaiseki(c *gin.Context) {
	category, err := models.ParseVehicleCategory(c.Query("category"))
	if err != nil {
		h.fail(c, err)
		return
	}

	months, err := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(int(models.DefaultInsuranceTerm))))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid months")
		return
	}
	term, err := models.ParseInsuranceTerm(months)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"category": category,
		"months":   int(term),
		"amount":   tax.GetJibaisekiRate(category, term),
	})
}

// GetStampFee 印紙代
// GET /api/stamp-fee?category=kei
func (h *Handler) GetStampFee(c *gin.Context) {
	category, err := models.ParseVehicleCategory(c.Query("category"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"category": category,
		"amount":   tax.GetStampFee(category),
	})
}
