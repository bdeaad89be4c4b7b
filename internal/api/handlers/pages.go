package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/seo"
	"github.com/aska-auto/shaken/internal/web"
)

// page 共通データを作成（失敗時は 500 を返して false）
func (h *Handler) page(c *gin.Context, meta seo.PageMeta, crumbs []seo.Crumb, nodes ...seo.Node) (web.Page, bool) {
	if len(crumbs) > 0 {
		nodes = append(nodes, seo.Breadcrumb(crumbs))
	}
	p, err := web.NewPage(meta, h.service.ReferenceYear(), nodes...)
	if err != nil {
		h.logger.Error("Failed to build page", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return web.Page{}, false
	}
	p.Breadcrumbs = crumbs
	return p, true
}

func (h *Handler) crumbs(items ...seo.Crumb) []seo.Crumb {
	out := []seo.Crumb{{Name: "ホーム", URL: h.seo.URL("/")}}
	return append(out, items...)
}

func (h *Handler) inspectionCrumb() seo.Crumb {
	return seo.Crumb{Name: "車検費用シミュレーション", URL: h.seo.URL("/inspection")}
}

// HomePage トップページ
// GET /
func (h *Handler) HomePage(c *gin.Context) {
	year := h.service.ReferenceYear()
	p, ok := h.page(c, h.seo.Home(year), nil, h.seo.SiteGraph(year))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "home.html", web.HomePage{
		Page:            p,
		YearsInBusiness: p.Company.YearsInBusiness(year),
		Services:        models.Services,
		FAQs:            models.FAQs,
	})
}

// InspectionPage メーカー一覧
// GET /inspection
func (h *Handler) InspectionPage(c *gin.Context) {
	cat := h.service.Catalog()
	p, ok := h.page(c, h.seo.Inspection(h.service.ReferenceYear(), cat.Len()), h.crumbs(h.inspectionCrumb()))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "inspection.html", web.InspectionPage{
		Page:   p,
		Makers: web.Sections(h.service.Makers(), cat.VehiclesByMaker),
	})
}

// MakerPage メーカー別の車種一覧
// GET /inspection/:maker
func (h *Handler) MakerPage(c *gin.Context) {
	mv, err := h.service.MakerVehicles(models.Maker(c.Param("maker")))
	if err != nil {
		h.notFound(c, "メーカーが見つかりません")
		return
	}

	crumbs := h.crumbs(
		h.inspectionCrumb(),
		seo.Crumb{Name: mv.Maker.Name, URL: h.seo.URL(seo.MakerPath(mv.Maker.ID))},
	)
	p, ok := h.page(c, h.seo.Maker(mv.Maker, mv.Vehicles), crumbs)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "maker.html", web.MakerPage{
		Page:     p,
		Maker:    mv.Maker,
		Vehicles: mv.Vehicles,
	})
}

// VehiclePage 車種別の車検費用
// GET /inspection/:maker/:model
func (h *Handler) VehiclePage(c *gin.Context) {
	maker := models.Maker(c.Param("maker"))
	vehicle, err := h.service.Catalog().VehicleOf(maker, c.Param("model"))
	if err != nil {
		h.notFound(c, "車種が見つかりません")
		return
	}
	info, err := h.service.Catalog().Maker(maker)
	if err != nil {
		h.notFound(c, "車種が見つかりません")
		return
	}
	scenarios, err := h.service.Scenarios(vehicle.ID)
	if err != nil {
		h.notFound(c, "車種が見つかりません")
		return
	}

	crumbs := h.crumbs(
		h.inspectionCrumb(),
		seo.Crumb{Name: info.Name, URL: h.seo.URL(seo.MakerPath(maker))},
		seo.Crumb{Name: vehicle.ModelName, URL: h.seo.URL(seo.VehiclePath(vehicle))},
	)
	p, ok := h.page(c,
		h.seo.Vehicle(vehicle, scenarios.ReferenceYear),
		crumbs,
		h.seo.VehicleInspection(vehicle, scenarios.Typical.Cost.TotalLegal, h.service.Now()),
	)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "vehicle.html", web.VehiclePage{
		Page:      p,
		Vehicle:   vehicle,
		Maker:     info,
		Typical:   scenarios.Typical,
		Scenarios: scenarios.Scenarios,
		Others:    web.OtherVehicles(h.service.Catalog().VehiclesByMaker(maker), vehicle),
	})
}

// ContactPage お問い合わせ・アクセス
// GET /contact
func (h *Handler) ContactPage(c *gin.Context) {
	crumbs := h.crumbs(seo.Crumb{Name: "お問い合わせ・アクセス", URL: h.seo.URL("/contact")})
	p, ok := h.page(c, h.seo.Contact(), crumbs)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "contact.html", web.ContactPage{Page: p})
}

// NotFound 未定義のパス
func (h *Handler) NotFound(c *gin.Context) {
	h.notFound(c, "ページが見つかりません")
}

func (h *Handler) notFound(c *gin.Context, message string) {
	p, ok := h.page(c, h.seo.NotFound(message), nil)
	if !ok {
		return
	}
	c.HTML(http.StatusNotFound, "notfound.html", web.NotFoundPage{
		Page:    p,
		Message: message,
	})
}
