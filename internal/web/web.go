// Package web サイトの HTML テンプレート
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/seo"
	"github.com/aska-auto/shaken/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FuncMap テンプレート関数
var FuncMap = template.FuncMap{
	"yen":           seo.FormatYen,
	"number":        seo.FormatNumber,
	"categoryLabel": func(c models.VehicleCategory) string { return c.Label() },
	"vehiclePath":   seo.VehiclePath,
	"makerPath":     seo.MakerPath,
	// tel: リンク（html/template の URL フィルタを通さない）
	"tel": func(c models.CompanyInfo) template.URL { return template.URL(c.PhoneTel()) },
}

// Templates 全テンプレートを読み込む
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Static /static 配下で配信するファイル
func Static() (http.FileSystem, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}
	return http.FS(sub), nil
}

// Page 全ページ共通のデータ
type Page struct {
	Meta        seo.PageMeta
	JSONLD      []template.JS
	Breadcrumbs []seo.Crumb
	Company     models.CompanyInfo
	Year        int
}

// NewPage 共通データを作成（構造化データは JSON に変換して埋め込む）
func NewPage(meta seo.PageMeta, year int, nodes ...seo.Node) (Page, error) {
	p := Page{
		Meta:    meta,
		Company: models.Company,
		Year:    year,
	}
	for _, n := range nodes {
		data, err := seo.Marshal(n)
		if err != nil {
			return Page{}, err
		}
		// json.Marshal は <, >, & をエスケープするので script 内に安全に埋め込める
		p.JSONLD = append(p.JSONLD, template.JS(data))
	}
	return p, nil
}

// HomePage トップページ
type HomePage struct {
	Page
	YearsInBusiness int
	Services        []models.Service
	FAQs            []models.FAQ
}

// InspectionPage メーカー一覧
type InspectionPage struct {
	Page
	Makers []MakerSection
}

// MakerSection メーカーと車種
type MakerSection struct {
	Maker    models.MakerInfo
	Vehicles []models.Vehicle
}

// MakerPage メーカー別ページ
type MakerPage struct {
	Page
	Maker    models.MakerInfo
	Vehicles []models.Vehicle
}

// VehiclePage 車種別ページ
type VehiclePage struct {
	Page
	Vehicle   models.Vehicle
	Maker     models.MakerInfo
	Typical   models.CostScenario
	Scenarios []models.CostScenario
	Others    []models.Vehicle
}

// ContactPage お問い合わせ
type ContactPage struct {
	Page
}

// NotFoundPage 404
type NotFoundPage struct {
	Page
	Message string
}

// maxOtherVehicles 「他の車種」の表示数
const maxOtherVehicles = 6

// OtherVehicles 同じメーカーの他の車種（最大6件）
func OtherVehicles(all []models.Vehicle, current models.Vehicle) []models.Vehicle {
	others := make([]models.Vehicle, 0, maxOtherVehicles)
	for _, v := range all {
		if v.ID == current.ID {
			continue
		}
		others = append(others, v)
		if len(others) == maxOtherVehicles {
			break
		}
	}
	return others
}

// Sections メーカー一覧ページのセクション
func Sections(makers []service.MakerSummary, vehiclesOf func(models.Maker) []models.Vehicle) []MakerSection {
	sections := make([]MakerSection, 0, len(makers))
	for _, m := range makers {
		sections = append(sections, MakerSection{Maker: m.MakerInfo, Vehicles: vehiclesOf(m.ID)})
	}
	return sections
}
