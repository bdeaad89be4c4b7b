// Package seo ページのメタ情報・構造化データ・サイトマップ
package seo

import (
	"fmt"
	"strings"

	"github.com/aska-auto/shaken/internal/models"
)

// SiteName サイト名
const SiteName = "アスカオートステーション"

// PageMeta ページのメタ情報
type PageMeta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Canonical   string   `json:"canonical"`
	OGImage     string   `json:"og_image,omitempty"`
	NoIndex     bool     `json:"no_index,omitempty"`
}

// KeywordList カンマ区切りのキーワード
func (m PageMeta) KeywordList() string {
	return strings.Join(m.Keywords, ",")
}

// Builder サイト URL を基準にメタ情報を組み立てる
type Builder struct {
	siteURL string
	company models.CompanyInfo
}

// NewBuilder ビルダーを作成
func NewBuilder(siteURL string, company models.CompanyInfo) *Builder {
	return &Builder{siteURL: strings.TrimRight(siteURL, "/"), company: company}
}

// SiteURL サイトのルート URL
func (b *Builder) SiteURL() string {
	return b.siteURL
}

// URL サイト内パスの絶対 URL
func (b *Builder) URL(path string) string {
	if path == "" || path == "/" {
		return b.siteURL
	}
	return b.siteURL + "/" + strings.TrimLeft(path, "/")
}

// MakerPath メーカーページのパス
func MakerPath(maker models.Maker) string {
	return "/inspection/" + string(maker)
}

// VehiclePath 車種ページのパス
func VehiclePath(v models.Vehicle) string {
	return "/inspection/" + string(v.Maker) + "/" + v.ID
}

func (b *Builder) page(title, description, path string, keywords ...string) PageMeta {
	return PageMeta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   b.URL(path),
		OGImage:     b.URL("/images/logo.png"),
	}
}

// Home トップページ
func (b *Builder) Home(year int) PageMeta {
	years := b.company.YearsInBusiness(year)
	return b.page(
		fmt.Sprintf("%s | さいたま市緑区で%d年 車検・整備・中古車", SiteName, years),
		fmt.Sprintf("さいたま市緑区で%d年。車検・整備・修理・板金・中古車販売。Google評価★%.1f。まずはお電話ください。%s（社長直通）",
			years, b.company.GoogleRating, b.company.Phone),
		"/",
		"車検", "さいたま市", "緑区", "車検費用", "自動車整備", "中古車", "板金", "修理", SiteName, "上野田", "東川口",
	)
}

// Inspection 車検費用シミュレーション（メーカー一覧）
func (b *Builder) Inspection(year, vehicleCount int) PageMeta {
	return b.page(
		fmt.Sprintf("車検費用シミュレーション【%d年最新】車種別で即計算 | %s", year, SiteName),
		fmt.Sprintf("車種を選ぶだけで車検費用が即わかる！重量税・自賠責保険・印紙代の法定費用を自動計算。トヨタ・ホンダ・日産など%d車種対応。さいたま市緑区の%s。",
			vehicleCount, SiteName),
		"/inspection",
		"車検費用", "車検費用 シミュレーション", "車検 いくら", "重量税", "自賠責保険", "さいたま市 車検",
	)
}

// Maker メーカー別ページ
func (b *Builder) Maker(maker models.MakerInfo, vehicles []models.Vehicle) PageMeta {
	names := make([]string, 0, 5)
	for i, v := range vehicles {
		if i == 5 {
			break
		}
		names = append(names, v.ModelName)
	}
	return b.page(
		fmt.Sprintf("%sの車検費用【%d車種対応】 | %s", maker.Name, len(vehicles), SiteName),
		fmt.Sprintf("%sの車検費用シミュレーション。%sなど%d車種の法定費用を即計算。さいたま市緑区の%s。",
			maker.Name, strings.Join(names, "・"), len(vehicles), SiteName),
		MakerPath(maker.ID),
		maker.Name+" 車検", maker.Name+" 車検費用", "車検 さいたま市",
	)
}

// Vehicle 車種別ページ
func (b *Builder) Vehicle(v models.Vehicle, year int) PageMeta {
	return b.page(
		fmt.Sprintf("%s 車検費用【%d年最新】 | %s", v.DisplayName(), year, SiteName),
		fmt.Sprintf("%sの車検費用シミュレーション。重量税・自賠責保険・印紙代の法定費用を即座に計算。さいたま市緑区で%d年の実績、%s。%s",
			v.DisplayName(), b.company.YearsInBusiness(year), SiteName, b.company.Phone),
		VehiclePath(v),
		v.ModelName+" 車検", v.ModelName+" 車検費用", v.MakerName+" 車検", "車検 さいたま市", "車検 緑区", "車検費用 シミュレーション",
	)
}

// Contact お問い合わせ・アクセス
func (b *Builder) Contact() PageMeta {
	return b.page(
		"お問い合わせ・アクセス | "+SiteName,
		fmt.Sprintf("%sへのお問い合わせ。%s%s。車検・整備・修理・板金・中古車のご相談は%s（社長直通）まで。",
			SiteName, b.company.Locality, b.company.StreetAddress, b.company.Phone),
		"/contact",
		SiteName, "さいたま市 車検", "緑区 整備", "上野田 自動車", "東川口 車検",
	)
}

// NotFound 404 ページ
func (b *Builder) NotFound(title string) PageMeta {
	m := b.page(title+" | "+SiteName, "", "/")
	m.NoIndex = true
	return m
}
