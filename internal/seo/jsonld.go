package seo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aska-auto/shaken/internal/models"
)

const schemaContext = "https://schema.org"

// Node JSON-LD ノード
type Node map[string]any

// Crumb パンくずの1項目
type Crumb struct {
	Name string
	URL  string
}

// Marshal <script type="application/ld+json"> に埋め込む JSON
func Marshal(n Node) ([]byte, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return data, nil
}

// SiteGraph サイト全体の構造化データ（WebSite・店舗・FAQ）
func (b *Builder) SiteGraph(year int) Node {
	business := b.URL("/#business")
	return Node{
		"@context": schemaContext,
		"@graph": []Node{
			{
				"@type":       "WebSite",
				"@id":         b.URL("/#website"),
				"url":         b.siteURL,
				"name":        b.company.Name,
				"description": fmt.Sprintf("さいたま市緑区で%d年。車検・整備・修理・板金・中古車販売。", b.company.YearsInBusiness(year)),
				"publisher":   Node{"@id": business},
				"inLanguage":  "ja",
			},
			b.localBusiness(business),
			b.faqPage(),
		},
	}
}

func (b *Builder) localBusiness(id string) Node {
	c := b.company
	return Node{
		"@type":     []string{"LocalBusiness", "AutoRepair", "AutoDealer"},
		"@id":       id,
		"name":      c.Name,
		"image":     b.URL("/images/logo.png"),
		"url":       b.siteURL,
		"telephone": c.PhoneIntl,
		"address": Node{
			"@type":           "PostalAddress",
			"streetAddress":   c.StreetAddress,
			"addressLocality": c.Locality,
			"addressRegion":   c.Region,
			"postalCode":      c.PostalCode,
			"addressCountry":  "JP",
		},
		"geo": Node{
			"@type":     "GeoCoordinates",
			"latitude":  c.Latitude,
			"longitude": c.Longitude,
		},
		"openingHoursSpecification": []Node{{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			"opens":     c.Opens,
			"closes":    c.Closes,
		}},
		"aggregateRating": Node{
			"@type":       "AggregateRating",
			"ratingValue": fmt.Sprintf("%.1f", c.GoogleRating),
			"bestRating":  "5",
			"worstRating": "1",
			"reviewCount": fmt.Sprint(c.ReviewCount),
		},
		"priceRange":          "$$",
		"currenciesAccepted":  "JPY",
		"paymentAccepted":     "Cash, Credit Card",
		"areaServed":          areaServed(),
		"foundingDate":        fmt.Sprint(c.FoundingYear),
		"knowsAbout":          []string{"車検", "自動車整備", "板金塗装", "中古車販売", "オークション代行"},
		"slogan":              "車のこと、なんでもご相談ください",
		"sameAs":              []string{c.InstagramURL, c.CarsensorURL},
	}
}

func areaServed() []Node {
	cities := []string{"さいたま市", "川口市", "越谷市", "草加市", "八潮市", "三郷市", "春日部市", "蕨市", "戸田市"}
	wards := []string{"さいたま市緑区", "さいたま市浦和区", "さいたま市南区", "さいたま市岩槻区", "さいたま市見沼区"}

	areas := make([]Node, 0, len(cities)+len(wards))
	for _, c := range cities {
		areas = append(areas, Node{"@type": "City", "name": c})
	}
	for _, w := range wards {
		areas = append(areas, Node{"@type": "AdministrativeArea", "name": w})
	}
	return areas
}

func (b *Builder) faqPage() Node {
	entities := make([]Node, 0, len(models.FAQs))
	for _, f := range models.FAQs {
		entities = append(entities, Node{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": Node{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return Node{
		"@type":      "FAQPage",
		"@id":        b.URL("/#faq"),
		"mainEntity": entities,
	}
}

// Breadcrumb パンくずリスト
func Breadcrumb(items []Crumb) Node {
	list := make([]Node, 0, len(items))
	for i, item := range items {
		list = append(list, Node{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}
	return Node{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": list,
	}
}

// VehicleInspection 車種別の車検サービス（法定費用を価格として掲載）
func (b *Builder) VehicleInspection(v models.Vehicle, legalFee int, now time.Time) Node {
	return Node{
		"@context":    schemaContext,
		"@type":       "Service",
		"name":        v.DisplayName() + "の車検",
		"description": fmt.Sprintf("%sの車検費用シミュレーション。法定費用%s円〜。さいたま市緑区の%s。", v.DisplayName(), FormatNumber(legalFee), b.company.Name),
		"provider": Node{
			"@type": "AutoRepair",
			"name":  b.company.Name,
			"url":   b.siteURL,
		},
		"areaServed": Node{"@type": "City", "name": "さいたま市"},
		"url":        b.URL(VehiclePath(v)),
		"offers": Node{
			"@type":           "Offer",
			"price":           legalFee,
			"priceCurrency":   "JPY",
			"priceValidUntil": now.AddDate(1, 0, 0).Format(time.DateOnly),
			"availability":    "https://schema.org/InStock",
		},
	}
}
