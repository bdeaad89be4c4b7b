package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/aska-auto/shaken/internal/catalog"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL サイトマップの1エントリ
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// URLSet sitemap.xml のルート要素
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap 静的ページ・メーカー別・車種別ページのサイトマップ
func (b *Builder) Sitemap(c *catalog.Catalog, now time.Time) URLSet {
	lastMod := now.Format(time.RFC3339)
	entry := func(path, freq string, priority float64) SitemapURL {
		return SitemapURL{
			Loc:        b.URL(path),
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   fmt.Sprintf("%.1f", priority),
		}
	}

	set := URLSet{
		Xmlns: sitemapNamespace,
		URLs: []SitemapURL{
			entry("/", "weekly", 1.0),
			entry("/inspection", "weekly", 0.9),
			entry("/contact", "monthly", 0.7),
		},
	}
	for _, m := range c.Makers() {
		set.URLs = append(set.URLs, entry(MakerPath(m.ID), "weekly", 0.8))
	}
	for _, v := range c.Vehicles() {
		set.URLs = append(set.URLs, entry(VehiclePath(v), "monthly", 0.6))
	}
	return set
}

// Encode XML 宣言付きで書き出す
func (s URLSet) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Close()
}

// Robots robots.txt
func (b *Builder) Robots() string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + b.URL("/sitemap.xml") + "\n"
}
