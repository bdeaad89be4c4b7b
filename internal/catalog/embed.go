package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aska-auto/shaken/internal/models"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// document catalog.yaml の構造
type document struct {
	Makers   []models.MakerInfo `yaml:"makers"`
	Vehicles []models.Vehicle   `yaml:"vehicles"`
}

// Parse YAML からカタログを構築
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c, err := New(doc.Makers, doc.Vehicles)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}

// Embedded 組み込みのカタログ（初回呼び出し時に一度だけ解析）
var Embedded = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embeddedCatalog)
})
