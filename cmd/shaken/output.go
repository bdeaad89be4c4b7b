package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/seo"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errUnknownFormat = errors.New("unknown output format")

// checkFormat --format の値を確認
func checkFormat(c *cli.Context) error {
	switch f := c.String("format"); f {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("--format %q (want %s or %s): %w", f, formatText, formatJSON, errUnknownFormat)
	}
}

// printer --format に従って App.Writer に出力する
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(c *cli.Context) *printer {
	return &printer{w: c.App.Writer, format: c.String("format")}
}

func (p *printer) isJSON() bool {
	return p.format == formatJSON
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// costs 費用内訳
func (p *printer) costs(cost models.InspectionCost, withFee bool) {
	p.line("  重量税       %10s", seo.FormatYen(cost.WeightTax))
	p.line("  自賠責保険   %10s", seo.FormatYen(cost.Jibaiseki))
	p.line("  印紙代       %10s", seo.FormatYen(cost.Stamp))
	p.line("  法定費用合計 %10s", seo.FormatYen(cost.TotalLegal))
	if withFee {
		p.line("  基本料金     %10s", seo.FormatYen(cost.BaseFee))
		p.line("  総額         %10s", seo.FormatYen(cost.TotalWithFee))
	}
}
