package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aska-auto/shaken/internal/catalog"
	"github.com/aska-auto/shaken/internal/config"
	"github.com/aska-auto/shaken/internal/models"
	"github.com/aska-auto/shaken/internal/repository"
	"github.com/aska-auto/shaken/internal/seo"
	"github.com/aska-auto/shaken/internal/service"
	"github.com/aska-auto/shaken/internal/tax"
)

// clock テストで差し替える
var clock = time.Now

// newLogger CLI 用ロガー（stderr に出す）
func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// setup 車種マスターを読み込んでサービスを作成
func setup(c *cli.Context) (*service.InspectionService, *zap.Logger, error) {
	logger := newLogger(c.Bool("debug"))

	embedded, err := catalog.Embedded()
	if err != nil {
		return nil, nil, err
	}

	vehicles := embedded
	switch source := strings.ToLower(c.String("catalog-source")); source {
	case config.CatalogEmbedded:
	case config.CatalogPostgres:
		url := c.String("database-url")
		if url == "" {
			return nil, nil, fmt.Errorf("--database-url is required for catalog source %q", source)
		}
		vehicles, err = repository.OpenCatalog(c.Context, url, embedded, logger)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", source)
	}

	return service.NewInspectionService(logger, vehicles, tax.NewCalculator(clock)), logger, nil
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Calculate the inspection cost of a vehicle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "vehicle",
				Usage:    "Vehicle ID (see `shaken vehicles`)",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "First registration year (default: five years ago)",
			},
			&cli.BoolFlag{
				Name:  "legal-only",
				Usage: "Exclude the shop base fee",
			},
		},
		Action: runQuote,
	}
}

func runQuote(c *cli.Context) error {
	svc, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	year := c.Int("year")
	if !c.IsSet("year") {
		year = svc.DefaultRegistrationYear()
	}

	quote, err := svc.Quote(c.String("vehicle"), year, !c.Bool("legal-only"))
	if err != nil {
		return err
	}

	out := newPrinter(c)
	if out.isJSON() {
		return out.encode(quote)
	}
	out.line("%s（初度登録 %d年）", quote.Vehicle.DisplayName(), quote.RegistrationYear)
	out.line("  %s", quote.WeightTax.Category)
	out.costs(quote.Cost, !c.Bool("legal-only"))
	return nil
}

func scenariosCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "Show inspection costs by vehicle age",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "vehicle",
				Usage:    "Vehicle ID",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			svc, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			vs, err := svc.Scenarios(c.String("vehicle"))
			if err != nil {
				return err
			}

			out := newPrinter(c)
			if out.isJSON() {
				return out.encode(vs)
			}
			out.line("%s", vs.Vehicle.DisplayName())
			for _, s := range vs.Scenarios {
				out.line("  %s（%d年登録） 法定費用 %s / 総額 %s",
					s.Label, s.RegistrationYear, seo.FormatYen(s.Cost.TotalLegal), seo.FormatYen(s.Cost.TotalWithFee))
			}
			return nil
		},
	}
}

func weightTaxCommand() *cli.Command {
	return &cli.Command{
		Name:  "weight-tax",
		Usage: "Calculate the vehicle weight tax only",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "weight",
				Aliases:  []string{"w"},
				Usage:    "Vehicle weight (kg)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Value:   string(models.CategoryStandard),
				Usage:   "Vehicle category (kei, standard, large)",
			},
			&cli.IntFlag{
				Name:     "year",
				Aliases:  []string{"y"},
				Usage:    "First registration year",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "eco",
				Usage: "Eco car (reduced or exempt)",
			},
		},
		Action: func(c *cli.Context) error {
			svc, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			category, err := models.ParseVehicleCategory(c.String("category"))
			if err != nil {
				return err
			}
			result, err := svc.WeightTax(c.Int("weight"), c.Bool("eco"), c.Int("year"), category)
			if err != nil {
				return err
			}

			out := newPrinter(c)
			if out.isJSON() {
				return out.encode(result)
			}
			out.line("%s: %s", result.Category, seo.FormatYen(result.Amount))
			out.line("  %s", result.Description)
			return nil
		},
	}
}

func makersCommand() *cli.Command {
	return &cli.Command{
		Name:  "makers",
		Usage: "List makers",
		Action: func(c *cli.Context) error {
			svc, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			makers := svc.Makers()
			out := newPrinter(c)
			if out.isJSON() {
				return out.encode(makers)
			}
			for _, m := range makers {
				out.line("%-12s %s（%d車種）", m.ID, m.Name, m.VehicleCount)
			}
			return nil
		},
	}
}

func vehiclesCommand() *cli.Command {
	return &cli.Command{
		Name:  "vehicles",
		Usage: "List vehicles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "maker",
				Aliases: []string{"m"},
				Usage:   "Filter by maker ID",
			},
		},
		Action: func(c *cli.Context) error {
			svc, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			vehicles := svc.Catalog().Vehicles()
			if c.IsSet("maker") {
				mv, err := svc.MakerVehicles(models.Maker(c.String("maker")))
				if err != nil {
					return err
				}
				vehicles = mv.Vehicles
			}

			out := newPrinter(c)
			if out.isJSON() {
				return out.encode(vehicles)
			}
			for _, v := range vehicles {
				out.line("%-16s %s %s（%s・%skg）", v.ID, v.MakerName, v.ModelName, v.Category.Label(), seo.FormatNumber(v.Weight))
			}
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write sitemap.xml and robots.txt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "Output directory",
			},
			&cli.StringFlag{
				Name:    "site-url",
				Value:   "https://aska-auto-station-web.vercel.app",
				Usage:   "Site root URL",
				EnvVars: []string{"SITE_URL"},
			},
		},
		Action: func(c *cli.Context) error {
			svc, logger, err := setup(c)
			if err != nil {
				return err
			}
			defer logger.Sync()

			dir := c.String("out")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			builder := seo.NewBuilder(c.String("site-url"), models.Company)

			sitemapPath := filepath.Join(dir, "sitemap.xml")
			f, err := os.Create(sitemapPath)
			if err != nil {
				return fmt.Errorf("create sitemap: %w", err)
			}
			set := builder.Sitemap(svc.Catalog(), svc.Now())
			if err := set.Encode(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close sitemap: %w", err)
			}

			robotsPath := filepath.Join(dir, "robots.txt")
			if err := os.WriteFile(robotsPath, []byte(builder.Robots()), 0o644); err != nil {
				return fmt.Errorf("write robots.txt: %w", err)
			}

			logger.Info("Exported", zap.String("sitemap", sitemapPath), zap.Int("urls", len(set.URLs)))
			newPrinter(c).line("%s (%d urls)\n%s", sitemapPath, len(set.URLs), robotsPath)
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Write the built-in catalog into PostgreSQL (upsert)",
		Action: func(c *cli.Context) error {
			url := c.String("database-url")
			if url == "" {
				return fmt.Errorf("--database-url is required")
			}
			logger := newLogger(c.Bool("debug"))
			defer logger.Sync()

			embedded, err := catalog.Embedded()
			if err != nil {
				return err
			}

			db, err := repository.New(c.Context, url)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(c.Context); err != nil {
				return err
			}
			if err := repository.NewCatalogRepository(db).Seed(c.Context, embedded); err != nil {
				return err
			}

			newPrinter(c).line("seeded %d makers, %d vehicles", len(embedded.Makers()), embedded.Len())
			return nil
		},
	}
}
