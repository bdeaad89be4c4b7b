// shaken 車検費用シミュレーターの CLI
//
// Usage:
//
//	shaken quote --vehicle prius --year 2015
//	shaken weight-tax --weight 1500 --category standard --year 2010
//	shaken export --out ./public
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/aska-auto/shaken/internal/config"
)

var version = "dev"

func main() {
	// .env があればフラグの環境変数として使う
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "shaken",
		Usage:   "車検費用（重量税・自賠責保険・印紙代）シミュレーター",
		Version: version,
		Before:  checkFormat,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				EnvVars: []string{"DEBUG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "Output format (text, json)",
			},
			&cli.StringFlag{
				Name:    "catalog-source",
				Value:   config.CatalogEmbedded,
				Usage:   "Catalog source (embedded, postgres)",
				EnvVars: []string{"CATALOG_SOURCE"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "PostgreSQL URL for the postgres catalog source",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Commands: []*cli.Command{
			quoteCommand(),
			scenariosCommand(),
			weightTaxCommand(),
			makersCommand(),
			vehiclesCommand(),
			exportCommand(),
			seedCommand(),
		},
	}
}
