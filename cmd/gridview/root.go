package main

import (
	"os"

	"github.com/spf13/cobra"

	"gridview"
	"gridview/config"
)

var (
	// configFile is set by the --config flag.
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "gridview",
	Short: "gridview renders searchable, filterable, paginated views of JSON records",
	Long: `gridview loads records from a JSON file or a sqlite table and shows one page
of the derived view: fuzzy search, facet filters, column sort, pagination and
row selection, the same pipeline an interactive table runs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")

	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func loadConfig() (*config.Config, *gridview.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	level := gridview.ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return cfg, gridview.NewJSONLogger(os.Stderr, level), nil
	}
	return cfg, gridview.NewTextLogger(os.Stderr, level), nil
}
