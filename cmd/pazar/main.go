package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pazar/cmd/pazar/ui"
	"pazar/internal/config"
	"pazar/internal/logging"
	"pazar/internal/market"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pazar",
	Short: "Bursa weekly market table",
	Long: `pazar shows which neighbourhood markets are held in each district of
Bursa on each day of the week.

Run without arguments to open the interactive table: search across every
column, sort by any column, page through the districts and open a cell to
see market addresses with a map link.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive table owns the terminal, so it only logs to a file.
		return setup(cmd == cmd.Root())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config and installs the process logger.
func setup(interactive bool) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if err := logging.Initialize(c.Logging, interactive); err != nil {
		return err
	}

	cfg = c
	logger = logging.Get(logging.CategoryBoot)
	logging.Boot("config loaded from %s", configPath)
	return nil
}

// loadProjection loads the configured dataset, or the bundled one, and
// projects it into table rows. A malformed dataset is logged with its
// location before the error is returned.
func loadProjection() (market.Projection, error) {
	var (
		ds     market.Dataset
		err    error
		source = "bundled"
	)
	if cfg.Dataset.Path != "" {
		source = cfg.Dataset.Path
		ds, err = market.LoadFile(cfg.Dataset.Path)
	} else {
		ds, err = market.LoadBundled()
	}

	dlog := logging.Get(logging.CategoryDataset)
	if err != nil {
		var me *market.MalformedDatasetError
		if errors.As(err, &me) {
			dlog.Error("malformed dataset",
				zap.String("source", source),
				zap.String("day", me.Day),
				zap.String("district", me.District),
				zap.String("reason", me.Reason),
			)
		}
		return market.Projection{}, err
	}

	p := market.Project(ds)
	dlog.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("days", len(p.Days)),
		zap.Int("districts", len(p.Rows)),
		zap.Int("markets", p.MarketCount()),
	)
	return p, nil
}

// styles returns the styles for the configured theme.
func styles() ui.Styles {
	return ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
}

// runInteractive launches the interactive market table
func runInteractive(cmd *cobra.Command, args []string) error {
	p, err := loadProjection()
	if err != nil {
		return err
	}

	s := styles()
	page := ui.NewMarketPageModel(p, ui.Options{
		PageSizes:       cfg.Table.PageSizes,
		DefaultPageSize: cfg.Table.DefaultPageSize,
		TableHeight:     cfg.UI.TableHeight,
		PopoverWidth:    cfg.UI.PopoverWidth,
		SearchURL:       cfg.Maps.SearchURL,
		Styles:          &s,
		Logger:          logging.Get(logging.CategoryUI),
	})

	logger.Info("starting interactive table", zap.String("theme", cfg.UI.Theme))
	if err := ui.Run(page); err != nil {
		return fmt.Errorf("failed to run interactive table: %w", err)
	}
	return nil
}
