package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pazar/cmd/pazar/ui"
	"pazar/internal/logging"
	"pazar/internal/market"
)

// validateCmd checks the dataset
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset and print a summary",
	Long: `Parses and projects the configured dataset (or the bundled one) and
prints how many districts and markets each day has. A malformed dataset
exits non-zero and names the offending day and district.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

// runValidate parses the dataset and prints per-day counts
func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadProjection()
	if err != nil {
		return fmt.Errorf("dataset is invalid: %w", err)
	}

	logging.Dataset("dataset valid: %d days, %d districts", len(p.Days), len(p.Rows))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dataset OK: %d days, %d districts, %d markets\n",
		len(p.Days), len(p.Rows), p.MarketCount())
	fmt.Fprint(out, daySummary(p).View(styles()))
	return nil
}

// daySummary counts, per day, the districts holding a market and the markets.
func daySummary(p market.Projection) *ui.SimpleTable {
	t := ui.NewSimpleTable("", []string{"Day", "Districts", "Markets"})
	for i, day := range p.Days {
		districts, markets := 0, 0
		for _, r := range p.Rows {
			if n := len(r.Cell(i)); n > 0 {
				districts++
				markets += n
			}
		}
		t.AddRow(day, strconv.Itoa(districts), strconv.Itoa(markets))
	}
	return t
}
