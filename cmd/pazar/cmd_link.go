package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pazar/internal/popover"
)

// linkCmd prints a map-search link
var linkCmd = &cobra.Command{
	Use:   "link NAME [ADDRESS]",
	Short: "Print the map-search link for a market",
	Long: `Prints the link the address popover uses for a market. The name and
address are joined with ", " and whitespace becomes "+".

Example:
  pazar link "Kuruçeşme Pazarı" "Kuruçeşme Mah. 1. Sok."`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	address := ""
	if len(args) == 2 {
		address = args[1]
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), popover.Link(cfg.Maps.SearchURL, args[0], address))
	return err
}
