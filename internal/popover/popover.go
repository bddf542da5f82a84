// Package popover builds the address panel shown for a table cell: the
// map-search link for each market and the open/closed state of the panel.
package popover

import (
	"fmt"
	"net/url"
	"strings"

	"pazar/internal/market"
)

// DefaultSearchURL is the map search endpoint the link query is appended to.
const DefaultSearchURL = "https://www.google.com/maps/search/"

// HasAddress reports whether an address is worth a popover trigger. The
// placeholder and blank addresses get none.
func HasAddress(address string) bool {
	a := strings.TrimSpace(address)
	return a != "" && a != market.Placeholder
}

// Link returns the map-search URL for a market. Name and address are joined
// with ", "; whitespace runs become "+" and "/" becomes "%2F" so the query
// stays one path segment.
func Link(base, name, address string) string {
	if base == "" {
		base = DefaultSearchURL
	}
	q := name
	if HasAddress(address) {
		q = name + ", " + address
	}

	fields := strings.Fields(q)
	for i, f := range fields {
		fields[i] = url.PathEscape(f)
	}
	return base + strings.Join(fields, "+")
}

// Cell identifies a table cell by visible row and column index.
type Cell struct {
	Row    int
	Column int
}

// State is the popover state machine: closed, or open on exactly one cell.
// The zero value is closed.
type State struct {
	open bool
	cell Cell
}

// Open shows the popover on c, replacing any other open popover.
func (s State) Open(c Cell) State {
	return State{open: true, cell: c}
}

// Close hides the popover.
func (s State) Close() State {
	return State{}
}

// Toggle opens the popover on c, or closes it when c is already open.
func (s State) Toggle(c Cell) State {
	if s.open && s.cell == c {
		return s.Close()
	}
	return s.Open(c)
}

// IsOpen reports whether a popover is showing, and on which cell.
func (s State) IsOpen() (Cell, bool) {
	return s.cell, s.open
}

// Markdown renders the panel body for one cell as markdown: a heading with
// the district and day, then one item per market with its address linked to
// the map search. Markets without an address are listed by name only.
func Markdown(base, district, day string, entries []market.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s · %s\n\n", district, day)
	if len(entries) == 0 {
		sb.WriteString(market.Placeholder + "\n")
		return sb.String()
	}
	for _, e := range entries {
		if !HasAddress(e.Address) {
			fmt.Fprintf(&sb, "- **%s**\n", e.Name)
			continue
		}
		fmt.Fprintf(&sb, "- **%s**  \n  [%s](%s)\n", e.Name, e.Address, Link(base, e.Name, e.Address))
	}
	return sb.String()
}
