package ui

// Layout constants for the market page
const (
	// Lines taken by everything except the table body: title, filter box
	// (3 with border), paging controls, status line, help line, spacing.
	TitleHeight    = 2
	FilterHeight   = 3
	ControlsHeight = 2
	StatusHeight   = 1
	HelpHeight     = 2

	// Table dimensions
	TableHeaderHeight = 2
	MinTableHeight    = 3
	DefaultTableRows  = 15
	MaxColumnWidth    = 36
	ColumnPadding     = 2 // room for the sort indicator
	FocusMarkerWidth  = 2

	// Filter input
	FilterWidth     = 30
	FilterCharLimit = 64

	// Popover
	MinPopoverWidth = 30
)

// TableBodyHeight returns the rows available to the table body in a
// terminal of the given height, given how many lines the popover takes.
func TableBodyHeight(terminalHeight, popoverLines int) int {
	h := terminalHeight - TitleHeight - FilterHeight - ControlsHeight -
		StatusHeight - HelpHeight - TableHeaderHeight - popoverLines
	if h < MinTableHeight {
		return MinTableHeight
	}
	return h
}

// PopoverWrapWidth clamps the configured popover width to the terminal.
func PopoverWrapWidth(configured, terminalWidth int) int {
	w := configured
	if terminalWidth > 0 && w > terminalWidth-4 {
		w = terminalWidth - 4
	}
	if w < MinPopoverWidth {
		w = MinPopoverWidth
	}
	return w
}
