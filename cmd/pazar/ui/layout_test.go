package ui

import "testing"

func TestTableBodyHeight(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		popover  int
		expected int
	}{
		{"tall terminal", 40, 0, 28},
		{"popover takes rows", 40, 10, 18},
		{"tiny terminal", 5, 0, MinTableHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TableBodyHeight(tt.height, tt.popover); got != tt.expected {
				t.Errorf("TableBodyHeight(%d, %d) = %d, want %d", tt.height, tt.popover, got, tt.expected)
			}
		})
	}
}

func TestPopoverWrapWidth(t *testing.T) {
	if got := PopoverWrapWidth(60, 0); got != 60 {
		t.Errorf("unknown terminal width: got %d", got)
	}
	if got := PopoverWrapWidth(60, 50); got != 46 {
		t.Errorf("narrow terminal: got %d", got)
	}
	if got := PopoverWrapWidth(10, 200); got != MinPopoverWidth {
		t.Errorf("below minimum: got %d", got)
	}
}

func TestRenderMarkdown_FallsBackToText(t *testing.T) {
	if got := safeRenderMarkdown(nil, "plain"); got != "plain" {
		t.Errorf("nil renderer: got %q", got)
	}
	if got := RenderMarkdown(DarkTheme(), 40, ""); got != "" {
		t.Errorf("empty content: got %q", got)
	}
}
