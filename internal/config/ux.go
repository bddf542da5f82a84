package config

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{ThemeAuto, ThemeDark, ThemeLight}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, dark or light. Auto inspects the terminal.
	Theme string `yaml:"theme"`

	// TableHeight is the number of table rows shown at once (0 = fit window)
	TableHeight int `yaml:"table_height,omitempty"`

	// PopoverWidth is the word-wrap width of the address panel
	PopoverWidth int `yaml:"popover_width"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:        ThemeDark, // the original palette is dark
		TableHeight:  0,
		PopoverWidth: 60,
	}
}
