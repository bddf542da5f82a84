package config

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"console", "json"}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // empty = stderr for commands, disabled for the TUI
}

// Enabled reports whether the interactive UI may log. The terminal is owned
// by the UI, so it only logs to a file.
func (c *LoggingConfig) Enabled(interactive bool) bool {
	return !interactive || c.File != ""
}
