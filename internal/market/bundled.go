package market

import _ "embed"

//go:embed data/pazar-yerleri.json
var bundled []byte

// LoadBundled parses the dataset compiled into the binary.
func LoadBundled() (Dataset, error) {
	return Parse(bundled)
}
