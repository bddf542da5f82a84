package market

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// member is one key/value pair of a JSON object, kept in document order.
type member struct {
	key   string
	value json.RawMessage
}

var (
	errNotObject    = errors.New("not an object")
	errTrailingData = errors.New("trailing data")
)

// rawEntry distinguishes a missing name from an empty one.
type rawEntry struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// Parse decodes and validates a dataset document. Key order is preserved at
// every level. Any structural defect yields a *MalformedDatasetError.
func Parse(data []byte) (Dataset, error) {
	days, err := decodeObject(data)
	if err != nil {
		return Dataset{}, malformed("", "", "top level: %v", err)
	}

	ds := Dataset{Days: make([]Day, 0, len(days))}
	seen := make(map[string]bool, len(days))
	for _, m := range days {
		if seen[m.key] {
			return Dataset{}, malformed(m.key, "", "duplicate day")
		}
		seen[m.key] = true

		day, err := parseDay(m.key, m.value)
		if err != nil {
			return Dataset{}, err
		}
		ds.Days = append(ds.Days, day)
	}
	return ds, nil
}

// LoadFile reads and parses a dataset document from disk.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(data)
}

func parseDay(name string, raw json.RawMessage) (Day, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return Day{}, malformed(name, "", "day value: %v", err)
	}

	var districtsRaw json.RawMessage
	for _, f := range fields {
		if f.key != DistrictsKey {
			continue
		}
		if districtsRaw != nil {
			return Day{}, malformed(name, "", "duplicate %q object", DistrictsKey)
		}
		districtsRaw = f.value
	}
	if districtsRaw == nil {
		return Day{}, malformed(name, "", "missing %q object", DistrictsKey)
	}

	districts, err := decodeObject(districtsRaw)
	if err != nil {
		return Day{}, malformed(name, "", "%q value: %v", DistrictsKey, err)
	}

	day := Day{Name: name, Districts: make([]District, 0, len(districts))}
	seen := make(map[string]bool, len(districts))
	for _, d := range districts {
		if seen[d.key] {
			return Day{}, malformed(name, d.key, "duplicate district")
		}
		seen[d.key] = true

		markets, err := parseEntries(name, d.key, d.value)
		if err != nil {
			return Day{}, err
		}
		day.Districts = append(day.Districts, District{Name: d.key, Markets: markets})
	}
	return day, nil
}

func parseEntries(day, district string, raw json.RawMessage) ([]Entry, error) {
	if !startsWith(raw, '[') {
		return nil, malformed(day, district, "market list is not an array")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformed(day, district, "market list: %v", err)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		if !startsWith(item, '{') {
			return nil, malformed(day, district, "entry %d is not an object", i)
		}
		var re rawEntry
		if err := json.Unmarshal(item, &re); err != nil {
			return nil, malformed(day, district, "entry %d: %v", i, err)
		}
		if re.Name == nil || *re.Name == "" {
			return nil, malformed(day, district, "entry %d has no name", i)
		}
		e := Entry{Name: *re.Name}
		if re.Address != nil {
			e.Address = *re.Address
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// decodeObject splits a JSON object into its members without losing order.
// Nothing but whitespace may follow the closing brace.
func decodeObject(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return members, nil
}

func startsWith(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == c
}
