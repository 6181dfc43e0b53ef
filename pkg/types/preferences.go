package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Preferences is the loose-shape taste profile persisted as JSONB. Clients may
// write keys we do not know about; the only one the platform reads is
// "flavors".
type Preferences map[string]any

// Flavors extracts the preferred flavor tags, tolerating a missing or
// malformed "flavors" key.
func (p Preferences) Flavors() []string {
	if p == nil {
		return nil
	}
	raw, ok := p["flavors"]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	flavors := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			flavors = append(flavors, s)
		}
	}
	return flavors
}

// Value marshals the map into JSON for Postgres.
func (p Preferences) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the map.
func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("preferences: unsupported scan type %T", value)
	}

	result := make(Preferences)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*p = result
	return nil
}
