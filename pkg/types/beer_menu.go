package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Beer is one entry on a brewery's menu, stored inside the beer_menu JSONB.
type Beer struct {
	Name    string   `json:"name"`
	Style   string   `json:"style,omitempty"`
	ABV     float64  `json:"abv,omitempty"`
	Flavors []string `json:"flavors,omitempty"`
}

// BeerMenu is the ordered beer list persisted as JSONB.
type BeerMenu []Beer

// Value marshals the menu into JSON for Postgres.
func (m BeerMenu) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the menu.
func (m *BeerMenu) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("beer menu: unsupported scan type %T", value)
	}

	result := BeerMenu{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*m = result
	return nil
}
