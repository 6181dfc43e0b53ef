package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EventData is the free-form analytics payload persisted as JSONB.
type EventData map[string]any

// Value marshals the payload into JSON for Postgres.
func (d EventData) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the payload.
func (d *EventData) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("event data: unsupported scan type %T", value)
	}

	result := make(EventData)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*d = result
	return nil
}
