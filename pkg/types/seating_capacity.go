package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SeatingCapacity maps a seating type to its total seats, persisted as JSONB.
type SeatingCapacity map[string]int

// Value marshals the map into JSON for Postgres.
func (c SeatingCapacity) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the map.
func (c *SeatingCapacity) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("seating capacity: unsupported scan type %T", value)
	}

	result := make(SeatingCapacity)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*c = result
	return nil
}
