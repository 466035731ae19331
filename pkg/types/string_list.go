package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList represents an ordered list of labels persisted as JSONB.
type StringList []string

// Value marshals the list into JSON for Postgres.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the list.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("string list: unsupported scan type %T", value)
	}

	result := make(StringList, 0)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*l = result
	return nil
}

// Contains reports whether the list holds the label, case-insensitively.
func (l StringList) Contains(label string) bool {
	for _, candidate := range l {
		if strings.EqualFold(candidate, label) {
			return true
		}
	}
	return false
}
