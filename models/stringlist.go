package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings stored as a JSON column. Legacy
// rows hold either a JSON array, a bare comma-separated string, or NULL; the
// union is resolved here on read so the rest of the code only ever sees a
// slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported amenities column type %T", value)
	}
	*l = normalizeStringList(raw)
	return nil
}

// UnmarshalJSON accepts an array, a comma-separated string, or null.
func (l *StringList) UnmarshalJSON(b []byte) error {
	*l = normalizeStringList(b)
	return nil
}

func (l StringList) GormDataType() string {
	return "json"
}

func normalizeStringList(raw []byte) StringList {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		return cleanStringList(items)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return cleanStringList(strings.Split(single, ","))
	}

	// Not JSON at all: a raw comma-separated DB value.
	return cleanStringList(strings.Split(trimmed, ","))
}

func cleanStringList(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
