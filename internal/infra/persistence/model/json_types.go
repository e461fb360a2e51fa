package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UUIDSlice stores a list of UUIDs as a JSONB array.
type UUIDSlice []uuid.UUID

// Value implements driver.Valuer.
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}

	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *UUIDSlice) Scan(value any) error {
	return scanJSON(value, s)
}

// BoolMap stores string-keyed flags as a JSONB object.
type BoolMap map[string]bool

// Value implements driver.Valuer.
func (m BoolMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *BoolMap) Scan(value any) error {
	return scanJSON(value, m)
}

// StringMap stores string key-value pairs as a JSONB object.
type StringMap map[string]string

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(value any) error {
	return scanJSON(value, m)
}

// JSONObject stores an arbitrary JSON document.
type JSONObject json.RawMessage

// Value implements driver.Valuer.
func (j JSONObject) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return []byte(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONObject) Scan(value any) error {
	if value == nil {
		*j = nil

		return nil
	}

	switch data := value.(type) {
	case []byte:
		*j = append((*j)[0:0], data...)
	case string:
		*j = JSONObject(data)
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}

	return nil
}

func scanJSON(value, target any) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}

	if len(data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(data, target), "unmarshal jsonb column")
}
