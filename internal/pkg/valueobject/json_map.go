// Package valueobject holds small value types shared by entities.
package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ErrScanValueNotBytes indicates the database value cannot be decoded as JSON.
var ErrScanValueNotBytes = errors.New("valueobject: jsonmap scan value is not []byte")

// JSONMap is a free form JSON object column (jsonb).
// @swaggertype object
type JSONMap map[string]any

func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

func (j *JSONMap) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*j = JSONMap{}
		return nil
	case map[string]any:
		*j = JSONMap(v)
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return ErrScanValueNotBytes
	}

	out := JSONMap{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*j = out
	return nil
}

// GetString returns the string at key or "".
func (j JSONMap) GetString(key string) string {
	s, _ := j[key].(string)
	return s
}

// Merge copies other into j, overwriting existing keys, and returns j.
func (j JSONMap) Merge(other map[string]any) JSONMap {
	if j == nil {
		j = JSONMap{}
	}
	for k, v := range other {
		j[k] = v
	}
	return j
}
