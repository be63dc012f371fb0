package schema

import (
	"encoding/json"
	"errors"
)

var ErrNotArray = errors.New("stored value is not a JSON array")

// Validator is implemented by every wire record.
type Validator interface {
	Validate() error
}

// DecodeList decodes a stored JSON array, validating each element
// independently. Malformed elements are dropped rather than failing the
// whole read; the second result reports how many were dropped. A value
// that is not an array at all fails with ErrNotArray.
func DecodeList[T Validator](data []byte) ([]T, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, ErrNotArray
	}

	items := make([]T, 0, len(raw))
	dropped := 0
	for _, elem := range raw {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			dropped++
			continue
		}
		if err := v.Validate(); err != nil {
			dropped++
			continue
		}
		items = append(items, v)
	}
	return items, dropped, nil
}

// DecodeRecord decodes a single stored object. Any failure, structural
// or semantic, reports the record as absent.
func DecodeRecord[T Validator](data []byte) (T, bool) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, false
	}
	if err := v.Validate(); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
