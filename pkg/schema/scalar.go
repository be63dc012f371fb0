// Package schema defines the wire representation of every persisted
// collection. Stored values are JSON arrays (or single objects) written
// by many application versions, so scalar fields tolerate the historic
// encodings: numbers as numeric strings, booleans as "true"/"false",
// timestamps as epoch milliseconds in either form.
package schema

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrNotFinite = errors.New("number is not finite")

// Number decodes from a JSON number or a numeric string.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		s = strings.TrimSpace(quoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNotFinite
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Flag decodes from a JSON boolean or the literal strings "true"/"false".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", `"true"`:
		*f = true
	case "false", `"false"`, "null":
		*f = false
	default:
		return errors.New("not a boolean")
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Millis is an epoch-millisecond timestamp decoded from a JSON number or
// a numeric string. Anything unparsable decodes to zero; consumers treat
// the zero value as "absent" and substitute the current time.
type Millis int64

func (m *Millis) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		*m = 0
		return nil
	}
	*m = Millis(n)
	return nil
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(m))
}

func (m Millis) Time() time.Time {
	if m <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(m))
}

// TimeOrNow resolves an absent timestamp to now.
func (m Millis) TimeOrNow(now time.Time) time.Time {
	if t := m.Time(); !t.IsZero() {
		return t
	}
	return now
}

func MillisOf(t time.Time) Millis {
	if t.IsZero() {
		return 0
	}
	return Millis(t.UnixMilli())
}
