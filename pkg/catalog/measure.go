package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Millimeters is an optional, non-negative length. The zero value is absent.
type Millimeters struct {
	v  float64
	ok bool
}

// MM returns a present measurement of v millimeters.
// Negative, NaN and infinite values yield an absent measurement.
func MM(v float64) Millimeters {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Millimeters{}
	}
	return Millimeters{v: v, ok: true}
}

// ParseMM coerces a raw field value. Blank or unparseable input is absent,
// never zero.
func ParseMM(s string) Millimeters {
	s = strings.TrimSpace(s)
	if s == "" {
		return Millimeters{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Millimeters{}
	}
	return MM(v)
}

// Get returns the value and whether it is present.
func (m Millimeters) Get() (float64, bool) { return m.v, m.ok }

// Present reports whether the measurement has a value.
func (m Millimeters) Present() bool { return m.ok }

// Positive reports whether the measurement is present and greater than zero.
func (m Millimeters) Positive() bool { return m.ok && m.v > 0 }

// Or returns the value, or def when absent.
func (m Millimeters) Or(def float64) float64 {
	if !m.ok {
		return def
	}
	return m.v
}

// String formats the value with the shortest exact decimal, or "" when absent.
func (m Millimeters) String() string {
	if !m.ok {
		return ""
	}
	return strconv.FormatFloat(m.v, 'f', -1, 64)
}

// MarshalJSON encodes an absent measurement as null.
func (m Millimeters) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}
	return json.Marshal(m.v)
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (m *Millimeters) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Millimeters{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = ParseMM(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = MM(v)
	return nil
}
