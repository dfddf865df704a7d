// internal/domain/models/looseint.go
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LooseInt is an integer read from free-form input with best-effort parsing.
// Input that does not start with digits yields an invalid value, which
// displays as "NaN" instead of producing an error.
type LooseInt struct {
	Value int
	Valid bool
}

// Int returns a valid LooseInt holding n.
func Int(n int) LooseInt {
	return LooseInt{Value: n, Valid: true}
}

// ParseLooseInt parses the leading integer of s. Leading whitespace and an
// optional sign are accepted and anything after the digits is ignored, so
// "12 students" parses as 12 while "abc" and "" are invalid.
func ParseLooseInt(s string) LooseInt {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return LooseInt{}
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow
		return LooseInt{}
	}
	return Int(n)
}

// String renders the value, or "NaN" when parsing failed.
func (v LooseInt) String() string {
	if !v.Valid {
		return "NaN"
	}
	return strconv.Itoa(v.Value)
}

// MarshalJSON encodes valid values as numbers and invalid ones as null.
func (v LooseInt) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Value)
}
