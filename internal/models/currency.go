package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency is an amount in cents. It is stored as an integer in MongoDB and
// rendered as dollars in JSON, so 123456 becomes 1234.56.
type Currency int64

// Dollars returns the amount as a float.
func (c Currency) Dollars() float64 {
	return float64(c) / 100
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Dollars(), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a dollar number (1234.56) or a formatted string
// ("$1,234.56").
func (c *Currency) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseCurrency(s)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("currency: %w", err)
	}
	*c = Currency(math.Round(f * 100))
	return nil
}

// ParseCurrency parses "$1,234.56", "1234.56" or "-$3.10".
func ParseCurrency(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("currency: empty amount")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("currency: invalid amount %q: %w", s, err)
	}
	cents := Currency(math.Round(f * 100))
	if neg {
		cents = -cents
	}
	return cents, nil
}
