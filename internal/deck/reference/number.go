package reference

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads a founder-typed numeric field. Thousands separators are
// ignored and trailing text after a leading number is dropped ("50000 ARR"
// reads as 50000). Anything unparsable, negative or non-finite is 0.
func ParseAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	match := numberPrefix.FindString(cleaned)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FormatCurrency renders an amount in the compact form used on slides:
// $1.2T, $3.4B, $5.6M, $78K, $90.
func FormatCurrency(n float64) string {
	switch {
	case n >= 1e12:
		return fmt.Sprintf("$%.1fT", n/1e12)
	case n >= 1e9:
		return fmt.Sprintf("$%.1fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("$%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("$%.0fK", n/1e3)
	default:
		return fmt.Sprintf("$%.0f", n)
	}
}
