package util

import "fmt"

// Pct renders a fractional weight as a percentage with one decimal,
// e.g. 0.325 -> "32.5%".
func Pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
