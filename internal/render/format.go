package render

import (
	"strconv"

	"github.com/montanaflynn/stats"
)

// FormatNumber abbreviates n with one decimal: 1500 becomes "1.5k", 2500000 becomes "2.5M".
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return abbreviate(n, 1_000_000) + "M"
	case n >= 1_000:
		return abbreviate(n, 1_000) + "k"
	}
	return strconv.Itoa(n)
}

func abbreviate(n, unit int) string {
	v, _ := stats.Round(float64(n)/float64(unit), 1)
	return strconv.FormatFloat(v, 'f', -1, 64)
}
