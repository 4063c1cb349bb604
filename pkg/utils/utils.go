package utils

import (
	"fmt"
	"math"
)

// Round2 rounds to two decimal places, matching the precision the API
// reports prices and percentages with.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatVolume renders a share volume with thousands separators.
func FormatVolume(volume int64) string {
	s := fmt.Sprintf("%d", volume)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
