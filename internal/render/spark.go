package render

import (
	"math"
	"strings"
)

var sparkBars = []rune("▁▂▃▄▅▆▇█")

// Spark renders a count series as a unicode sparkline, scaled to the
// series' own maximum. An all-zero series renders as a flat baseline.
func Spark(series []int) string {
	max := 0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return strings.Repeat(string(sparkBars[0]), len(series))
	}

	var b strings.Builder
	for _, v := range series {
		idx := int(math.Round(float64(v) / float64(max) * float64(len(sparkBars)-1)))
		b.WriteRune(sparkBars[idx])
	}
	return b.String()
}
