package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/teranos/benchsift/criterion"
)

// FormatPoints renders a result set as the literal tuple list the plotting
// scripts consume: "[(1, 10.0), (2, 20.0), (3, 30.0)]". An empty set
// renders as "[]".
func FormatPoints(points []criterion.Point) string {
	var b strings.Builder
	b.WriteString("[")
	for i, p := range points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		b.WriteString(strconv.Itoa(p.Index))
		b.WriteString(", ")
		b.WriteString(formatTime(p.Time))
		b.WriteString(")")
	}
	b.WriteString("]")
	return b.String()
}

// formatTime renders a measured duration so every element of the artifact
// reads as a float literal downstream; integer-valued floats gain a
// trailing ".0".
func formatTime(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
