package zcam

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// MinUserFPS - lowest rate offered to users, lower values are timelapse/overcrank modes
const MinUserFPS = 23.98

// ParseFPS return false for "Off" and for any non-numeric token
func ParseFPS(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "off") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// FormatFPS - integer rates without fraction (24), others as is (29.97,
// 23.976). Float noise below 1e-6 is dropped. Movfmt names are built from
// this string, so it must stay equal to camera tokens.
func FormatFPS(f float64) string {
	if i := math.Round(f); math.Abs(f-i) < 0.001 {
		return strconv.FormatFloat(i, 'f', 0, 64)
	}
	return strconv.FormatFloat(math.Round(f*1e6)/1e6, 'f', -1, 64)
}

// SortFPS keep all parsed values, ascending
func SortFPS(tokens []string) []string {
	return formatAll(parseAll(tokens, math.Inf(-1)))
}

// MergeFPS - union of fixed and variable rates without values below MinUserFPS
func MergeFPS(fps, vfr []string) []string {
	items := formatAll(parseAll(append(append([]string{}, fps...), vfr...), MinUserFPS))

	// dedup formatted strings, near-equal values give same string
	var n int
	for i, item := range items {
		if i == 0 || item != items[n-1] {
			items[n] = item
			n++
		}
	}

	return items[:n]
}

func parseAll(tokens []string, lowest float64) []float64 {
	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		if f, ok := ParseFPS(token); ok && f >= lowest {
			values = append(values, f)
		}
	}
	sort.Float64s(values)
	return values
}

func formatAll(values []float64) []string {
	items := make([]string, len(values))
	for i, f := range values {
		items[i] = FormatFPS(f)
	}
	return items
}
