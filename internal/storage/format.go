package storage

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// formatFloat renders f the way the file format expects: the shortest of
// 15 or 17 significant digits that reads back as f, '.' as the decimal
// separator, no trailing zeros, and an upper-case exponent marker.
// Infinities are written as INF and -INF, and both zeros as 0.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		// Negative zero too.
		return "0"
	}
	s := strconv.FormatFloat(f, 'g', 15, 64)
	if back, err := strconv.ParseFloat(s, 64); err != nil || back != f {
		s = strconv.FormatFloat(f, 'g', 17, 64)
	}
	return strings.Replace(s, "e", "E", 1)
}

// decimalPattern is the lexical form of a finite xs:double. It excludes the
// hex, underscore and spelled-out infinity forms strconv also accepts.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// parseFloat is the inverse of formatFloat. Surrounding whitespace is
// ignored.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	return strconv.ParseFloat(s, 64)
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	"\r", "&#xD;",
	"\n", "&#xA;",
	"\t", "&#x9;",
)

// escapeAttr escapes s for use inside a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
