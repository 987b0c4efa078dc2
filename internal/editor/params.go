package editor

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	hexPrefix     = regexp.MustCompile(`^[+-]?0[xX]([0-9a-fA-F]+\.?[0-9a-fA-F]*|\.[0-9a-fA-F]+)([pP][+-]?\d+)?`)
	specialPrefix = regexp.MustCompile(`(?i)^([+-]?)(infinity|inf|nan)`)
)

// ParseParameters reads transformation parameters typed as "x y". The text
// is split on its first space; the second value is optional. Each value is
// the longest numeric prefix of its field, so "12px" reads as 12, and
// anything without a numeric prefix reads as 0. Decimal, hexadecimal
// ("0x10", "0x1.8p1"), inf/infinity and nan prefixes are recognized.
func ParseParameters(text string) (x, y float64) {
	first, second, found := strings.Cut(text, " ")
	x = parseLeadingFloat(first)
	if found {
		y = parseLeadingFloat(second)
	}
	return x, y
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	if m := specialPrefix.FindStringSubmatch(s); m != nil {
		if strings.EqualFold(m[2], "nan") {
			return math.NaN()
		}
		if m[1] == "-" {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	var num string
	if m := hexPrefix.FindStringSubmatch(s); m != nil {
		num = m[0]
		if m[2] == "" {
			// strconv wants a binary exponent on hex floats
			num += "p0"
		}
	} else {
		num = decimalPrefix.FindString(s)
	}
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}
