package color

import (
	"strconv"
	"strings"
)

// ParseHex validates and normalizes a hex color code.
//
// Accepted forms are "#RGB", "#RRGGBB" and "#RRGGBBAA" with case-insensitive
// digits. Shorthand digits are duplicated ("#F0A" -> "#FF00AAFF") and a
// missing alpha pair becomes "FF". The result is always "#" followed by 8
// uppercase hex digits.
//
// Any other length, a non-hex character or a missing "#" fails with
// InvalidHexCode. The 4-digit "#RGBA" shorthand is not accepted.
func ParseHex(input string) (string, error) {
	if len(input) == 0 || input[0] != '#' {
		return "", newError(InvalidHexCode, input, detailHex)
	}
	digits := input[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", newError(InvalidHexCode, input, detailHex)
		}
	}

	switch len(digits) {
	case 3:
		var b strings.Builder
		b.Grow(8)
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String() + "FF"
	case 6:
		digits += "FF"
	case 8:
	default:
		return "", newError(InvalidHexCode, input, detailHex)
	}

	return "#" + strings.ToUpper(digits), nil
}

// HexToRGB decodes a hex color code into its RGB components. The alpha byte
// is scaled to [0,1] and rounded to 2 decimals.
func HexToRGB(input string) (RGB, error) {
	hex, err := ParseHex(input)
	if err != nil {
		return RGB{}, err
	}

	var v [4]int
	for i := range v {
		n, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, newError(InvalidHexCode, input, detailHex)
		}
		v[i] = int(n)
	}

	return RGB{
		Red:   v[0],
		Green: v[1],
		Blue:  v[2],
		Alpha: Round(float64(v[3])/255, 2),
	}, nil
}
