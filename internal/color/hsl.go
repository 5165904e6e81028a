package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// HSL is a validated HSL(A) tuple.
//
// Hue is a whole number of degrees in [0,360). Saturation, Lightness and
// Alpha are fractions in [0,1] rounded to 2 decimals.
type HSL struct {
	Hue        int     `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Alpha      float64 `json:"alpha"`
}

var (
	hslPattern = regexp.MustCompile(`(?i)^hsla?\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*(?:,\s*(\d?\.?\d+)\s*)?\)$`)
	hslShape   = regexp.MustCompile(`(?i)^hsla?\s*\(.*\)$`)
)

// ValidateHSL checks ranges and returns the normalized tuple.
//
// Hue must lie in the half-open interval [0,360); 360 itself is rejected.
// Saturation, lightness and a supplied alpha must lie in [0,1]. Failures
// are InvalidHSLCode (InvalidValue for more than one alpha).
func ValidateHSL(hue, saturation, lightness float64, alpha ...float64) (HSL, error) {
	if len(alpha) > 1 {
		return HSL{}, newError(InvalidValue, notation("hsl", hue, saturation, lightness, alpha...), "alpha given more than once")
	}
	if math.IsNaN(hue) || hue < 0 || hue >= 360 ||
		!inRange(saturation, 0, 1) || !inRange(lightness, 0, 1) ||
		(len(alpha) == 1 && !inRange(alpha[0], 0, 1)) {
		return HSL{}, newError(InvalidHSLCode, notation("hsl", hue, saturation, lightness, alpha...), detailHSL)
	}

	return HSL{
		Hue:        int(Round(hue, 0)) % 360,
		Saturation: Round(saturation, 2),
		Lightness:  Round(lightness, 2),
		Alpha:      defaultAlpha(alpha...),
	}, nil
}

// ParseHSL parses "hsl(H, S%, L%)" or "hsla(H, S%, L%, A)". Saturation and
// lightness percentages are divided by 100 before validation.
//
// Shape mismatches (for example "hls(0,0,0)") fail with InvalidColor;
// well-shaped input with bad numbers fails with InvalidHSLCode.
func ParseHSL(input string) (HSL, error) {
	s := strings.TrimSpace(input)
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		if hslShape.MatchString(s) {
			return HSL{}, newError(InvalidHSLCode, input, detailHSL)
		}
		return HSL{}, newError(InvalidColor, input, Suggest(input))
	}

	var v [3]float64
	for i := range v {
		n, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return HSL{}, newError(InvalidHSLCode, input, detailHSL)
		}
		v[i] = n
	}

	var alpha []float64
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return HSL{}, newError(InvalidHSLCode, input, detailHSL)
		}
		alpha = append(alpha, a)
	}

	hsl, err := ValidateHSL(v[0], v[1]/100, v[2]/100, alpha...)
	if err != nil {
		return HSL{}, newError(InvalidHSLCode, input, detailHSL)
	}
	return hsl, nil
}

// HSLToRGB validates the components and converts them to RGB.
//
//	chroma    = (1 - |2L - 1|) * S
//	huePrime  = H / 60
//	position  = chroma * (1 - |huePrime mod 2 - 1|)
//	lightness = L - chroma/2
//
// The (chroma, position, 0) permutation for the sector of huePrime is
// shifted by lightness and scaled to 0-255.
func HSLToRGB(hue, saturation, lightness float64, alpha ...float64) (RGB, error) {
	hsl, err := ValidateHSL(hue, saturation, lightness, alpha...)
	if err != nil {
		return RGB{}, err
	}
	return hsl.rgb(), nil
}

func (c HSL) rgb() RGB {
	chroma := (1 - math.Abs(2*c.Lightness-1)) * c.Saturation
	huePrime := float64(c.Hue) / 60
	position := chroma * (1 - math.Abs(math.Mod(huePrime, 2)-1))
	lightnessPrime := c.Lightness - chroma/2

	var r, g, b float64
	switch {
	case huePrime < 1:
		r, g, b = chroma, position, 0
	case huePrime < 2:
		r, g, b = position, chroma, 0
	case huePrime < 3:
		r, g, b = 0, chroma, position
	case huePrime < 4:
		r, g, b = 0, position, chroma
	case huePrime < 5:
		r, g, b = position, 0, chroma
	default:
		r, g, b = chroma, 0, position
	}

	return RGB{
		Red:   channel(r + lightnessPrime),
		Green: channel(g + lightnessPrime),
		Blue:  channel(b + lightnessPrime),
		Alpha: c.Alpha,
	}
}

// channel scales a unit value to 0-255, clamping float noise at the ends.
func channel(v float64) int {
	n := int(Round(v*255, 0))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// css renders the 4-argument functional notation with percentages.
func (c HSL) css() string {
	return fmt.Sprintf("hsla(%d, %s%%, %s%%, %s)", c.Hue,
		formatNumber(Round(c.Saturation*100, 0)),
		formatNumber(Round(c.Lightness*100, 0)),
		formatNumber(c.Alpha))
}
