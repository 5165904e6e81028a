package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB is a validated RGB(A) tuple.
//
// Red, Green and Blue are whole numbers in 0-255. Alpha is in 0-1 with two
// decimals (1 = fully opaque).
type RGB struct {
	Red   int     `json:"red"`
	Green int     `json:"green"`
	Blue  int     `json:"blue"`
	Alpha float64 `json:"alpha"`
}

var (
	// rgbPattern is the strict shape: 1-3 digit channels and an optional
	// alpha with at most one leading digit.
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d?\.?\d+)\s*)?\)$`)

	// rgbShape recognizes anything that was meant to be rgb notation. Input
	// matching rgbShape but not rgbPattern has bad values, not a bad keyword.
	rgbShape = regexp.MustCompile(`(?i)^rgba?\s*\(.*\)$`)
)

// ValidateRGB checks channel and alpha ranges and returns the normalized
// tuple. Channels are rounded to whole numbers, alpha to 2 decimals and
// defaults to 1 when omitted.
//
// Fails with InvalidRGBCode when a channel is NaN or outside [0,255], or a
// supplied alpha is NaN or outside [0,1]. Passing more than one alpha fails
// with InvalidValue.
func ValidateRGB(red, green, blue float64, alpha ...float64) (RGB, error) {
	if len(alpha) > 1 {
		return RGB{}, newError(InvalidValue, notation("rgb", red, green, blue, alpha...), "alpha given more than once")
	}
	if !inRange(red, 0, 255) || !inRange(green, 0, 255) || !inRange(blue, 0, 255) {
		return RGB{}, newError(InvalidRGBCode, notation("rgb", red, green, blue, alpha...), detailRGB)
	}
	if len(alpha) == 1 && !inRange(alpha[0], 0, 1) {
		return RGB{}, newError(InvalidRGBCode, notation("rgb", red, green, blue, alpha...), detailRGB)
	}

	return RGB{
		Red:   int(Round(red, 0)),
		Green: int(Round(green, 0)),
		Blue:  int(Round(blue, 0)),
		Alpha: defaultAlpha(alpha...),
	}, nil
}

// ParseRGB parses "rgb(R, G, B)" or "rgba(R, G, B, A)".
//
// Input that does not look like rgb notation at all (for example "rbg(0,0,0)")
// fails with InvalidColor and carries a spelling hint when one applies. Input
// with the right shape but bad numbers fails with InvalidRGBCode.
func ParseRGB(input string) (RGB, error) {
	s := strings.TrimSpace(input)
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		if rgbShape.MatchString(s) {
			return RGB{}, newError(InvalidRGBCode, input, detailRGB)
		}
		return RGB{}, newError(InvalidColor, input, Suggest(input))
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return RGB{}, newError(InvalidRGBCode, input, detailRGB)
		}
		ch[i] = v
	}

	var alpha []float64
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return RGB{}, newError(InvalidRGBCode, input, detailRGB)
		}
		alpha = append(alpha, a)
	}

	rgb, err := ValidateRGB(ch[0], ch[1], ch[2], alpha...)
	if err != nil {
		// report the text the caller gave us, not the reconstructed call
		return RGB{}, newError(InvalidRGBCode, input, detailRGB)
	}
	return rgb, nil
}

// RGBToHex validates the components and encodes them as "#RRGGBBAA".
func RGBToHex(red, green, blue float64, alpha ...float64) (string, error) {
	rgb, err := ValidateRGB(red, green, blue, alpha...)
	if err != nil {
		return "", err
	}
	return rgb.hex(), nil
}

// RGBToHSL validates the components and converts them to HSL.
//
// Lightness is (max+min)/2 of the channels. Achromatic colors (max == min)
// get hue 0 and saturation 0. Otherwise hue comes from the six-sector formula
// keyed on the largest channel and is normalized into [0,360).
func RGBToHSL(red, green, blue float64, alpha ...float64) (HSL, error) {
	rgb, err := ValidateRGB(red, green, blue, alpha...)
	if err != nil {
		return HSL{}, err
	}
	return rgb.hsl(), nil
}

// hex encodes a validated tuple.
func (c RGB) hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Red, c.Green, c.Blue, int(Round(c.Alpha*255, 0)))
}

// hsl converts a validated tuple.
func (c RGB) hsl() HSL {
	r, g, b := float64(c.Red), float64(c.Green), float64(c.Blue)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	avg := (max + min) / 2

	out := HSL{
		Lightness: Round(avg/255, 2),
		Alpha:     c.Alpha,
	}
	if delta == 0 {
		return out
	}

	// Saturation divides by the rounded lightness. Near white and near black
	// that denominator reaches 0, so the unrounded lightness is used instead.
	d := 1 - math.Abs(2*out.Lightness-1)
	if d == 0 {
		d = 1 - math.Abs(2*avg/255-1)
	}
	out.Saturation = Round(math.Min(delta/d/255, 1), 2)

	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	hue := int(Round(h*60, 0))
	if hue < 0 {
		hue += 360
	}
	out.Hue = hue % 360
	return out
}

// css renders the 4-argument functional notation.
func (c RGB) css() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.Red, c.Green, c.Blue, formatNumber(c.Alpha))
}

// notation rebuilds a functional-notation string from raw call arguments so
// numeric errors can name what was rejected.
func notation(name string, a, b, c float64, alpha ...float64) string {
	args := []string{formatNumber(a), formatNumber(b), formatNumber(c)}
	for _, v := range alpha {
		args = append(args, formatNumber(v))
	}
	if len(alpha) > 0 {
		name += "a"
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
