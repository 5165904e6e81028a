package color

import (
	"encoding/json"
	"fmt"
	imgcolor "image/color"
	"strings"
)

// Color is a mutable color value that keeps its hex, RGB and HSL forms in
// sync.
//
// The zero value is not a valid color; build one with New, FromHex, FromRGB,
// FromHSL or a preset. Every Set method validates the full tuple and either
// recomputes all representations or leaves the color unchanged.
//
// A Color is not safe for concurrent mutation. Copies made with Clone (or by
// value) are independent.
type Color struct {
	hex string
	rgb RGB
	hsl HSL
}

// New parses a color in any supported notation.
//
// Routing is by content: a leading "#" is hex, text containing "rgb" is RGB
// notation, text containing "hsl" is HSL notation. Surrounding whitespace is
// ignored and keywords are case-insensitive. Anything else fails with
// InvalidColor and, when possible, a spelling hint.
func New(input string) (*Color, error) {
	s := strings.TrimSpace(input)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return FromHex(s)
	case strings.Contains(lower, "rgb"):
		rgb, err := ParseRGB(s)
		if err != nil {
			return nil, err
		}
		return fromValidRGB(rgb), nil
	case strings.Contains(lower, "hsl"):
		hsl, err := ParseHSL(s)
		if err != nil {
			return nil, err
		}
		return fromValidHSL(hsl), nil
	default:
		return nil, newError(InvalidColor, input, Suggest(input))
	}
}

// MustNew is like New but panics on error. Use it for literals only.
func MustNew(input string) *Color {
	c, err := New(input)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHex builds a color from a hex code ("#RGB", "#RRGGBB", "#RRGGBBAA").
func FromHex(input string) (*Color, error) {
	rgb, err := HexToRGB(input)
	if err != nil {
		return nil, err
	}
	return fromValidRGB(rgb), nil
}

// FromRGB builds a color from RGB components. Alpha is optional and
// defaults to 1; an explicit 0 gives a fully transparent color.
func FromRGB(red, green, blue float64, alpha ...float64) (*Color, error) {
	rgb, err := ValidateRGB(red, green, blue, alpha...)
	if err != nil {
		return nil, err
	}
	return fromValidRGB(rgb), nil
}

// FromHSL builds a color from HSL components, saturation and lightness
// given as fractions in [0,1].
func FromHSL(hue, saturation, lightness float64, alpha ...float64) (*Color, error) {
	hsl, err := ValidateHSL(hue, saturation, lightness, alpha...)
	if err != nil {
		return nil, err
	}
	return fromValidHSL(hsl), nil
}

func fromValidRGB(rgb RGB) *Color {
	c := &Color{}
	c.commitRGB(rgb)
	return c
}

func fromValidHSL(hsl HSL) *Color {
	c := &Color{}
	c.commitHSL(hsl)
	return c
}

// commitRGB replaces the whole state from a validated RGB tuple.
func (c *Color) commitRGB(rgb RGB) {
	c.rgb = rgb
	c.hsl = rgb.hsl()
	c.hex = rgb.hex()
}

// commitHSL replaces the whole state from a validated HSL tuple. The HSL
// values are kept as given so hue and saturation survive on achromatic
// colors.
func (c *Color) commitHSL(hsl HSL) {
	c.hsl = hsl
	c.rgb = hsl.rgb()
	c.hex = c.rgb.hex()
}

// setRGB revalidates the RGB path with one field replaced.
func (c *Color) setRGB(red, green, blue, alpha float64) error {
	rgb, err := ValidateRGB(red, green, blue, alpha)
	if err != nil {
		return err
	}
	c.commitRGB(rgb)
	return nil
}

// setHSL revalidates the HSL path with one field replaced. Alpha is carried
// from the current state.
func (c *Color) setHSL(hue, saturation, lightness float64) error {
	hsl, err := ValidateHSL(hue, saturation, lightness, c.hsl.Alpha)
	if err != nil {
		return err
	}
	c.commitHSL(hsl)
	return nil
}

// Red returns the red channel (0-255).
func (c *Color) Red() int { return c.rgb.Red }

// Green returns the green channel (0-255).
func (c *Color) Green() int { return c.rgb.Green }

// Blue returns the blue channel (0-255).
func (c *Color) Blue() int { return c.rgb.Blue }

// Alpha returns the opacity (0-1, 2 decimals).
func (c *Color) Alpha() float64 { return c.rgb.Alpha }

// Hue returns the hue in degrees (0-359).
func (c *Color) Hue() int { return c.hsl.Hue }

// Saturation returns the saturation (0-1, 2 decimals).
func (c *Color) Saturation() float64 { return c.hsl.Saturation }

// Lightness returns the lightness (0-1, 2 decimals).
func (c *Color) Lightness() float64 { return c.hsl.Lightness }

// RGB returns the RGB components.
func (c *Color) RGB() RGB { return c.rgb }

// HSL returns the HSL components.
func (c *Color) HSL() HSL { return c.hsl }

// SetRed replaces the red channel.
func (c *Color) SetRed(v float64) error {
	return c.setRGB(v, float64(c.rgb.Green), float64(c.rgb.Blue), c.rgb.Alpha)
}

// SetGreen replaces the green channel.
func (c *Color) SetGreen(v float64) error {
	return c.setRGB(float64(c.rgb.Red), v, float64(c.rgb.Blue), c.rgb.Alpha)
}

// SetBlue replaces the blue channel.
func (c *Color) SetBlue(v float64) error {
	return c.setRGB(float64(c.rgb.Red), float64(c.rgb.Green), v, c.rgb.Alpha)
}

// SetAlpha replaces the opacity. It goes through the RGB path, so the
// channels are kept and HSL is recomputed from them.
func (c *Color) SetAlpha(v float64) error {
	return c.setRGB(float64(c.rgb.Red), float64(c.rgb.Green), float64(c.rgb.Blue), v)
}

// SetHue replaces the hue.
func (c *Color) SetHue(v float64) error {
	return c.setHSL(v, c.hsl.Saturation, c.hsl.Lightness)
}

// SetSaturation replaces the saturation.
func (c *Color) SetSaturation(v float64) error {
	return c.setHSL(float64(c.hsl.Hue), v, c.hsl.Lightness)
}

// SetLightness replaces the lightness.
func (c *Color) SetLightness(v float64) error {
	return c.setHSL(float64(c.hsl.Hue), c.hsl.Saturation, v)
}

// Fields lists the names accepted by Set.
var Fields = []string{"red", "green", "blue", "alpha", "hue", "saturation", "lightness"}

// Set replaces the named field. Names are case-insensitive; an unknown
// name fails with InvalidValue.
func (c *Color) Set(field string, v float64) error {
	switch strings.ToLower(field) {
	case "red":
		return c.SetRed(v)
	case "green":
		return c.SetGreen(v)
	case "blue":
		return c.SetBlue(v)
	case "alpha":
		return c.SetAlpha(v)
	case "hue":
		return c.SetHue(v)
	case "saturation":
		return c.SetSaturation(v)
	case "lightness":
		return c.SetLightness(v)
	default:
		return newError(InvalidValue, field, fmt.Sprintf("unknown field, want one of %s", strings.Join(Fields, ", ")))
	}
}

// Hex returns the canonical "#RRGGBBAA" form.
func (c *Color) Hex() string { return c.hex }

// CSSRGB returns "rgba(R, G, B, A)".
func (c *Color) CSSRGB() string { return c.rgb.css() }

// CSSHSL returns "hsla(H, S%, L%, A)".
func (c *Color) CSSHSL() string { return c.hsl.css() }

// String returns the canonical hex form.
func (c *Color) String() string { return c.hex }

// Clone returns an independent copy.
func (c *Color) Clone() *Color {
	cp := *c
	return &cp
}

// Equal reports whether both colors have the same canonical hex form.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.hex == other.hex
}

// NRGBA converts to a non-premultiplied image/color value.
func (c *Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{
		R: uint8(c.rgb.Red),
		G: uint8(c.rgb.Green),
		B: uint8(c.rgb.Blue),
		A: uint8(Round(c.rgb.Alpha*255, 0)),
	}
}

// FromImageColor converts any image/color value. Alpha is taken from the
// non-premultiplied form and rounded to 2 decimals.
func FromImageColor(ic imgcolor.Color) *Color {
	n := imgcolor.NRGBAModel.Convert(ic).(imgcolor.NRGBA)
	// 8-bit channels and alpha/255 are always in range
	c, _ := FromRGB(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
	return c
}

// MarshalJSON encodes the color as its canonical hex string.
func (c *Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.hex)
}

// UnmarshalJSON accepts any notation New accepts.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be a JSON string: %w", err)
	}
	parsed, err := New(s)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// Result is a JSON-friendly snapshot of a color in every notation.
type Result struct {
	Hex    string `json:"hex"`            // "#RRGGBBAA"
	RGBCSS string `json:"rgb_css"`        // "rgba(R, G, B, A)"
	HSLCSS string `json:"hsl_css"`        // "hsla(H, S%, L%, A)"
	RGB    RGB    `json:"rgb"`            // RGB components
	HSL    HSL    `json:"hsl"`            // HSL components
	Name   string `json:"name,omitempty"` // preset name, when built from one
}

// Result returns a snapshot of the current state.
func (c *Color) Result() Result {
	return Result{
		Hex:    c.hex,
		RGBCSS: c.rgb.css(),
		HSLCSS: c.hsl.css(),
		RGB:    c.rgb,
		HSL:    c.hsl,
	}
}
