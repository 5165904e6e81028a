package color

import "github.com/lucasb-eyer/go-colorful"

// Colorful converts to a go-colorful value (sRGB in [0,1]). Alpha is
// dropped; go-colorful has no alpha channel.
func (c *Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb.Red) / 255,
		G: float64(c.rgb.Green) / 255,
		B: float64(c.rgb.Blue) / 255,
	}
}

// FromColorful converts a go-colorful value. Out-of-gamut values are
// clamped first; alpha is optional as in FromRGB.
func FromColorful(cf colorful.Color, alpha ...float64) (*Color, error) {
	r, g, b := cf.Clamped().RGB255()
	return FromRGB(float64(r), float64(g), float64(b), alpha...)
}
