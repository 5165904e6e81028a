// Package color parses, validates and converts colors between hex, RGB(A)
// and HSL(A) notations, and provides Color, a mutable value that keeps all
// of them consistent.
//
// # Notations
//
// Input:
//   - Hex: "#RGB", "#RRGGBB", "#RRGGBBAA" (case-insensitive digits)
//   - RGB: "rgb(R, G, B)" or "rgba(R, G, B, A)", channels 0-255, alpha 0-1
//   - HSL: "hsl(H, S%, L%)" or "hsla(H, S%, L%, A)", hue 0-359
//
// Output is always the canonical "#RRGGBBAA" for hex, and the 4-argument
// "rgba(...)" / "hsla(...)" forms for the functional notations.
//
// # Precision
//
// Channels and hue are whole numbers. Saturation, lightness and alpha are
// fractions rounded to 2 decimals. Rounding is half away from zero. The
// three representations of a Color agree to within that precision.
//
// # Mutation
//
// Setting a single field (SetRed, SetHue, ...) revalidates the whole tuple
// on the owning path, RGB for red/green/blue/alpha and HSL for
// hue/saturation/lightness, then recomputes every representation. A rejected
// update leaves the Color exactly as it was.
//
// # Error Handling
//
// Every failure is an *Error tagged with a Kind:
//   - InvalidColor: input has the shape of no notation (misspelled keyword, missing "#")
//   - InvalidHexCode: "#" followed by the wrong number of digits or non-hex characters
//   - InvalidRGBCode: rgb input or call with a non-numeric or out-of-range value
//   - InvalidHSLCode: hsl input or call with a non-numeric or out-of-range value
//   - InvalidValue: a named field or argument the package does not know
//
// Use errors.Is with the Err* sentinels, or KindOf, to inspect the kind:
//
//	c, err := color.New("rbg(0, 0, 0)")
//	if errors.Is(err, color.ErrInvalidColor) {
//	    fmt.Println(err) // Invalid color, "rbg(0, 0, 0)": ... did you mean "rgb" instead?
//	}
package color
