// Package imaging connects image files to the color package.
//
// It samples pixel colors into color.Color values, extracts dominant and
// average colors from an image or region, compares two regions, and renders
// solid swatch PNGs from a color. Coordinates are 0-based with (0,0) at the
// top-left corner; for regions, (x1,y1) is inclusive and (x2,y2) exclusive.
// Named areas ("top-left", "center", ...) resolve to regions via NamedRegion.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The sampling functions are
// stateless and may be called concurrently on different images.
//
// # Color Representation
//
// Every sampled color is reported as a color.Result:
//   - Hex: "#RRGGBBAA", alpha included
//   - RGB: channels 0-255, alpha 0-1
//   - HSL: hue 0-359, saturation and lightness 0-1
//
// Pixels are converted to non-premultiplied RGBA before sampling, so a
// half-transparent red pixel reports red 255 with alpha 0.5.
package imaging
