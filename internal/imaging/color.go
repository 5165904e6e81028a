package imaging

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// SampleResult is the color found at one pixel.
type SampleResult struct {
	X     int          `json:"x"`               // X coordinate that was sampled
	Y     int          `json:"y"`               // Y coordinate that was sampled
	Label string       `json:"label,omitempty"` // Optional label (empty if not provided)
	Color color.Result `json:"color"`           // The color in every notation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *SampleResult: The color at (x, y) in hex, RGB and HSL notation.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The native pixel is converted to non-premultiplied 8-bit RGBA before it is
// handed to color.FromImageColor, so semi-transparent pixels report their
// real channel values. Alpha is kept (2 decimals) and appears in the hex
// code as the last byte.
func SampleColor(img image.Image, x, y int) (*SampleResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.FromImageColor(img.At(x, y))
	return &SampleResult{X: x, Y: y, Color: c.Result()}, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// MultiSampleResult contains color samples from multiple points, in input order.
type MultiSampleResult struct {
	Samples []SampleResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// On error no partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiSampleResult, error) {
	results := make([]SampleResult, 0, len(points))

	for _, p := range points {
		sample, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		sample.Label = p.Label
		results = append(results, *sample)
	}

	return &MultiSampleResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive), (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Percentage float64      `json:"percentage"` // Percentage of pixels with this color (0-100)
	Color      color.Result `json:"color"`      // The quantized color
}

// DominantColorsResult contains the most frequent colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return. Must be positive.
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// Returns:
//   - *DominantColorsResult: The dominant colors sorted by frequency.
//   - error: Non-nil for a non-positive count or a region outside the image.
//
// # Color Quantization
//
// Similar colors are grouped by quantizing each RGB channel to a multiple of
// 16:
//
//	quantized = (original / 16) * 16
//
// Colors #F0F0F0 and #FAFAFA both land in the #F0F0F0 bucket. Alpha is
// ignored; every bucket is reported as an opaque color.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	src, err := cropRegion(img, region)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	counts := make(map[imgcolor.NRGBA]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := imgcolor.NRGBAModel.Convert(src.At(x, y)).(imgcolor.NRGBA)
			key := imgcolor.NRGBA{R: n.R / 16 * 16, G: n.G / 16 * 16, B: n.B / 16 * 16, A: 255}
			counts[key]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, cnt := range counts {
		colors = append(colors, ColorFrequency{
			Percentage: float64(cnt) / float64(totalPixels) * 100,
			Color:      color.FromImageColor(key).Result(),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Color.Hex < colors[j].Color.Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
