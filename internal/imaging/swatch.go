package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// MaxSwatchSize bounds each side of a rendered swatch in pixels.
const MaxSwatchSize = 1024

// SwatchResult contains a solid-color PNG.
type SwatchResult struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	ImageBase64 string       `json:"image_base64"`
	MimeType    string       `json:"mime_type"`
	Color       color.Result `json:"color"`
}

// Swatch renders a width x height PNG filled with c, alpha included.
func Swatch(c *color.Color, width, height int) (*SwatchResult, error) {
	if width <= 0 || height <= 0 || width > MaxSwatchSize || height > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size %dx%d out of range (1-%d per side)", width, height, MaxSwatchSize)
	}

	img := imaging.New(width, height, c.NRGBA())

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Color:       c.Result(),
	}, nil
}
