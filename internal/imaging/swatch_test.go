package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

func TestSwatch(t *testing.T) {
	c, err := color.New("rgba(255, 0, 0, 0.5)")
	if err != nil {
		t.Fatalf("color.New failed: %v", err)
	}

	result, err := Swatch(c, 20, 10)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}

	if result.Width != 20 || result.Height != 10 {
		t.Errorf("size: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.Color.Hex != "#FF000080" {
		t.Errorf("Color.Hex: got %s, want #FF000080", result.Color.Hex)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Errorf("bounds: got %v", img.Bounds())
	}

	// the pixel samples back to the swatch color
	sample, err := SampleColor(img, 3, 3)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if sample.Color.Hex != "#FF000080" {
		t.Errorf("sampled: got %s, want #FF000080", sample.Color.Hex)
	}
}

func TestSwatch_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"negative height", 10, -1},
		{"too wide", MaxSwatchSize + 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Swatch(color.White(), tt.width, tt.height); err == nil {
				t.Error("Swatch should fail")
			}
		})
	}
}
