package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Areas lists the names accepted by NamedRegion.
var Areas = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// NamedRegion resolves a named area of bounds to a Region.
//
// Quadrants and halves split at the integer midpoint, so on odd sizes the
// right and bottom parts get the extra pixel. "center" is the middle 50%.
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int
	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Region{}, fmt.Errorf("unknown area: %s", name)
	}

	min := bounds.Min
	return Region{X1: min.X + x1, Y1: min.Y + y1, X2: min.X + x2, Y2: min.Y + y2}, nil
}

// rect validates r against bounds.
func (r Region) rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2)
	if !rect.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return rect, nil
}

// cropRegion returns the part of img covered by region, or img itself when
// region is nil. The crop is a copy anchored at (0,0).
func cropRegion(img image.Image, region *Region) (image.Image, error) {
	if region == nil {
		return img, nil
	}
	rect, err := region.rect(img.Bounds())
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, rect), nil
}
