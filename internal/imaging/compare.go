package imaging

import (
	"image"
	imgcolor "image/color"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AverageColorResult is the mean color of a region.
type AverageColorResult struct {
	Region Region       `json:"region"`
	Pixels int          `json:"pixels"`
	Color  color.Result `json:"color"`
}

// AverageColor returns the mean color of region, or of the whole image when
// region is nil.
//
// Channels and alpha are averaged on non-premultiplied values, then rounded
// the same way any other color is (whole channels, alpha to 2 decimals).
func AverageColor(img image.Image, region *Region) (*AverageColorResult, error) {
	src, err := cropRegion(img, region)
	if err != nil {
		return nil, err
	}

	c, n := averageOf(src)
	r := Region{X1: img.Bounds().Min.X, Y1: img.Bounds().Min.Y, X2: img.Bounds().Max.X, Y2: img.Bounds().Max.Y}
	if region != nil {
		r = *region
	}
	return &AverageColorResult{Region: r, Pixels: n, Color: c.Result()}, nil
}

func averageOf(img image.Image) (*color.Color, int) {
	bounds := img.Bounds()
	var r, g, b, a float64
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := imgcolor.NRGBAModel.Convert(img.At(x, y)).(imgcolor.NRGBA)
			r += float64(p.R)
			g += float64(p.G)
			b += float64(p.B)
			a += float64(p.A)
			n++
		}
	}
	if n == 0 {
		return color.Transparent(), 0
	}
	// means of 8-bit values stay within range
	c, _ := color.FromRGB(r/float64(n), g/float64(n), b/float64(n), a/float64(n)/255)
	return c, n
}

// CompareRegionsResult contains region comparison information
type CompareRegionsResult struct {
	SimilarityScore  float64      `json:"similarity_score"`   // Share of compared pixels within tolerance (0-1)
	PixelsDifferent  int          `json:"pixels_different"`   // Pixels whose mean channel difference exceeds 10
	TotalPixels      int          `json:"total_pixels"`       // Pixels compared (overlap of both sizes)
	SameSize         bool         `json:"same_size"`          // Whether both regions have identical dimensions
	Region1Size      Size         `json:"region1_size"`       // Dimensions of the first region
	Region2Size      Size         `json:"region2_size"`       // Dimensions of the second region
	AverageColorDiff float64      `json:"average_color_diff"` // Mean per-pixel channel difference (0-255)
	Average1         color.Result `json:"average1"`           // Mean color of the first region
	Average2         color.Result `json:"average2"`           // Mean color of the second region
	DeltaE           float64      `json:"delta_e"`            // CIEDE2000 distance between the means (0-100)
}

// CompareRegions compares two regions of an image pixel by pixel and by
// their mean colors.
//
// Pixels are compared from the top-left corners over the overlap of both
// sizes. A pixel counts as different when the mean of its absolute RGB
// channel differences exceeds 10.
//
// DeltaE is the CIEDE2000 distance between the two mean colors on the usual
// 0-100 scale; values below about 2 are hard to tell apart by eye.
func CompareRegions(img image.Image, r1, r2 Region) (*CompareRegionsResult, error) {
	src1, err := cropRegion(img, &r1)
	if err != nil {
		return nil, err
	}
	src2, err := cropRegion(img, &r2)
	if err != nil {
		return nil, err
	}

	w1, h1 := r1.X2-r1.X1, r1.Y2-r1.Y1
	w2, h2 := r2.X2-r2.X1, r2.Y2-r2.Y1
	minW := min(w1, w2)
	minH := min(h1, h2)

	totalPixels := minW * minH
	pixelsDifferent := 0
	var totalColorDiff float64

	// crops are anchored at (0,0)
	for dy := 0; dy < minH; dy++ {
		for dx := 0; dx < minW; dx++ {
			p1 := imgcolor.NRGBAModel.Convert(src1.At(dx, dy)).(imgcolor.NRGBA)
			p2 := imgcolor.NRGBAModel.Convert(src2.At(dx, dy)).(imgcolor.NRGBA)

			diff := float64(absDiff(p1.R, p2.R)+absDiff(p1.G, p2.G)+absDiff(p1.B, p2.B)) / 3.0
			totalColorDiff += diff
			if diff > 10 {
				pixelsDifferent++
			}
		}
	}

	avg1, _ := averageOf(src1)
	avg2, _ := averageOf(src2)

	return &CompareRegionsResult{
		SimilarityScore:  color.Round(1.0-float64(pixelsDifferent)/float64(totalPixels), 3),
		PixelsDifferent:  pixelsDifferent,
		TotalPixels:      totalPixels,
		SameSize:         w1 == w2 && h1 == h2,
		Region1Size:      Size{Width: w1, Height: h1},
		Region2Size:      Size{Width: w2, Height: h2},
		AverageColorDiff: color.Round(totalColorDiff/float64(totalPixels), 2),
		Average1:         avg1.Result(),
		Average2:         avg2.Result(),
		DeltaE:           color.Round(avg1.Colorful().DistanceCIEDE2000(avg2.Colorful())*100, 2),
	}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
