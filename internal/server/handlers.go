package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_swatch").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ToolErrorData is the data attached to a failed tool call.
type ToolErrorData struct {
	// Kind is the color error kind ("InvalidHexCode", ...), empty for other failures.
	Kind string `json:"kind,omitempty"`

	// Details is the full error text.
	Details string `json:"details"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", ToolErrorData{Details: err.Error()})
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		data := ToolErrorData{Details: err.Error()}
		if kind := color.KindOf(err); kind != 0 {
			data.Kind = kind.String()
		}
		if s.debug {
			log.Printf("Tool %s failed (%s): %v", params.Name, data.Kind, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", data)
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the color or imaging package
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Conversion
	case "color_parse":
		return s.handleColorParse(args)
	case "color_from_rgb":
		return s.handleColorFromRGB(args)
	case "color_from_hsl":
		return s.handleColorFromHSL(args)
	case "color_set":
		return s.handleColorSet(args)

	// Presets
	case "color_preset":
		return s.handleColorPreset(args)
	case "color_list_presets":
		return s.handleColorListPresets(args)

	// Image Colors
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)
	case "image_swatch":
		return s.handleImageSwatch(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments. Missing arguments decode as an empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// require reports a missing numeric argument.
func require(name string, v *float64) error {
	if v == nil {
		return fmt.Errorf("missing required argument: %s", name)
	}
	return nil
}

// optionalAlpha turns an omitted alpha into no argument, keeping an explicit 0.
func optionalAlpha(alpha *float64) []float64 {
	if alpha == nil {
		return nil
	}
	return []float64{*alpha}
}

// === Color Conversion Handlers ===

type colorParseArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorParseArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := color.New(a.Color)
	if err != nil {
		return nil, err
	}
	return c.Result(), nil
}

type colorFromRGBArgs struct {
	Red   *float64 `json:"red"`
	Green *float64 `json:"green"`
	Blue  *float64 `json:"blue"`
	Alpha *float64 `json:"alpha"`
}

func (s *Server) handleColorFromRGB(args json.RawMessage) (interface{}, error) {
	var a colorFromRGBArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"red", a.Red}, {"green", a.Green}, {"blue", a.Blue}} {
		if err := require(f.name, f.v); err != nil {
			return nil, err
		}
	}
	c, err := color.FromRGB(*a.Red, *a.Green, *a.Blue, optionalAlpha(a.Alpha)...)
	if err != nil {
		return nil, err
	}
	return c.Result(), nil
}

type colorFromHSLArgs struct {
	Hue        *float64 `json:"hue"`
	Saturation *float64 `json:"saturation"`
	Lightness  *float64 `json:"lightness"`
	Alpha      *float64 `json:"alpha"`
}

func (s *Server) handleColorFromHSL(args json.RawMessage) (interface{}, error) {
	var a colorFromHSLArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"hue", a.Hue}, {"saturation", a.Saturation}, {"lightness", a.Lightness}} {
		if err := require(f.name, f.v); err != nil {
			return nil, err
		}
	}
	c, err := color.FromHSL(*a.Hue, *a.Saturation, *a.Lightness, optionalAlpha(a.Alpha)...)
	if err != nil {
		return nil, err
	}
	return c.Result(), nil
}

type colorSetArgs struct {
	Color string   `json:"color"`
	Field string   `json:"field"`
	Value *float64 `json:"value"`
}

func (s *Server) handleColorSet(args json.RawMessage) (interface{}, error) {
	var a colorSetArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := require("value", a.Value); err != nil {
		return nil, err
	}
	c, err := color.New(a.Color)
	if err != nil {
		return nil, err
	}
	if err := c.Set(a.Field, *a.Value); err != nil {
		return nil, fmt.Errorf("failed to set %s on %s: %w", a.Field, c, err)
	}
	return c.Result(), nil
}

// === Preset Handlers ===

type colorPresetArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleColorPreset(args json.RawMessage) (interface{}, error) {
	var a colorPresetArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Preset(a.Name)
	if err != nil {
		return nil, err
	}
	r := c.Result()
	r.Name = a.Name
	return r, nil
}

// PresetListResult lists the preset colors in name order.
type PresetListResult struct {
	Presets []color.Result `json:"presets"`
}

func (s *Server) handleColorListPresets(_ json.RawMessage) (interface{}, error) {
	names := color.PresetNames()
	out := PresetListResult{Presets: make([]color.Result, 0, len(names))}
	for _, name := range names {
		c, err := color.Preset(name)
		if err != nil {
			return nil, err
		}
		r := c.Result()
		r.Name = name
		out.Presets = append(out.Presets, r)
	}
	return out, nil
}

// === Image Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

// regionArg is the JSON form of imaging.Region.
type regionArg struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// resolveRegion picks the explicit region, then the named area, then nil for
// the whole image. Giving both is an error.
func resolveRegion(img image.Image, region *regionArg, area string) (*imaging.Region, error) {
	switch {
	case region != nil && area != "":
		return nil, fmt.Errorf("give either region or area, not both")
	case region != nil:
		return &imaging.Region{X1: region.X1, Y1: region.Y1, X2: region.X2, Y2: region.Y2}, nil
	case area != "":
		r, err := imaging.NamedRegion(img.Bounds(), area)
		if err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, nil
	}
}

type imageDominantColorsArgs struct {
	Path   string     `json:"path"`
	Count  int        `json:"count"`
	Region *regionArg `json:"region,omitempty"`
	Area   string     `json:"area,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := resolveRegion(img, a.Region, a.Area)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, region)
}

type imageAverageColorArgs struct {
	Path   string     `json:"path"`
	Region *regionArg `json:"region,omitempty"`
	Area   string     `json:"area,omitempty"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageAverageColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := resolveRegion(img, a.Region, a.Area)
	if err != nil {
		return nil, err
	}
	return imaging.AverageColor(img, region)
}

type imageCompareRegionsArgs struct {
	Path    string     `json:"path"`
	Region1 *regionArg `json:"region1"`
	Region2 *regionArg `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Region1 == nil || a.Region2 == nil {
		return nil, fmt.Errorf("missing required argument: region1 and region2")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	r1 := imaging.Region{X1: a.Region1.X1, Y1: a.Region1.Y1, X2: a.Region1.X2, Y2: a.Region1.Y2}
	r2 := imaging.Region{X1: a.Region2.X1, Y1: a.Region2.Y1, X2: a.Region2.X2, Y2: a.Region2.Y2}
	return imaging.CompareRegions(img, r1, r2)
}

type imageSwatchArgs struct {
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageSwatch(args json.RawMessage) (interface{}, error) {
	var a imageSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 64
	}
	if a.Height == 0 {
		a.Height = 64
	}
	c, err := color.New(a.Color)
	if err != nil {
		return nil, err
	}
	return imaging.Swatch(c, a.Width, a.Height)
}
