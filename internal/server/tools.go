package server

import "github.com/ironsheep/color-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperty is the schema shared by every argument that takes a color string.
var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Color in hex (#RGB, #RRGGBB, #RRGGBBAA), rgb()/rgba() or hsl()/hsla() notation",
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// regionProperty describes a rectangle; (x1,y1) inclusive, (x2,y2) exclusive.
var regionProperty = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

var areaProperty = map[string]interface{}{
	"type":        "string",
	"enum":        imaging.Areas,
	"description": "Optional named area instead of an explicit region",
}

var alphaProperty = map[string]interface{}{
	"type":        "number",
	"description": "Optional opacity from 0 (transparent) to 1 (opaque). Default 1",
	"minimum":     0,
	"maximum":     1,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Conversion
		{
			Name:        "color_parse",
			Description: "Parse a color in hex, rgb(a) or hsl(a) notation and return it in every notation. Misspelled notations are rejected with a correction hint.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_from_rgb",
			Description: "Build a color from red, green and blue channels (0-255) and an optional alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"red":   map[string]interface{}{"type": "number", "minimum": 0, "maximum": 255},
					"green": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 255},
					"blue":  map[string]interface{}{"type": "number", "minimum": 0, "maximum": 255},
					"alpha": alphaProperty,
				},
				"required": []string{"red", "green", "blue"},
			},
		},
		{
			Name:        "color_from_hsl",
			Description: "Build a color from hue (0-359 degrees), saturation and lightness (0-1 fractions) and an optional alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees, 0 <= hue < 360",
						"minimum":     0,
						"maximum":     359,
					},
					"saturation": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
					"lightness":  map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
					"alpha":      alphaProperty,
				},
				"required": []string{"hue", "saturation", "lightness"},
			},
		},
		{
			Name:        "color_set",
			Description: "Change a single field of a color and return the recomputed color. Red, green, blue and alpha are applied in RGB; hue, saturation and lightness in HSL. Invalid values leave the color unchanged and return an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"field": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"red", "green", "blue", "alpha", "hue", "saturation", "lightness"},
						"description": "Field to change",
					},
					"value": map[string]interface{}{
						"type":        "number",
						"description": "New value: 0-255 for channels, 0-359 for hue, 0-1 for saturation, lightness and alpha",
					},
				},
				"required": []string{"color", "field", "value"},
			},
		},

		// Presets
		{
			Name:        "color_preset",
			Description: "Return a named preset color (white, black, transparent, red, orange, yellow, green, blue, purple).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"white", "black", "transparent", "red", "orange", "yellow", "green", "blue", "purple"},
						"description": "Preset name",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "color_list_presets",
			Description: "List every preset color with its hex code.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Image Colors
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel coordinate in hex, rgb and hsl notation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get colors at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most common colors of an image or region (palette extraction).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": withDescription(regionProperty, "Optional region to analyze. If omitted, analyzes entire image."),
					"area":   areaProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_average_color",
			Description: "Return the mean color of an image, a region or a named area, alpha included.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": withDescription(regionProperty, "Optional region to average. If omitted, averages entire image."),
					"area":   areaProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions pixel by pixel and by mean color. Returns a similarity score and the CIEDE2000 distance between the mean colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty,
					"region1": withDescription(regionProperty, "First region"),
					"region2": withDescription(regionProperty, "Second region"),
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
		{
			Name:        "image_swatch",
			Description: "Render a solid swatch of a color as a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels (default 64)",
						"default":     64,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels (default 64)",
						"default":     64,
					},
				},
				"required": []string{"color"},
			},
		},
	}
}

// withDescription copies a shared schema and sets its description.
func withDescription(schema map[string]interface{}, description string) map[string]interface{} {
	out := make(map[string]interface{}, len(schema)+1)
	for k, v := range schema {
		out[k] = v
	}
	out["description"] = description
	return out
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
