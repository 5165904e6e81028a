// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line, and exposes
// the color package (parsing, conversion, single-field mutation, presets) along
// with pixel sampling and swatch rendering from the imaging package.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Conversion:
//   - color_parse: Parse hex, rgb(a) or hsl(a) and return every notation
//   - color_from_rgb: Build a color from channels
//   - color_from_hsl: Build a color from hue, saturation, lightness
//   - color_set: Change one field and return the recomputed color
//
// Presets:
//   - color_preset: Named preset color
//   - color_list_presets: All presets
//
// Image Colors:
//   - image_sample_color: Color at a pixel
//   - image_sample_colors_multi: Colors at several pixels
//   - image_dominant_colors: Palette extraction
//   - image_average_color: Mean color of an image, region or named area
//   - image_compare_regions: Pixel and mean-color comparison of two regions
//   - image_swatch: Solid PNG of a color
//
// # Error Handling
//
// Tool failures are JSON-RPC errors with code -32000 and a data object:
//
//	{"kind": "InvalidRGBCode", "details": "Invalid color, \"rgb(256,0,0)\": not a valid RGB code"}
//
// kind is set for color validation failures and empty otherwise. Lines that
// are not valid JSON get a -32700 parse error.
package server
