package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(6)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one colorctl invocation and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}

	asJSON := false
	if args[0] == "--json" {
		asJSON = true
		args = args[1:]
		if len(args) == 0 {
			printUsage(stderr)
			return 2
		}
	}

	switch args[0] {
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "colorctl %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "presets":
		for _, name := range color.PresetNames() {
			c, _ := color.Preset(name)
			if asJSON {
				r := c.Result()
				r.Name = name
				writeJSON(stdout, r)
				continue
			}
			fmt.Fprintf(stdout, "%s %-12s %s\n", swatch(c), name, c.Hex())
		}
		return 0
	case "preset":
		if len(args) < 2 {
			fmt.Fprintln(stderr, errorStyle.Render("preset: missing name"))
			return 2
		}
		c, err := color.Preset(args[1])
		if err != nil {
			fmt.Fprintln(stderr, errorStyle.Render(err.Error()))
			return 1
		}
		return show(stdout, stderr, c, args[2:], asJSON)
	}

	c, err := color.New(args[0])
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(err.Error()))
		return 1
	}
	return show(stdout, stderr, c, args[1:], asJSON)
}

// show applies field=value edits in order and prints the result.
func show(stdout, stderr io.Writer, c *color.Color, edits []string, asJSON bool) int {
	for _, edit := range edits {
		if err := applyEdit(c, edit); err != nil {
			fmt.Fprintln(stderr, errorStyle.Render(err.Error()))
			return 1
		}
	}

	if asJSON {
		writeJSON(stdout, c.Result())
		return 0
	}

	fmt.Fprintf(stdout, "%s %s\n", swatch(c), c.Hex())
	fmt.Fprintf(stdout, "%s%s\n", labelStyle.Render("rgb"), c.CSSRGB())
	fmt.Fprintf(stdout, "%s%s\n", labelStyle.Render("hsl"), c.CSSHSL())
	return 0
}

func applyEdit(c *color.Color, edit string) error {
	field, raw, ok := strings.Cut(edit, "=")
	if !ok {
		return fmt.Errorf("expected field=value, got %q", edit)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%s: value %q is not a number", field, raw)
	}
	if err := c.Set(strings.TrimSpace(field), v); err != nil {
		return fmt.Errorf("failed to set %s: %w", field, err)
	}
	return nil
}

// swatch renders a few cells with c as background. The terminal has no
// alpha, so the opaque channels are used.
func swatch(c *color.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Colorful().Hex())).
		Render("      ")
}

func writeJSON(w io.Writer, v interface{}) {
	b, _ := json.Marshal(v)
	fmt.Fprintln(w, string(b))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "colorctl - convert colors between hex, rgb and hsl notation")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  colorctl [--json] <color> [field=value ...]")
	fmt.Fprintln(w, "  colorctl [--json] preset <name> [field=value ...]")
	fmt.Fprintln(w, "  colorctl [--json] presets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Colors: #RGB, #RRGGBB, #RRGGBBAA, rgb(r, g, b), rgba(r, g, b, a),")
	fmt.Fprintln(w, "        hsl(h, s%, l%), hsla(h, s%, l%, a)")
	fmt.Fprintf(w, "Fields: %s\n", strings.Join(color.Fields, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --json           Print the color as JSON")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
}
