package color

import (
	"fmt"
	"sort"
	"strings"
)

// presetHex holds the fixed preset literals.
var presetHex = map[string]string{
	"white":       "#FFFFFFFF",
	"black":       "#000000FF",
	"transparent": "#00000000",
	"red":         "#FF0000FF",
	"orange":      "#FFA500FF",
	"yellow":      "#FFFF00FF",
	"green":       "#00FF00FF",
	"blue":        "#0000FFFF",
	"purple":      "#800080FF",
}

// White returns opaque white, #FFFFFFFF.
func White() *Color { return MustNew(presetHex["white"]) }

// Black returns opaque black, #000000FF.
func Black() *Color { return MustNew(presetHex["black"]) }

// Transparent returns fully transparent black, #00000000.
func Transparent() *Color { return MustNew(presetHex["transparent"]) }

// Red returns #FF0000FF.
func Red() *Color { return MustNew(presetHex["red"]) }

// Orange returns #FFA500FF.
func Orange() *Color { return MustNew(presetHex["orange"]) }

// Yellow returns #FFFF00FF.
func Yellow() *Color { return MustNew(presetHex["yellow"]) }

// Green returns #00FF00FF.
func Green() *Color { return MustNew(presetHex["green"]) }

// Blue returns #0000FFFF.
func Blue() *Color { return MustNew(presetHex["blue"]) }

// Purple returns #800080FF.
func Purple() *Color { return MustNew(presetHex["purple"]) }

// Preset returns a fresh instance of the named preset. Lookup is
// case-insensitive; unknown names fail with InvalidValue. Like the preset
// functions, every call returns a new Color that later mutations never share.
func Preset(name string) (*Color, error) {
	hex, ok := presetHex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, newError(InvalidValue, name, fmt.Sprintf("unknown preset, want one of %s", strings.Join(PresetNames(), ", ")))
	}
	return MustNew(hex), nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presetHex))
	for name := range presetHex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
