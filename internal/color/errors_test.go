package color

import (
	"errors"
	"fmt"
	"testing"
)

func TestMessage(t *testing.T) {
	if got, want := Message("blue", ""), `Invalid color, "blue"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := Message("#FFFF", detailHex), `Invalid color, "#FFFF": not a valid HEX code`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rbg(0,0,0)", `rbg(0,0,0) is not a valid color format, did you mean "rgb" instead?`},
		{"hls(0,0,0)", `hls(0,0,0) is not a valid color format, did you mean "hsl" instead?`},
		{"rgab(0,0,0,1)", `rgab(0,0,0,1) is not a valid color format, did you mean "rgba" instead?`},
		{"hsal(0,0%,0%,1)", `hsal(0,0%,0%,1) is not a valid color format, did you mean "hsla" instead?`},
		{"rgc(0,0,0)", `rgc(0,0,0) is not a valid color format, did you mean "rgb" instead?`},
		{"FFFFFF", `FFFFFF is not a valid color format, did you forget the "#"?`},
		{"ff000080", `ff000080 is not a valid color format, did you forget the "#"?`},
		{"rgb(0,0,0)", ""},
		{"blue", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Suggest(tt.input); got != tt.want {
				t.Errorf("Suggest(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := newError(InvalidRGBCode, "rgb(256, 0, 0)", detailRGB)

	if !errors.Is(err, ErrInvalidRGBCode) {
		t.Error("error should match its kind sentinel")
	}
	if errors.Is(err, ErrInvalidHSLCode) {
		t.Error("error should not match another kind")
	}
	if !errors.Is(err, &Error{Kind: InvalidRGBCode, Input: "rgb(256, 0, 0)"}) {
		t.Error("error should match same kind and input")
	}
	if errors.Is(err, &Error{Kind: InvalidRGBCode, Input: "rgb(0, 0, 0)"}) {
		t.Error("error should not match a different input")
	}

	wrapped := fmt.Errorf("tool failed: %w", err)
	if !errors.Is(wrapped, ErrInvalidRGBCode) {
		t.Error("wrapped error should match its kind sentinel")
	}
	if KindOf(wrapped) != InvalidRGBCode {
		t.Errorf("KindOf(wrapped): got %v, want InvalidRGBCode", KindOf(wrapped))
	}
	if KindOf(errors.New("other")) != 0 {
		t.Error("KindOf on a foreign error should be 0")
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		InvalidColor:   "InvalidColor",
		InvalidHexCode: "InvalidHexCode",
		InvalidRGBCode: "InvalidRGBCode",
		InvalidHSLCode: "InvalidHSLCode",
		InvalidValue:   "InvalidValue",
		Kind(42):       "Kind(42)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}
}
