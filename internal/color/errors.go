package color

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the category of a color validation failure.
type Kind int

const (
	// InvalidColor means the input does not have the shape of any notation
	// (misspelled keyword, missing "#", unrecognized text).
	InvalidColor Kind = iota + 1
	// InvalidHexCode means a "#"-prefixed string has the wrong length or
	// contains non-hex characters.
	InvalidHexCode
	// InvalidRGBCode means an rgb-shaped input or call has a non-numeric or
	// out-of-range component.
	InvalidRGBCode
	// InvalidHSLCode is the hsl counterpart of InvalidRGBCode.
	InvalidHSLCode
	// InvalidValue means a named field holds an unexpected value.
	InvalidValue
)

// String returns the kind name as used in logs and tool errors.
func (k Kind) String() string {
	switch k {
	case InvalidColor:
		return "InvalidColor"
	case InvalidHexCode:
		return "InvalidHexCode"
	case InvalidRGBCode:
		return "InvalidRGBCode"
	case InvalidHSLCode:
		return "InvalidHSLCode"
	case InvalidValue:
		return "InvalidValue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type returned by this package.
//
// Input holds the offending text exactly as received. For numeric calls
// (ValidateRGB, FromHSL, setters) it holds the functional notation of the
// rejected values, e.g. "rgb(256, 0, 0)". Detail is optional.
type Error struct {
	Kind   Kind
	Input  string
	Detail string
}

// Error implements the error interface using Message.
func (e *Error) Error() string {
	return Message(e.Input, e.Detail)
}

// Is reports whether target is an *Error of the same kind. A target with a
// non-empty Input must also match the input, so the exported sentinels match
// any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Input == "" || t.Input == e.Input
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidColor   = &Error{Kind: InvalidColor}
	ErrInvalidHexCode = &Error{Kind: InvalidHexCode}
	ErrInvalidRGBCode = &Error{Kind: InvalidRGBCode}
	ErrInvalidHSLCode = &Error{Kind: InvalidHSLCode}
	ErrInvalidValue   = &Error{Kind: InvalidValue}
)

// KindOf returns the Kind of the first *Error in err's chain, or 0 if err
// does not wrap one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Detail strings used by the codecs.
const (
	detailHex = "not a valid HEX code"
	detailRGB = "not a valid RGB code"
	detailHSL = "not a valid HSL code"
)

// Message formats a diagnostic as
//
//	Invalid color, "<input>"[: <detail>]
//
// It is a pure function of its arguments.
func Message(input, detail string) string {
	if detail == "" {
		return fmt.Sprintf("Invalid color, %q", input)
	}
	return fmt.Sprintf("Invalid color, %q: %s", input, detail)
}

// notation keywords that Suggest can propose.
var keywords = []string{"rgb", "rgba", "hsl", "hsla"}

// Suggest returns a spelling-correction hint for input, or "" when no
// plausible correction exists.
//
// Two mistakes are recognized:
//   - a keyword that is a misspelling of rgb/rgba/hsl/hsla (same letters in a
//     different order, or one edit away)
//   - bare hex digits of a valid hex length with the leading "#" missing
func Suggest(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	if isBareHex(s) {
		return fmt.Sprintf("%s is not a valid color format, did you forget the \"#\"?", input)
	}

	word := strings.ToLower(s)
	if i := strings.IndexByte(word, '('); i >= 0 {
		word = strings.TrimSpace(word[:i])
	}
	if word == "" {
		return ""
	}

	for _, kw := range keywords {
		if word == kw {
			return ""
		}
	}
	for _, kw := range keywords {
		if sameLetters(word, kw) {
			return fmt.Sprintf("%s is not a valid color format, did you mean %q instead?", input, kw)
		}
	}
	for _, kw := range keywords {
		if editDistance(word, kw) == 1 {
			return fmt.Sprintf("%s is not a valid color format, did you mean %q instead?", input, kw)
		}
	}
	return ""
}

func isBareHex(s string) bool {
	switch len(s) {
	case 3, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func sameLetters(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	ra, rb := []byte(a), []byte(b)
	sort.Slice(ra, func(i, j int) bool { return ra[i] < ra[j] })
	sort.Slice(rb, func(i, j int) bool { return rb[i] < rb[j] })
	return string(ra) == string(rb)
}

// editDistance is the Levenshtein distance between two short ASCII words.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func newError(kind Kind, input, detail string) *Error {
	return &Error{Kind: kind, Input: input, Detail: detail}
}
