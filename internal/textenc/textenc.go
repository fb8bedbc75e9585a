// Package textenc normalizes text elements into the buffer shape a matching
// engine expects and maps engine byte offsets back to user-visible character
// offsets.
//
// Normalization validates UTF-8 and up-converts Latin-1 content so that every
// character-space match runs over well-formed UTF-8. Invalid input is a
// per-element condition reported to the caller, never a fatal error.
package textenc

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/vexlang/strmatch/vector"
)

// ErrInvalidUTF8 reports an element whose bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ErrInvalidLocale reports an element invalid in the current locale encoding.
var ErrInvalidLocale = errors.New("invalid in this locale")

// Latin1ToUTF8 re-encodes ISO 8859-1 bytes as UTF-8. Every Latin-1 byte
// sequence is valid, so the conversion cannot fail.
func Latin1ToUTF8(s string) string {
	out, _ := charmap.ISO8859_1.NewDecoder().String(s)
	return out
}

// Normalize produces the subject buffer for one element under the given mode.
//
// In byte modes the element's bytes pass through untouched. In character
// modes the result is validated UTF-8: Latin-1-tagged content is up-converted
// and everything else is checked. The returned error is ErrInvalidUTF8 or
// ErrInvalidLocale; the caller warns and records a bad-input outcome for the
// element.
func Normalize(e vector.Element, mode Mode) (string, error) {
	if mode == ModeBytes || mode == ModeASCII {
		return e.String(), nil
	}
	switch e.Enc() {
	case vector.EncLatin1:
		return Latin1ToUTF8(e.String()), nil
	case vector.EncUTF8:
		if !utf8.ValidString(e.String()) {
			return "", ErrInvalidUTF8
		}
		return e.String(), nil
	default:
		// Native encoding: in a Latin-1 locale up-convert, otherwise the
		// native representation must already be valid UTF-8.
		loc := Locale()
		if loc.Latin1 {
			return Latin1ToUTF8(e.String()), nil
		}
		if !utf8.ValidString(e.String()) {
			if loc.UTF8 {
				return "", ErrInvalidUTF8
			}
			return "", ErrInvalidLocale
		}
		return e.String(), nil
	}
}
