package strmatch

import (
	"fmt"

	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/vector"
)

// chooseMode picks the execution mode for one call. It runs exactly once,
// before any per-element work, over the pattern, the optional replacement,
// and the text vector.
//
// The decision short-circuits in this order:
//
//  1. the caller asked for bytes;
//  2. every relevant input is pure ASCII - byte space is safe, positions
//     still read as characters (asciiFast operations only);
//  3. some input is byte-tagged - byte space is mandatory;
//  4. UTF-8 is needed: the Perl dialect in a multibyte locale, a
//     UTF-8-tagged input, or a Latin-1-tagged input outside a Latin-1
//     locale;
//  5. the extended dialect upgrades to character space whenever UTF-8 was
//     chosen or the locale is multibyte but not UTF-8.
func chooseMode(pat vector.Element, rep *vector.Element, x *vector.Vector,
	opt Options, asciiFast bool) textenc.Mode {

	if opt.UseBytes {
		return textenc.ModeBytes
	}

	if asciiFast {
		ascii := pat.IsASCII() && (rep == nil || rep.IsASCII())
		for i := 0; ascii && i < x.Len(); i++ {
			e := x.At(i)
			if !e.IsNA() && !e.IsASCII() {
				ascii = false
			}
		}
		if ascii {
			return textenc.ModeASCII
		}
	}

	haveBytes := pat.Enc() == vector.EncBytes ||
		(rep != nil && rep.Enc() == vector.EncBytes)
	for i := 0; !haveBytes && i < x.Len(); i++ {
		if x.At(i).Enc() == vector.EncBytes {
			haveBytes = true
		}
	}
	if haveBytes {
		return textenc.ModeBytes
	}

	loc := textenc.Locale()
	useUTF8 := opt.Perl && loc.MultiByte
	if !useUTF8 {
		useUTF8 = pat.Enc() == vector.EncUTF8 ||
			(rep != nil && rep.Enc() == vector.EncUTF8)
	}
	for i := 0; !useUTF8 && i < x.Len(); i++ {
		if x.At(i).Enc() == vector.EncUTF8 {
			useUTF8 = true
		}
	}
	if !useUTF8 && !loc.Latin1 {
		useUTF8 = pat.Enc() == vector.EncLatin1 ||
			(rep != nil && rep.Enc() == vector.EncLatin1)
		for i := 0; !useUTF8 && i < x.Len(); i++ {
			if x.At(i).Enc() == vector.EncLatin1 {
				useUTF8 = true
			}
		}
	}

	if !opt.Fixed && !opt.Perl {
		// Extended dialect: run multibyte text in character space.
		if loc.MultiByte && !loc.UTF8 {
			useUTF8 = true
		}
		if useUTF8 {
			return textenc.ModeWide
		}
		return textenc.ModeBytes
	}
	if useUTF8 {
		return textenc.ModeUTF8
	}
	return textenc.ModeBytes
}

// chooseModeSimple is the classifier for operations without a Perl dialect
// (regexec): bytes when asked or tagged, ASCII when everything is ASCII,
// character space otherwise.
func chooseModeSimple(pat vector.Element, x *vector.Vector, opt Options) textenc.Mode {
	if opt.UseBytes {
		return textenc.ModeBytes
	}
	ascii := pat.IsASCII()
	for i := 0; ascii && i < x.Len(); i++ {
		e := x.At(i)
		if !e.IsNA() && !e.IsASCII() {
			ascii = false
		}
	}
	if ascii {
		return textenc.ModeASCII
	}
	haveBytes := pat.Enc() == vector.EncBytes
	for i := 0; !haveBytes && i < x.Len(); i++ {
		if x.At(i).Enc() == vector.EncBytes {
			haveBytes = true
		}
	}
	if haveBytes {
		return textenc.ModeBytes
	}
	return textenc.ModeWide
}

// normalizeArg normalizes the pattern or replacement argument; failure is
// fatal for the call, unlike per-element input problems.
func normalizeArg(e vector.Element, mode textenc.Mode, what string) (string, error) {
	s, err := textenc.Normalize(e, mode)
	if err == textenc.ErrInvalidUTF8 {
		return "", fmt.Errorf("%s is invalid UTF-8", what)
	}
	if err != nil {
		return "", fmt.Errorf("%s is invalid in this locale", what)
	}
	return s, nil
}

// normalizeElem normalizes text element i; failure is a per-element warning
// and a bad-input outcome for the element.
func normalizeElem(e vector.Element, i int, mode textenc.Mode, w *warner) (string, bool) {
	s, err := textenc.Normalize(e, mode)
	if err == nil {
		return s, true
	}
	if err == textenc.ErrInvalidUTF8 {
		w.warnEncoding("input string %d is invalid UTF-8", i+1)
	} else {
		w.warnEncoding("input string %d is invalid in this locale", i+1)
	}
	return "", false
}
