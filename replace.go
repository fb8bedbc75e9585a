package strmatch

import (
	"errors"
	"strings"
	"unicode"

	"github.com/vexlang/strmatch/internal/conv"
	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/pattern"
)

// errResultTooLong aborts a substitution whose output buffer would pass the
// refusal threshold.
var errResultTooLong = errors.New("result string is too long")

// countSubs returns the number of back-references (\1 .. \9) in a
// replacement template, for sizing the output buffer.
func countSubs(repl string) int {
	n := 0
	for p := 0; p < len(repl); {
		if repl[p] != '\\' {
			p++
			continue
		}
		if p+1 >= len(repl) {
			break
		}
		if repl[p+1] >= '1' && repl[p+1] <= '9' {
			n++
		}
		p += 2
	}
	return n
}

// expandRepl appends the expansion of a replacement template for one match.
//
// Template syntax: \1 .. \9 insert the bytes of the numbered capture group
// (nothing for an absent or unset group); with perlCase, \U, \L and \E turn
// upper-casing, lower-casing and plain copying of captured text on and off;
// a backslash quotes any other character; a lone trailing backslash is
// dropped. Case folding maps whole characters when caseRunes is set and
// single bytes otherwise.
func expandRepl(dst []byte, s string, m pattern.Match, repl string, perlCase, caseRunes bool) []byte {
	upper, lower := false, false
	for p := 0; p < len(repl); {
		c := repl[p]
		if c != '\\' {
			dst = append(dst, c)
			p++
			continue
		}
		if p+1 >= len(repl) {
			// Lone trailing backslash.
			break
		}
		nx := repl[p+1]
		switch {
		case nx >= '1' && nx <= '9':
			k := int(nx - '0')
			if k <= len(m.Caps) && m.Caps[k-1].Set {
				sp := m.Caps[k-1]
				dst = appendCased(dst, s[sp.Start:sp.End], upper, lower, caseRunes)
			}
			p += 2
		case perlCase && nx == 'U':
			upper, lower = true, false
			p += 2
		case perlCase && nx == 'L':
			upper, lower = false, true
			p += 2
		case perlCase && nx == 'E':
			upper, lower = false, false
			p += 2
		default:
			dst = append(dst, nx)
			p += 2
		}
	}
	return dst
}

func appendCased(dst []byte, seg string, upper, lower, caseRunes bool) []byte {
	switch {
	case !upper && !lower:
		return append(dst, seg...)
	case caseRunes:
		if upper {
			return append(dst, strings.Map(unicode.ToUpper, seg)...)
		}
		return append(dst, strings.Map(unicode.ToLower, seg)...)
	default:
		for i := 0; i < len(seg); i++ {
			b := seg[i]
			if upper && b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			} else if lower && b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
			dst = append(dst, b)
		}
		return dst
	}
}

// replaceOne substitutes the first (or, with global, every) match of cp in s.
// It returns the rewritten subject and the number of matches. An engine
// failure ends the element's matching early; the text rewritten so far plus
// the untouched tail is still returned, alongside the failure.
func replaceOne(cp *pattern.Compiled, s, repl string, global bool,
	mode textenc.Mode, fixedRepl, needCaps, perlCase, caseRunes bool,
	nsubs int) (string, int, *pattern.EngineError, error) {

	ns := len(s)
	maxrep, _ := conv.MulAdd(ns-2, nsubs, len(repl))
	var cap0 int
	if global {
		c, ok := conv.MulAdd(ns, maxrep+1, 1000)
		if !ok || c > 10000 {
			c = 2*ns + len(repl) + 1000
		}
		cap0 = c
	} else {
		cap0 = ns + maxrep + 1000
	}
	u := make([]byte, 0, cap0)

	sub := cp.NewSubject(s)
	offset, lastEnd, nmatch := 0, -1, 0
	var engErr *pattern.EngineError
	for {
		var m pattern.Match
		var ok bool
		var err error
		if needCaps {
			m, ok, err = cp.FindSubmatch(sub, offset)
		} else {
			m, ok, err = cp.Find(sub, offset)
		}
		if err != nil {
			engErr = err.(*pattern.EngineError)
			break
		}
		if !ok {
			break
		}
		nmatch++
		u = append(u, s[offset:m.Start]...)
		if lastEnd == -1 || m.End > lastEnd {
			if fixedRepl {
				u = append(u, repl...)
			} else {
				u = expandRepl(u, s, m, repl, perlCase, caseRunes)
			}
			lastEnd = m.End
		}
		offset = m.End
		if offset == ns || !global {
			break
		}
		if m.Empty() {
			cw := textenc.CharWidth(s, offset, mode)
			u = append(u, s[offset:offset+cw]...)
			offset += cw
		}
		if len(u) > conv.MaxResult {
			return "", 0, nil, errResultTooLong
		}
	}
	u = append(u, s[offset:]...)
	if len(u) > conv.MaxResult {
		return "", 0, nil, errResultTooLong
	}
	return string(u), nmatch, engErr, nil
}
