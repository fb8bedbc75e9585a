package pattern

import (
	"github.com/vexlang/strmatch/literal"
)

// Find returns the leftmost match at or after byte offset from.
//
// ok is false when there is no further match. A non-nil error is an engine
// resource failure (*EngineError); the caller converts it to a warning at
// the element boundary and keeps the element's results so far.
//
// Anchors are interpreted against the whole subject: a leading ^ cannot
// match at from > 0, which is the not-beginning-of-line rule iteration
// relies on.
func (c *Compiled) Find(sub *Subject, from int) (Match, bool, error) {
	return c.find(sub, from, false)
}

// FindSubmatch is Find with capture-group extraction. Capture spans are
// populated for the Perl and Extended dialects; the Fixed dialect has none.
func (c *Compiled) FindSubmatch(sub *Subject, from int) (Match, bool, error) {
	return c.find(sub, from, true)
}

func (c *Compiled) find(sub *Subject, from int, caps bool) (Match, bool, error) {
	if from < 0 || from > len(sub.str) {
		return Match{}, false, nil
	}
	switch c.dialect {
	case Fixed:
		i := literal.FindString(sub.str, c.lit, from)
		if i < 0 {
			return Match{}, false, nil
		}
		return Match{Start: i, End: i + len(c.lit)}, true, nil
	case Extended:
		return c.findExtended(sub.bytes(), from, caps)
	default:
		return c.findPerl(sub, from, caps)
	}
}

func (c *Compiled) findExtended(b []byte, from int, caps bool) (Match, bool, error) {
	if !caps || c.ncap == 0 {
		start, end, found := c.ext.FindIndicesAt(b, from)
		if !found {
			return Match{}, false, nil
		}
		m := Match{Start: start, End: end}
		if caps {
			m.Caps = []Span{}
		}
		return m, true, nil
	}
	mc := c.ext.FindSubmatchAt(b, from)
	if mc == nil {
		return Match{}, false, nil
	}
	full := mc.GroupIndex(0)
	m := Match{Start: full[0], End: full[1], Caps: make([]Span, c.ncap)}
	for i := 1; i <= c.ncap && i < mc.NumCaptures(); i++ {
		idx := mc.GroupIndex(i)
		if len(idx) < 2 || idx[0] < 0 {
			continue
		}
		m.Caps[i-1] = Span{Start: idx[0], End: idx[1], Set: true}
	}
	return m, true, nil
}

func (c *Compiled) findPerl(sub *Subject, from int, caps bool) (Match, bool, error) {
	startAt := sub.engineOffset(from)
	if startAt > len(sub.text) {
		return Match{}, false, nil
	}
	m, err := c.perl.FindStringMatchStartingAt(sub.text, startAt)
	if err != nil {
		return Match{}, false, classifyMatchError(err)
	}
	if m == nil {
		return Match{}, false, nil
	}
	out := Match{
		Start: sub.origOfRune(m.Index),
		End:   sub.origOfRune(m.Index + m.Length),
	}
	if caps && c.ncap > 0 {
		out.Caps = make([]Span, c.ncap)
		groups := m.Groups()
		for i := 1; i <= c.ncap && i < len(groups); i++ {
			g := groups[i]
			if len(g.Captures) == 0 {
				// Group did not participate in the match.
				continue
			}
			out.Caps[i-1] = Span{
				Start: sub.origOfRune(g.Index),
				End:   sub.origOfRune(g.Index + g.Length),
				Set:   true,
			}
		}
	}
	return out, true, nil
}

// FindBytes searches a raw byte subject at or after offset from. It serves
// the raw-bytes path and supports the Fixed and Extended dialects only;
// the subject may contain embedded NUL bytes.
func (c *Compiled) FindBytes(b []byte, from int) (Match, bool) {
	if from < 0 || from > len(b) {
		return Match{}, false
	}
	switch c.dialect {
	case Fixed:
		i := literal.Find(b, c.litb, from)
		if i < 0 {
			return Match{}, false
		}
		return Match{Start: i, End: i + len(c.litb)}, true
	case Extended:
		start, end, found := c.ext.FindIndicesAt(b, from)
		if !found {
			return Match{}, false
		}
		return Match{Start: start, End: end}, true
	default:
		return Match{}, false
	}
}
