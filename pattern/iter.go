package pattern

import "github.com/vexlang/strmatch/internal/textenc"

// NextStart returns the offset the next search starts at after m. A
// non-empty match continues from its end; an empty match advances by one
// character so iteration always makes progress.
func NextStart(sub *Subject, m Match, mode textenc.Mode) int {
	if !m.Empty() {
		return m.End
	}
	return m.Start + textenc.CharWidth(sub.str, m.Start, mode)
}

// AllMatches collects every match in the subject in order, applying the
// empty-match advancement rule. No match is attempted at or past the end of
// the subject, so an empty subject yields no matches.
//
// On an engine failure the matches found so far are returned together with
// the *EngineError; the caller reports it as a per-element warning.
func (c *Compiled) AllMatches(sub *Subject, withCaps bool) ([]Match, *EngineError) {
	var out []Match
	for off := 0; off < len(sub.str); {
		m, ok, err := c.find(sub, off, withCaps)
		if err != nil {
			return out, err.(*EngineError)
		}
		if !ok {
			break
		}
		out = append(out, m)
		off = NextStart(sub, m, c.mode)
	}
	return out, nil
}
