package strmatch

import (
	"fmt"

	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/pattern"
	"github.com/vexlang/strmatch/vector"
)

// Regexec locates the first match of pat in each element of x together with
// the positions of all parenthesized subexpressions. The result has one
// MatchVector per element whose entries are the full match followed by each
// group, 1-based; -1 throughout when the element does not match, a single
// missing entry for a missing element.
//
// Regexec uses the extended dialect, or the fixed dialect with the Fixed
// option; the Perl option is not consulted.
func Regexec(pat vector.Element, x *vector.Vector, opt Options) ([]*MatchVector, error) {
	w := newWarner(opt.Sink)
	opt.Perl = false
	opt = opt.fixup(w)
	n := x.Len()

	out := make([]*MatchVector, n)
	if pat.IsNA() {
		for i := range out {
			out[i] = &MatchVector{
				Start:     []int{vector.NAInt},
				Length:    []int{vector.NAInt},
				IndexType: "chars",
			}
		}
		return out, nil
	}

	mode := chooseModeSimple(pat, x, opt)
	spat, err := normalizeArg(pat, mode, "regular expression")
	if err != nil {
		return nil, err
	}
	cp, err := pattern.Compile(spat, opt.dialect(), pattern.Flags{
		Caseless: opt.IgnoreCase,
		Mode:     mode,
		Warn:     w.warnf,
	})
	if err != nil {
		return nil, err
	}
	defer cp.Close()
	ncap := cp.NumCaptures()

	for i := 0; i < n; i++ {
		if opt.interrupted(i) {
			return nil, ErrInterrupted
		}
		e := x.At(i)
		if e.IsNA() {
			mv := &MatchVector{Start: []int{vector.NAInt}, Length: []int{vector.NAInt}}
			indexMeta(mv, mode)
			out[i] = mv
			continue
		}
		s, nerr := textenc.Normalize(e, mode)
		if nerr != nil {
			return nil, fmt.Errorf("input string %d is invalid in this locale", i+1)
		}
		sub := cp.NewSubject(s)
		m, found, ferr := cp.FindSubmatch(sub, 0)
		if ferr != nil {
			w.warnEngine(ferr.(*pattern.EngineError), i)
		}
		mv := &MatchVector{
			Start:  make([]int, ncap+1),
			Length: make([]int, ncap+1),
		}
		indexMeta(mv, mode)
		if !found {
			mv.Start = []int{-1}
			mv.Length = []int{-1}
			out[i] = mv
			continue
		}
		cs, cl := textenc.CharSpan(s, m.Start, m.End, mode)
		mv.Start[0], mv.Length[0] = cs+1, cl
		for g := 0; g < ncap; g++ {
			if g >= len(m.Caps) || !m.Caps[g].Set {
				mv.Start[g+1], mv.Length[g+1] = -1, -1
				continue
			}
			sp := m.Caps[g]
			gs, gl := textenc.CharSpan(s, sp.Start, sp.End, mode)
			mv.Start[g+1], mv.Length[g+1] = gs+1, gl
		}
		out[i] = mv
	}
	return out, nil
}
