package strmatch

import (
	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/pattern"
	"github.com/vexlang/strmatch/vector"
)

// Regexpr locates the first match of pat in each element of x. Entry i of
// the result is the 1-based position of the match in element i (-1 for no
// match, missing for a missing element) with its length alongside.
//
// With the Perl dialect and a pattern containing capture groups, the result
// carries per-group positions and the capture names.
func Regexpr(pat vector.Element, x *vector.Vector, opt Options) (*MatchVector, error) {
	w := newWarner(opt.Sink)
	opt = opt.fixup(w)
	n := x.Len()

	if pat.IsNA() {
		mv := &MatchVector{Start: naInts(n), Length: naInts(n), IndexType: "chars"}
		return mv, nil
	}

	mode := chooseMode(pat, nil, x, opt, true)
	spat, err := normalizeArg(pat, mode, "regular expression")
	if err != nil {
		return nil, err
	}

	dialect := opt.dialect()
	flags := pattern.Flags{Caseless: opt.IgnoreCase, Mode: mode, Warn: w.warnf}
	if dialect == pattern.Perl && pattern.NeedBudget(opt.LimitBudget, x) {
		flags.Budget = pattern.MatchBudget()
	}
	cp, err := pattern.Compile(spat, dialect, flags)
	if err != nil {
		return nil, err
	}
	defer cp.Close()

	withCaps := dialect == pattern.Perl && cp.NumCaptures() > 0
	mv := &MatchVector{Start: make([]int, n), Length: make([]int, n)}
	indexMeta(mv, mode)
	if withCaps {
		mv.Capture = newCaptures(n, cp.NumCaptures(), cp.CaptureNames())
	}

	for i := 0; i < n; i++ {
		if opt.interrupted(i) {
			return nil, ErrInterrupted
		}
		e := x.At(i)
		if e.IsNA() {
			mv.Start[i], mv.Length[i] = vector.NAInt, vector.NAInt
			continue
		}
		s, ok := normalizeElem(e, i, mode, w)
		if !ok {
			mv.Start[i], mv.Length[i] = -1, -1
			continue
		}
		sub := cp.NewSubject(s)
		m, found, ferr := cp.FindSubmatch(sub, 0)
		if ferr != nil {
			w.warnEngine(ferr.(*pattern.EngineError), i)
		}
		if !found {
			mv.Start[i], mv.Length[i] = -1, -1
			if withCaps {
				fillRow(mv.Capture, i, -1)
			}
			continue
		}
		cs, cl := textenc.CharSpan(s, m.Start, m.End, mode)
		mv.Start[i], mv.Length[i] = cs+1, cl
		if withCaps {
			captureRow(mv.Capture, i, s, m, mode)
		}
	}
	return mv, nil
}

// Gregexpr locates every match of pat in each element of x. The result has
// one MatchVector per element, each listing that element's match positions
// and lengths ([-1] when there is none, a single missing entry for a
// missing element).
func Gregexpr(pat vector.Element, x *vector.Vector, opt Options) ([]*MatchVector, error) {
	w := newWarner(opt.Sink)
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

	mode := chooseMode(pat, nil, x, opt, true)
	spat, err := normalizeArg(pat, mode, "regular expression")
	if err != nil {
		return nil, err
	}

	dialect := opt.dialect()
	flags := pattern.Flags{Caseless: opt.IgnoreCase, Mode: mode, Warn: w.warnf}
	if dialect == pattern.Perl && pattern.NeedBudget(opt.LimitBudget, x) {
		flags.Budget = pattern.MatchBudget()
	}
	cp, err := pattern.Compile(spat, dialect, flags)
	if err != nil {
		return nil, err
	}
	defer cp.Close()

	withCaps := dialect == pattern.Perl && cp.NumCaptures() > 0

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
		s, ok := normalizeElem(e, i, mode, w)
		if !ok {
			mv := &MatchVector{Start: []int{-1}, Length: []int{-1}}
			indexMeta(mv, mode)
			out[i] = mv
			continue
		}
		sub := cp.NewSubject(s)
		matches, engErr := cp.AllMatches(sub, withCaps)
		if engErr != nil {
			w.warnEngine(engErr, i)
		}

		if len(matches) == 0 {
			mv := &MatchVector{Start: []int{-1}, Length: []int{-1}}
			indexMeta(mv, mode)
			if withCaps {
				mv.Capture = newCaptures(1, cp.NumCaptures(), cp.CaptureNames())
				fillRow(mv.Capture, 0, -1)
			}
			out[i] = mv
			continue
		}

		mv := &MatchVector{
			Start:  make([]int, len(matches)),
			Length: make([]int, len(matches)),
		}
		indexMeta(mv, mode)
		if withCaps {
			mv.Capture = newCaptures(len(matches), cp.NumCaptures(), cp.CaptureNames())
		}
		for j, m := range matches {
			cs, cl := textenc.CharSpan(s, m.Start, m.End, mode)
			mv.Start[j], mv.Length[j] = cs+1, cl
			if withCaps {
				captureRow(mv.Capture, j, s, m, mode)
			}
		}
		out[i] = mv
	}
	return out, nil
}

func naInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = vector.NAInt
	}
	return out
}

func newCaptures(rows, ncap int, names []string) *Captures {
	c := &Captures{
		Start:  make([][]int, rows),
		Length: make([][]int, rows),
		Names:  names,
	}
	for i := 0; i < rows; i++ {
		c.Start[i] = naInts(ncap)
		c.Length[i] = naInts(ncap)
	}
	return c
}

func fillRow(c *Captures, row, v int) {
	for g := range c.Start[row] {
		c.Start[row][g], c.Length[row][g] = v, v
	}
}

// captureRow converts the capture spans of one match into 1-based positions
// in the row's unit; unset groups read as -1.
func captureRow(c *Captures, row int, s string, m pattern.Match, mode textenc.Mode) {
	for g := range c.Start[row] {
		if g >= len(m.Caps) || !m.Caps[g].Set {
			c.Start[row][g], c.Length[row][g] = -1, -1
			continue
		}
		sp := m.Caps[g]
		cs, cl := textenc.CharSpan(s, sp.Start, sp.End, mode)
		c.Start[row][g], c.Length[row][g] = cs+1, cl
	}
}
