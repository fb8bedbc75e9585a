package strmatch

import (
	"github.com/vexlang/strmatch/pattern"
	"github.com/vexlang/strmatch/vector"
)

// Grep returns the 1-based indices of the elements of x that contain a match
// of pat, or - with the Value option - the matching elements themselves with
// their names subset. The Invert option selects the non-matching elements
// instead. Missing elements never match, so they are selected only with
// Invert; a missing pattern yields an all-missing result of the requested
// shape.
func Grep(pat vector.Element, x *vector.Vector, opt Options) (*GrepResult, error) {
	w := newWarner(opt.Sink)
	opt = opt.fixup(w)
	n := x.Len()

	if pat.IsNA() {
		if opt.Value {
			elts := make([]vector.Element, n)
			for i := range elts {
				elts[i] = vector.NA
			}
			vals := vector.New(elts...)
			vals.SetNames(x.Names())
			return &GrepResult{Values: vals}, nil
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = vector.NAInt
		}
		return &GrepResult{Indices: idx}, nil
	}

	hits, err := grepMatches(pat, x, opt, w)
	if err != nil {
		return nil, err
	}

	if opt.Value {
		var elts []vector.Element
		var names []string
		for i := 0; i < n; i++ {
			if opt.Invert != (hits[i] == vector.True) {
				elts = append(elts, x.At(i))
				if x.Names() != nil {
					names = append(names, x.Names()[i])
				}
			}
		}
		vals := vector.New(elts...)
		if names != nil {
			vals.SetNames(names)
		}
		return &GrepResult{Values: vals}, nil
	}

	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if opt.Invert != (hits[i] == vector.True) {
			idx = append(idx, i+1)
		}
	}
	return &GrepResult{Indices: idx}, nil
}

// Grepl returns, for each element of x, whether it contains a match of pat.
// Missing elements and a missing pattern yield missing logicals.
func Grepl(pat vector.Element, x *vector.Vector, opt Options) ([]vector.Logical, error) {
	w := newWarner(opt.Sink)
	opt = opt.fixup(w)

	if pat.IsNA() {
		out := make([]vector.Logical, x.Len())
		for i := range out {
			out[i] = vector.NALogical
		}
		return out, nil
	}
	return grepMatches(pat, x, opt, w)
}

// grepMatches runs the presence test shared by Grep and Grepl. Missing
// elements are NALogical; invalid elements are False with a capped warning.
func grepMatches(pat vector.Element, x *vector.Vector, opt Options, w *warner) ([]vector.Logical, error) {
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

	out := make([]vector.Logical, x.Len())
	for i := 0; i < x.Len(); i++ {
		if opt.interrupted(i) {
			return nil, ErrInterrupted
		}
		e := x.At(i)
		if e.IsNA() {
			out[i] = vector.NALogical
			continue
		}
		s, ok := normalizeElem(e, i, mode, w)
		if !ok {
			continue
		}
		sub := cp.NewSubject(s)
		_, found, ferr := cp.Find(sub, 0)
		if ferr != nil {
			w.warnEngine(ferr.(*pattern.EngineError), i)
			continue
		}
		if found {
			out[i] = vector.True
		}
	}
	return out, nil
}
