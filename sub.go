package strmatch

import (
	"errors"

	"github.com/vexlang/strmatch/pattern"
	"github.com/vexlang/strmatch/vector"
)

// Sub replaces the first match of pat in each element of x with rep.
// Elements without a match pass through unchanged; a matched element whose
// replacement is missing becomes missing, and a missing pattern makes every
// result element missing.
//
// With the extended and Perl dialects the replacement may reference capture
// groups with \1 .. \9; the Perl dialect additionally honors the \U, \L and
// \E case-folding escapes on captured text, folding whole characters in a
// character mode and ASCII letters byte by byte otherwise. With the Fixed
// option the replacement is inserted verbatim.
func Sub(pat, rep vector.Element, x *vector.Vector, opt Options) (*vector.Vector, error) {
	return substitute(pat, rep, x, opt, false)
}

// Gsub is Sub for every match: all non-overlapping matches of pat are
// replaced, with empty matches advancing by one character.
func Gsub(pat, rep vector.Element, x *vector.Vector, opt Options) (*vector.Vector, error) {
	return substitute(pat, rep, x, opt, true)
}

func substitute(pat, rep vector.Element, x *vector.Vector, opt Options, global bool) (*vector.Vector, error) {
	w := newWarner(opt.Sink)
	opt = opt.fixup(w)
	n := x.Len()

	if pat.IsNA() {
		elts := make([]vector.Element, n)
		for i := range elts {
			elts[i] = vector.NA
		}
		out := vector.New(elts...)
		out.SetNames(x.Names())
		return out, nil
	}

	mode := chooseMode(pat, &rep, x, opt, true)
	spat, err := normalizeArg(pat, mode, "'pattern'")
	if err != nil {
		return nil, err
	}
	srep := ""
	if !rep.IsNA() {
		srep, err = normalizeArg(rep, mode, "'replacement'")
		if err != nil {
			return nil, err
		}
	}
	if opt.Fixed && spat == "" {
		return nil, errors.New("zero-length pattern")
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

	fixedRepl := dialect == pattern.Fixed
	nsubs := 0
	if !fixedRepl {
		nsubs = countSubs(srep)
	}
	needCaps := !fixedRepl && cp.NumCaptures() > 0
	perlCase := dialect == pattern.Perl
	caseRunes := perlCase && mode.CharSpace()

	elts := make([]vector.Element, n)
	for i := 0; i < n; i++ {
		if opt.interrupted(i) {
			return nil, ErrInterrupted
		}
		e := x.At(i)
		if e.IsNA() {
			elts[i] = vector.NA
			continue
		}
		s, ok := normalizeElem(e, i, mode, w)
		if !ok {
			elts[i] = vector.NA
			continue
		}
		res, nmatch, engErr, rerr := replaceOne(cp, s, srep, global, mode,
			fixedRepl, needCaps, perlCase, caseRunes, nsubs)
		if rerr != nil {
			return nil, rerr
		}
		if engErr != nil {
			w.warnEngine(engErr, i)
		}
		switch {
		case nmatch == 0:
			elts[i] = e
		case rep.IsNA():
			elts[i] = vector.NA
		case mode.CharSpace():
			elts[i] = vector.NewElement(res, vector.EncUTF8)
		default:
			elts[i] = vector.NewElement(res, vector.EncUnknown)
		}
	}
	out := vector.New(elts...)
	out.SetNames(x.Names())
	return out, nil
}
