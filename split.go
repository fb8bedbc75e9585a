package strmatch

import (
	"fmt"

	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/pattern"
	"github.com/vexlang/strmatch/vector"
)

// Split splits each element of x into the tokens delimited by matches of the
// corresponding pattern in tok. Element i uses pattern i mod tok.Len(); an
// empty or missing tok behaves as a single empty pattern.
//
// A missing token passes its elements through unchanged; an empty token
// splits into individual characters (code points in character modes, bytes
// otherwise). A missing or invalid input element yields a single missing
// token. Split consults the Fixed, Perl, UseBytes, LimitBudget, Sink and
// Interrupt options.
func Split(x *vector.Vector, tok *vector.Vector, opt Options) (*SplitResult, error) {
	w := newWarner(opt.Sink)
	opt = opt.fixup(w)

	n := x.Len()
	tokens := make([]vector.Element, 0, tok.Len())
	for i := 0; i < tok.Len(); i++ {
		tokens = append(tokens, tok.At(i))
	}
	if len(tokens) == 0 {
		tokens = append(tokens, vector.S(""))
	}
	tlen := len(tokens)

	mode := chooseSplitMode(tokens, x, opt)
	dialect := opt.dialect()
	flags := pattern.Flags{Mode: mode, Warn: w.warnf}
	if dialect == pattern.Perl && pattern.NeedBudget(opt.LimitBudget, x) {
		flags.Budget = pattern.MatchBudget()
	}

	out := make([]*vector.Vector, n)
	for it := 0; it < tlen; it++ {
		tokEl := tokens[it]

		if tokEl.IsNA() {
			// A missing token does not split.
			for i := it; i < n; i += tlen {
				out[i] = vector.New(x.At(i))
			}
			continue
		}

		spl, err := normalizeArg(tokEl, mode, fmt.Sprintf("'split' string %d", it+1))
		if err != nil {
			return nil, err
		}

		if spl == "" {
			for i := it; i < n; i += tlen {
				if opt.interrupted(i) {
					return nil, ErrInterrupted
				}
				e := x.At(i)
				if e.IsNA() {
					out[i] = vector.New(vector.NA)
					continue
				}
				s, ok := normalizeElem(e, i, mode, w)
				if !ok {
					out[i] = vector.New(vector.NA)
					continue
				}
				chars := textenc.Chars(s, mode)
				elts := make([]vector.Element, len(chars))
				for j, c := range chars {
					elts[j] = tokenElement(c, e.Enc(), mode)
				}
				out[i] = vector.New(elts...)
			}
			continue
		}

		cp, err := pattern.Compile(spl, dialect, flags)
		if err != nil {
			return nil, err
		}
		for i := it; i < n; i += tlen {
			if opt.interrupted(i) {
				cp.Close()
				return nil, ErrInterrupted
			}
			e := x.At(i)
			if e.IsNA() {
				out[i] = vector.New(vector.NA)
				continue
			}
			s, ok := normalizeElem(e, i, mode, w)
			if !ok {
				out[i] = vector.New(vector.NA)
				continue
			}
			toks, engErr := splitOne(cp, s, mode)
			if engErr != nil {
				w.warnEngine(engErr, i)
			}
			elts := make([]vector.Element, len(toks))
			for j, t := range toks {
				elts[j] = tokenElement(t, e.Enc(), mode)
			}
			out[i] = vector.New(elts...)
		}
		cp.Close()
	}

	return &SplitResult{Tokens: out, Names: x.Names()}, nil
}

// splitOne produces the tokens of one subject. The token before a non-empty
// match is the text since the previous match end; an empty match at the
// current token boundary consumes the next character as its token. A
// non-empty tail is a final token.
func splitOne(cp *pattern.Compiled, s string, mode textenc.Mode) ([]string, *pattern.EngineError) {
	if len(s) == 0 {
		return []string{""}, nil
	}
	sub := cp.NewSubject(s)
	var toks []string
	off, last := 0, 0
	for off < len(s) {
		m, ok, err := cp.Find(sub, off)
		if err != nil {
			return toks, err.(*pattern.EngineError)
		}
		if !ok {
			break
		}
		switch {
		case !m.Empty():
			toks = append(toks, s[last:m.Start])
			last, off = m.End, m.End
		case m.Start > last:
			toks = append(toks, s[last:m.Start])
			last, off = m.Start, m.Start
		default:
			cw := textenc.CharWidth(s, m.Start, mode)
			toks = append(toks, s[m.Start:m.Start+cw])
			last, off = m.Start+cw, m.Start+cw
		}
	}
	if last < len(s) {
		toks = append(toks, s[last:])
	}
	return toks, nil
}

// chooseSplitMode is the classifier variant for the splitter: no ASCII fast
// path, and every token element participates in the tag scan.
func chooseSplitMode(tokens []vector.Element, x *vector.Vector, opt Options) textenc.Mode {
	if opt.UseBytes {
		return textenc.ModeBytes
	}
	haveBytes := false
	for _, t := range tokens {
		if t.Enc() == vector.EncBytes {
			haveBytes = true
			break
		}
	}
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
	for _, t := range tokens {
		if useUTF8 {
			break
		}
		if t.Enc() == vector.EncUTF8 {
			useUTF8 = true
		}
	}
	for i := 0; !useUTF8 && i < x.Len(); i++ {
		if x.At(i).Enc() == vector.EncUTF8 {
			useUTF8 = true
		}
	}
	if !useUTF8 && !loc.Latin1 {
		for _, t := range tokens {
			if t.Enc() == vector.EncLatin1 {
				useUTF8 = true
				break
			}
		}
		for i := 0; !useUTF8 && i < x.Len(); i++ {
			if x.At(i).Enc() == vector.EncLatin1 {
				useUTF8 = true
			}
		}
	}

	if !opt.Fixed && !opt.Perl {
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

// tokenElement tags one produced token with the encoding the mode implies.
func tokenElement(s string, src vector.Enc, mode textenc.Mode) vector.Element {
	switch {
	case mode.CharSpace():
		return vector.NewElement(s, vector.EncUTF8)
	case src == vector.EncBytes:
		return vector.NewElement(s, vector.EncBytes)
	default:
		return vector.NewElement(s, vector.EncUnknown)
	}
}
