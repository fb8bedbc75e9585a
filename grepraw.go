package strmatch

import (
	"errors"

	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/literal"
	"github.com/vexlang/strmatch/pattern"
)

// GrepRaw searches the raw byte vector text for pat, itself an uninterpreted
// byte sequence that may contain embedded NUL bytes. Searching starts at the
// 1-based byte offset. The Fixed option scans for the literal bytes;
// otherwise pat is an extended regular expression applied to the bytes.
//
// The result shape follows the Value, All and Invert options: byte offsets,
// matched content, or the byte ranges between matches (see RawResult).
// Invert without Value is ignored with a warning; an offset below 1 is an
// error, and an offset past the end yields an empty index result.
func GrepRaw(pat, text []byte, offset int, opt Options) (*RawResult, error) {
	w := newWarner(opt.Sink)
	if opt.Fixed && opt.IgnoreCase {
		w.warnf("argument '%s' will be ignored", "ignore.case = TRUE")
	}
	if opt.Invert && !opt.Value {
		w.warnf("argument '%s' will be ignored", "invert = TRUE")
		opt.Invert = false
	}
	if offset < 1 {
		return nil, errors.New("invalid 'offset' argument")
	}
	if offset > len(text) {
		return &RawResult{Indices: []int{}}, nil
	}
	start := offset - 1

	if opt.Fixed {
		if len(pat) == 0 {
			switch {
			case !opt.Value:
				return &RawResult{Indices: []int{}}, nil
			case opt.All:
				return &RawResult{Pieces: [][]byte{}}, nil
			default:
				return &RawResult{Value: []byte{}}, nil
			}
		}
		if !opt.All {
			return rawFixedFirst(pat, text, start, opt), nil
		}
		return rawFixedAll(pat, text, start, opt), nil
	}

	cp, err := pattern.Compile(string(pat), pattern.Extended, pattern.Flags{
		Caseless: opt.IgnoreCase,
		Mode:     textenc.ModeBytes,
		Warn:     w.warnf,
	})
	if err != nil {
		return nil, err
	}
	defer cp.Close()

	// The slice keeps beginning-of-subject anchoring at the caller's offset
	// for the first match; later matches are position-aware within it.
	hay := text[start:]

	if !opt.All {
		return rawRegexFirst(cp, text, hay, start, opt), nil
	}
	return rawRegexAll(cp, text, hay, start, opt, w), nil
}

func rawFixedFirst(pat, text []byte, start int, opt Options) *RawResult {
	res := literal.Find(text, pat, start)
	if opt.Invert {
		if res < 0 {
			if opt.Value {
				return &RawResult{Value: cloneBytes(text)}
			}
			return &RawResult{Indices: []int{1}}
		}
		if !opt.Value {
			pos := 1
			if res == 0 {
				pos = len(pat) + 1
			}
			return &RawResult{Indices: []int{pos}}
		}
		return &RawResult{Value: cutSpan(text, res, res+len(pat))}
	}
	if res < 0 {
		if opt.Value {
			return &RawResult{Value: []byte{}}
		}
		return &RawResult{Indices: []int{}}
	}
	if !opt.Value {
		return &RawResult{Indices: []int{res + 1}}
	}
	// The matched content of a fixed pattern is the pattern itself.
	return &RawResult{Value: cloneBytes(pat)}
}

func rawFixedAll(pat, text []byte, start int, opt Options) *RawResult {
	var idx []int
	for off := start; ; {
		off = literal.Find(text, pat, off)
		if off < 0 {
			break
		}
		idx = append(idx, off+1)
		off += len(pat)
	}
	if !opt.Value {
		if idx == nil {
			idx = []int{}
		}
		return &RawResult{Indices: idx}
	}
	if opt.Invert {
		pieces := make([][]byte, 0, len(idx)+1)
		inv := 0
		for _, p := range idx {
			pieces = append(pieces, cloneBytes(text[inv:p-1]))
			inv = p - 1 + len(pat)
		}
		pieces = append(pieces, cloneBytes(text[inv:]))
		return &RawResult{Pieces: pieces}
	}
	pieces := make([][]byte, len(idx))
	for i := range pieces {
		pieces[i] = cloneBytes(pat)
	}
	return &RawResult{Pieces: pieces}
}

func rawRegexFirst(cp *pattern.Compiled, text, hay []byte, start int, opt Options) *RawResult {
	m, found := cp.FindBytes(hay, 0)
	if opt.Value {
		// An empty match carries no content and counts as no match here.
		if !found || m.Empty() {
			if opt.Invert {
				return &RawResult{Value: cloneBytes(text)}
			}
			return &RawResult{Value: []byte{}}
		}
		if opt.Invert {
			return &RawResult{Value: cutSpan(text, start+m.Start, start+m.End)}
		}
		return &RawResult{Value: cloneBytes(hay[m.Start:m.End])}
	}
	if !found {
		return &RawResult{Indices: []int{}}
	}
	return &RawResult{Indices: []int{start + m.Start + 1}}
}

func rawRegexAll(cp *pattern.Compiled, text, hay []byte, start int, opt Options, w *warner) *RawResult {
	buf := &chunkBuf{}
	nmatches := 0
	for off := 0; ; {
		m, found := cp.FindBytes(hay, off)
		if !found {
			break
		}
		nmatches++
		buf.push(start + m.Start + 1)
		if opt.Value {
			buf.push(m.End - m.Start)
		}
		if m.Empty() {
			if nmatches == 1 && matchesEmptyPast(cp, hay, m.Start) {
				w.warnf("pattern matches an empty string infinitely, returning first match only")
				break
			}
			off = m.Start + 1
		} else {
			off = m.End
		}
		if off >= len(hay) {
			break
		}
	}

	if !opt.Value {
		return &RawResult{Indices: buf.ints()}
	}
	pairs := buf.ints()
	if opt.Invert {
		pieces := make([][]byte, 0, nmatches+1)
		inv := 0
		for k := 0; k+1 < len(pairs); k += 2 {
			st, ln := pairs[k]-1, pairs[k+1]
			pieces = append(pieces, cloneBytes(text[inv:st]))
			inv = st + ln
		}
		pieces = append(pieces, cloneBytes(text[inv:]))
		return &RawResult{Pieces: pieces}
	}
	pieces := make([][]byte, 0, nmatches)
	for k := 0; k+1 < len(pairs); k += 2 {
		st, ln := pairs[k]-1, pairs[k+1]
		pieces = append(pieces, cloneBytes(text[st:st+ln]))
	}
	return &RawResult{Pieces: pieces}
}

// matchesEmptyPast probes whether the pattern still matches empty beyond
// position p, distinguishing a pattern that matches empty everywhere from
// one whose empty match is pinned to the subject start.
func matchesEmptyPast(cp *pattern.Compiled, hay []byte, p int) bool {
	m, found := cp.FindBytes(hay, p+1)
	return found && m.Empty()
}

func cloneBytes(b []byte) []byte {
	return append([]byte{}, b...)
}

// cutSpan returns text with the half-open span [s, e) removed.
func cutSpan(text []byte, s, e int) []byte {
	out := make([]byte, 0, len(text)-(e-s))
	out = append(out, text[:s]...)
	return append(out, text[e:]...)
}

// Chunked accumulator for all-match offsets: grows by doubling up to a
// fixed per-chunk ceiling, then chains further chunks, so huge match sets
// avoid both quadratic copying and oversized single allocations.
const (
	chunkStartLen = 512
	chunkMaxLen   = 32 * 1024 * 1024 / 8 // 32 MiB of ints per chunk
)

type chunkBuf struct {
	full [][]int
	cur  []int
	size int
}

func (b *chunkBuf) push(v int) {
	if b.size == 0 {
		b.size = chunkStartLen
		b.cur = make([]int, 0, b.size)
	}
	if len(b.cur) == b.size {
		b.full = append(b.full, b.cur)
		if b.size < chunkMaxLen {
			b.size *= 2
		}
		b.cur = make([]int, 0, b.size)
	}
	b.cur = append(b.cur, v)
}

func (b *chunkBuf) ints() []int {
	n := len(b.cur)
	for _, c := range b.full {
		n += len(c)
	}
	out := make([]int, 0, n)
	for _, c := range b.full {
		out = append(out, c...)
	}
	return append(out, b.cur...)
}
