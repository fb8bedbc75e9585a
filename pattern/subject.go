package pattern

import (
	"sort"

	"github.com/vexlang/strmatch/internal/textenc"
)

// Subject is a per-element prepared view of one subject buffer. It caches
// the representations the bound engine needs so iteration over successive
// matches does not rebuild them. A Subject is valid only for the Compiled
// value that created it and only until the element's results are produced.
type Subject struct {
	str string

	// Extended / Fixed: byte view.
	b     []byte
	haveB bool

	// Perl: the text the rune-indexed engine sees, plus the byte offset in
	// text of each rune. In byte modes text is the byte-widened form and
	// rune index i corresponds to original byte offset i.
	text       string
	byteOfRune []int
	bytesMode  bool
}

// NewSubject prepares s for matching against the compiled pattern.
func (c *Compiled) NewSubject(s string) *Subject {
	sub := &Subject{str: s}
	switch c.dialect {
	case Extended:
		sub.b = []byte(s)
		sub.haveB = true
	case Perl:
		sub.bytesMode = !c.mode.CharSpace()
		if sub.bytesMode {
			sub.text = textenc.Latin1ToUTF8(s)
		} else {
			sub.text = s
		}
		sub.byteOfRune = runeOffsets(sub.text)
	}
	return sub
}

// Len returns the subject length in bytes of the original buffer.
func (s *Subject) Len() int { return len(s.str) }

// String returns the original subject buffer.
func (s *Subject) String() string { return s.str }

func (s *Subject) bytes() []byte {
	if !s.haveB {
		s.b = []byte(s.str)
		s.haveB = true
	}
	return s.b
}

// runeCount returns the number of runes the Perl engine sees.
func (s *Subject) runeCount() int { return len(s.byteOfRune) - 1 }

// origOfRune maps a rune index reported by the Perl engine to a byte offset
// in the original subject.
func (s *Subject) origOfRune(r int) int {
	if r < 0 {
		return -1
	}
	if s.bytesMode {
		return r
	}
	if r >= len(s.byteOfRune) {
		return len(s.str)
	}
	return s.byteOfRune[r]
}

// runeOfOrig maps a byte offset in the original subject to the rune index
// the Perl engine sees. The offset must lie on a character boundary.
func (s *Subject) runeOfOrig(off int) int {
	if s.bytesMode {
		return off
	}
	return sort.SearchInts(s.byteOfRune, off)
}

// engineOffset maps a byte offset in the original subject to a byte offset
// in the text handed to the Perl engine.
func (s *Subject) engineOffset(off int) int {
	r := s.runeOfOrig(off)
	if r >= len(s.byteOfRune) {
		return len(s.text)
	}
	return s.byteOfRune[r]
}

func runeOffsets(s string) []int {
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	offs = append(offs, len(s))
	return offs
}
