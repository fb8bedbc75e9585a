package strmatch

import (
	"github.com/vexlang/strmatch/internal/textenc"
	"github.com/vexlang/strmatch/vector"
)

// MatchVector is a vector of match positions with their lengths.
//
// For Regexpr, entry i describes element i's first match. For one element of
// a Gregexpr result, entry j describes the element's j-th match. Positions
// are 1-based; -1 means no match and vector.NAInt a missing input.
//
// IndexType and UseBytes describe the unit of the positions: character
// offsets unless the call ran in byte mode. UseBytes is also true when an
// all-ASCII call was executed in byte space, where the two units coincide.
type MatchVector struct {
	Start  []int
	Length []int

	IndexType string
	UseBytes  bool

	// Capture is present when a Perl-dialect pattern had capture groups.
	Capture *Captures
}

// Captures holds per-match capture-group positions, parallel to the owning
// MatchVector: Start[j][g] is the 1-based position of group g+1 in match j
// (or element j), with the same no-match and missing sentinels.
type Captures struct {
	Start  [][]int
	Length [][]int
	// Names has one entry per group; "" for unnamed groups.
	Names []string
}

// GrepResult is the outcome of Grep: the 1-based indices of the selected
// elements, or - in value mode - the selected elements themselves with
// their names subset.
type GrepResult struct {
	Indices []int
	Values  *vector.Vector
}

// SplitResult is the outcome of Split: one token vector per input element,
// with the input's names preserved.
type SplitResult struct {
	Tokens []*vector.Vector
	Names  []string
}

// RawResult is the outcome of GrepRaw. Exactly one field is populated,
// depending on the value/all/invert flags:
//
//   - Indices: 1-based byte offsets (value=false)
//   - Value:   matched or complemented bytes (value=true, all=false)
//   - Pieces:  matched spans, or the spans between matches when inverted
//     (value=true, all=true)
type RawResult struct {
	Indices []int
	Value   []byte
	Pieces  [][]byte
}

// ConfigFlag is one named capability in a PCREConfig report.
type ConfigFlag struct {
	Name string
	Set  bool
}

// indexMeta fills the position-unit labels for a result produced under mode.
func indexMeta(mv *MatchVector, mode textenc.Mode) {
	mv.IndexType = mode.IndexType()
	mv.UseBytes = mode == textenc.ModeBytes || mode == textenc.ModeASCII
}
