// Package pattern provides a uniform compile/match contract over the three
// pattern dialects:
//
//   - Fixed: no metacharacters; matched by direct byte scans (package literal)
//   - Extended: leftmost-longest regular expressions, executed by the
//     coregex engine with position-aware search
//   - Perl: Perl-compatible regular expressions with back-references,
//     lookaround and named groups, executed by regexp2
//
// A Compiled value is a tagged variant over the three engines. The driver is
// picked once at compile time; individual matches never re-dispatch. All
// match offsets returned by this package are byte offsets into the subject,
// regardless of the engine's native indexing.
package pattern

import (
	"strconv"
	"time"

	"github.com/coregx/coregex/meta"
	"github.com/dlclark/regexp2"

	"github.com/vexlang/strmatch/internal/textenc"
)

// Dialect selects the pattern syntax family.
type Dialect uint8

const (
	// Fixed treats the pattern as a literal byte sequence.
	Fixed Dialect = iota
	// Extended is the POSIX-style extended regular expression dialect.
	Extended
	// Perl is the Perl-compatible dialect.
	Perl
)

// String returns the dialect name used in diagnostics.
func (d Dialect) String() string {
	switch d {
	case Extended:
		return "extended"
	case Perl:
		return "perl"
	default:
		return "fixed"
	}
}

// Flags carries the per-call compilation options.
type Flags struct {
	// Caseless requests case-insensitive matching.
	Caseless bool
	// Mode is the execution mode chosen by the encoding classifier.
	Mode textenc.Mode
	// Budget bounds the Perl engine's backtracking per match attempt.
	// Zero means unlimited.
	Budget time.Duration
	// Warn receives compile-time warnings (JIT configuration problems).
	Warn func(format string, args ...any)
}

// Span is a half-open byte range. Set is false for an unset capture group.
type Span struct {
	Start, End int
	Set        bool
}

// Match is one successful match: the overall span plus one Span per capture
// group (filled by FindSubmatch for the Perl and Extended dialects; nil
// otherwise). Offsets are bytes into the subject the match ran over.
type Match struct {
	Start, End int
	Caps       []Span
}

// Empty reports a zero-length match.
func (m Match) Empty() bool { return m.End == m.Start }

// Compiled is a compiled pattern bound to one engine. It is owned by a
// single call and released with Close on every exit path.
type Compiled struct {
	dialect Dialect
	mode    textenc.Mode
	source  string

	lit  string          // Fixed
	litb []byte          // Fixed, raw-bytes path
	ext  *meta.Engine    // Extended
	perl *regexp2.Regexp // Perl

	ncap  int
	names []string
	jit   *jitAssignment
}

// Compile compiles pat under the given dialect and flags.
//
// The pattern must already be normalized for the flags' mode (the caller's
// input normalizer handles encoding). Compile failures return a
// *CompileError carrying the pattern and the engine-reported reason.
func Compile(pat string, d Dialect, f Flags) (*Compiled, error) {
	c := &Compiled{dialect: d, mode: f.Mode, source: pat}
	switch d {
	case Fixed:
		c.lit = pat
		c.litb = []byte(pat)
	case Extended:
		src := pat
		if f.Caseless {
			src = "(?i)" + src
		}
		eng, err := meta.Compile(src)
		if err != nil {
			return nil, &CompileError{Pattern: pat, Reason: err.Error()}
		}
		eng.SetLongest(true)
		c.ext = eng
		c.ncap = eng.NumCaptures() - 1
		if c.ncap < 0 {
			c.ncap = 0
		}
	case Perl:
		src := pat
		if !f.Mode.CharSpace() {
			// Byte semantics: widen each byte to the code point of the same
			// value so the rune-based engine sees one unit per byte.
			src = textenc.Latin1ToUTF8(pat)
		}
		opts := regexp2.None
		if f.Caseless {
			opts |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(src, opts)
		if err != nil {
			return nil, &CompileError{Pattern: pat, Reason: err.Error()}
		}
		if f.Budget > 0 {
			re.MatchTimeout = f.Budget
		}
		c.perl = re
		c.ncap = maxGroupNumber(re)
		c.names = groupNames(re, c.ncap)
		c.jit = setupJIT(f.Warn)
	}
	return c, nil
}

// Close releases the resources bound to the compiled pattern. The engines
// themselves are garbage collected; Close detaches the JIT stack assignment
// so the shared stack outlives the call.
func (c *Compiled) Close() {
	if c == nil {
		return
	}
	c.jit.release()
	c.jit = nil
	c.ext = nil
	c.perl = nil
}

// Dialect returns the dialect the pattern was compiled for.
func (c *Compiled) Dialect() Dialect { return c.dialect }

// Mode returns the execution mode the pattern was compiled for.
func (c *Compiled) Mode() textenc.Mode { return c.mode }

// Source returns the pattern text as given to Compile.
func (c *Compiled) Source() string { return c.source }

// NumCaptures returns the number of parenthesized capture groups.
// Zero for the Fixed dialect.
func (c *Compiled) NumCaptures() int { return c.ncap }

// CaptureNames returns the capture-group names in group order, "" for
// unnamed groups. Non-nil only for the Perl dialect with capture groups.
func (c *Compiled) CaptureNames() []string { return c.names }

func maxGroupNumber(re *regexp2.Regexp) int {
	max := 0
	for _, n := range re.GetGroupNumbers() {
		if n > max {
			max = n
		}
	}
	return max
}

func groupNames(re *regexp2.Regexp, ncap int) []string {
	if ncap == 0 {
		return nil
	}
	names := make([]string, ncap)
	for i := 1; i <= ncap; i++ {
		name := re.GroupNameFromNumber(i)
		// Unnamed groups report their number as the name.
		if name == strconv.Itoa(i) {
			name = ""
		}
		names[i-1] = name
	}
	return names
}
