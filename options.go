package strmatch

import (
	"errors"

	"github.com/vexlang/strmatch/pattern"
)

// ErrInterrupted is returned when the Options.Interrupt hook aborts a call.
var ErrInterrupted = errors.New("interrupted")

// Interrupt polling cadence, in elements.
const interruptStride = 1024

// Options carries the per-call flags. Each operation consults the fields
// that apply to it and ignores the rest.
type Options struct {
	// IgnoreCase requests case-insensitive matching. Ignored (with a
	// warning) when Fixed is set.
	IgnoreCase bool
	// Perl selects the Perl-compatible dialect. Ignored (with a warning)
	// when Fixed is set.
	Perl bool
	// Fixed treats the pattern as a literal byte sequence.
	Fixed bool
	// UseBytes forces byte-space matching and byte-indexed positions.
	UseBytes bool
	// Value makes Grep return the matching elements instead of their
	// indices, and GrepRaw return matched content instead of offsets.
	Value bool
	// Invert selects the non-matching elements (Grep) or the byte ranges
	// between matches (GrepRaw).
	Invert bool
	// All makes GrepRaw report every match instead of the first.
	All bool
	// LimitBudget forces the Perl engine's backtracking budget on or off.
	// Nil applies the budget only when a long subject is present.
	LimitBudget *bool
	// Sink receives warnings; nil means DefaultSink.
	Sink Sink
	// Interrupt is polled between elements; returning true aborts the call
	// with ErrInterrupted.
	Interrupt func() bool
}

// fixup normalizes incompatible flag combinations, warning about the flag
// that loses: fixed wins over both perl and ignore-case.
func (o Options) fixup(w *warner) Options {
	if o.Fixed && o.Perl {
		w.warnf("argument '%s' will be ignored", "perl = TRUE")
		o.Perl = false
	}
	if o.Fixed && o.IgnoreCase {
		w.warnf("argument '%s' will be ignored", "ignore.case = TRUE")
		o.IgnoreCase = false
	}
	return o
}

// dialect returns the pattern dialect the flags select.
func (o Options) dialect() pattern.Dialect {
	switch {
	case o.Fixed:
		return pattern.Fixed
	case o.Perl:
		return pattern.Perl
	default:
		return pattern.Extended
	}
}

// interrupted polls the interrupt hook on the element cadence.
func (o Options) interrupted(i int) bool {
	return o.Interrupt != nil && i%interruptStride == 0 && o.Interrupt()
}
