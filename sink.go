package strmatch

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/vexlang/strmatch/pattern"
)

// Sink receives the warnings a call emits. Implementations must be safe for
// use from the calling goroutine only; operations never share a Sink across
// goroutines.
type Sink interface {
	Warnf(format string, args ...any)
}

// tracer returns the module's trace facility.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultSink routes warnings to the module's trace facility.
var DefaultSink Sink = traceSink{}

type traceSink struct{}

func (traceSink) Warnf(format string, args ...any) {
	tracer().Infof(format, args...)
}

// How many invalid-encoding warnings one call may emit.
const encodingWarnCap = 5

// warner wraps a Sink with the per-call rate cap on encoding warnings.
type warner struct {
	sink     Sink
	encWarns int
}

func newWarner(s Sink) *warner {
	if s == nil {
		s = DefaultSink
	}
	return &warner{sink: s}
}

func (w *warner) warnf(format string, args ...any) {
	w.sink.Warnf(format, args...)
}

// warnEncoding emits an invalid-input warning unless the call's cap is
// already spent.
func (w *warner) warnEncoding(format string, args ...any) {
	if w.encWarns < encodingWarnCap {
		w.sink.Warnf(format, args...)
	}
	w.encWarns++
}

// warnEngine reports an engine failure for element i; the element keeps the
// results accumulated before the failure.
func (w *warner) warnEngine(err *pattern.EngineError, i int) {
	if err == nil {
		return
	}
	if err.Kind == pattern.ErrBudget {
		w.warnf("backtracking budget exhausted in regexp matching for element %d", i+1)
		return
	}
	w.warnf("regexp matching error '%s' for element %d", err.Err, i+1)
}
