package strmatch

import "github.com/vexlang/strmatch/pattern"

// PCREConfig reports the capabilities of the Perl-compatible engine as named
// flags, in order: "UTF-8", "Unicode properties", "JIT", "stack".
func PCREConfig() []ConfigFlag {
	utf8, props, jit, stack := pattern.EngineConfig()
	return []ConfigFlag{
		{Name: "UTF-8", Set: utf8},
		{Name: "Unicode properties", Set: props},
		{Name: "JIT", Set: jit},
		{Name: "stack", Set: stack},
	}
}
