package pattern

import (
	"os"
	"strconv"
	"sync"
)

// The Perl engine in this build interprets compiled programs directly and
// has no JIT, so the shared stack is reserved but never allocated. The
// configuration plumbing is kept live so a JIT-capable engine can be dropped
// in without touching call sites, and so the size ceiling is validated the
// same way in every build.
const jitAvailable = false

const (
	jitStackStart   = 32 * 1024
	jitStackMaxDflt = 64 * 1024 * 1024
)

var (
	jitOnce     sync.Once
	jitStack    []byte // process-wide, allocated at first use
	jitStackMax int
)

// JITStackSize returns the ceiling in bytes for the process-wide JIT stack.
// PCRE_JIT_STACK_MAXSIZE overrides the default of 64 MB with a
// floating-point number of MB in [0, 1000]; out-of-range or unparsable
// values are reported through warn and ignored.
func JITStackSize(warn func(format string, args ...any)) int {
	max := jitStackMaxDflt
	if p := os.Getenv("PCRE_JIT_STACK_MAXSIZE"); p != "" {
		x, err := strconv.ParseFloat(p, 64)
		if err == nil && x >= 0 && x <= 1000 {
			max = int(x * 1024 * 1024)
		} else if warn != nil {
			warn("PCRE_JIT_STACK_MAXSIZE invalid and ignored")
		}
	}
	return max
}

// jitAssignment records that a compiled pattern uses the shared JIT stack.
// Releasing the assignment does not release the stack, which stays for the
// life of the process.
type jitAssignment struct{}

func setupJIT(warn func(format string, args ...any)) *jitAssignment {
	if !jitAvailable {
		return nil
	}
	jitOnce.Do(func() {
		if max := JITStackSize(warn); max >= jitStackStart {
			jitStack = make([]byte, 0, jitStackStart)
			jitStackMax = max
		}
	})
	if jitStack == nil {
		return nil
	}
	return &jitAssignment{}
}

func (a *jitAssignment) release() {}

// EngineConfig reports the capabilities of the Perl-compatible engine, in
// the order the configuration query exposes them: UTF-8 support, Unicode
// property support, JIT availability, and stack-based recursion.
func EngineConfig() (utf8, uniProps, jit, stackRecursion bool) {
	return true, true, jitAvailable, false
}
