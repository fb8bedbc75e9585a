//go:build unix

package pattern

import "golang.org/x/sys/unix"

// stackHeadroom returns the soft stack limit in bytes, or a conservative
// fallback when the limit is unavailable; an unbounded or larger limit is
// capped at maxProbedStack.
func stackHeadroom() int {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &lim); err != nil {
		return fallbackStack
	}
	if lim.Cur == unix.RLIM_INFINITY || lim.Cur > maxProbedStack {
		return maxProbedStack
	}
	return int(lim.Cur)
}

const (
	fallbackStack  = 6 * 1024 * 1024
	maxProbedStack = 64 * 1024 * 1024
)
