//go:build !unix

package pattern

// stackHeadroom returns a conservative stack estimate on platforms without
// rlimit introspection.
func stackHeadroom() int {
	return 6 * 1024 * 1024
}
