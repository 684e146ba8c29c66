//go:build !fixedpoint_debug

package fixedpoint

// assertf is a no-op in release builds; see assert_debug.go for the
// fixedpoint_debug build.
func assertf(cond bool, format string, args ...any) {}

const debugAssertionsEnabled = false
