//go:build fixedpoint_debug

package fixedpoint

import "fmt"

// assertf panics with a formatted message when cond is false. It only
// exists under the fixedpoint_debug build tag; release builds compile
// assertf as a no-op (see assert_release.go) so the checks this package
// guards with it cost nothing in production, the same trade the
// original makes with its __CUDACC_DEBUG__-gated asserts.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

const debugAssertionsEnabled = true
