//go:build siftdebug

package scan

const debugAsserts = true

func assert(cond bool, msg string) {
	if !cond {
		panic("internal invariant violated: " + msg)
	}
}
