//go:build !siftdebug

package scan

// Internal invariant checks are compiled out of regular builds; the
// siftdebug tag (used alongside tests and fuzzing) turns them into panics.
const debugAsserts = false

func assert(bool, string) {}
