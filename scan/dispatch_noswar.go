//go:build noswar

package scan

// The noswar tag turns the word-parallel kernels off for good: every scan
// runs the scalar evaluator, and SIFT_STRATEGY is not consulted.
func init() {
	setStrategy(StrategyScalar)
}
