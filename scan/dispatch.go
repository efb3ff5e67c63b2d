package scan

import (
	"os"
	"strings"
)

// Strategy identifies one member of the fixed set of scan kernels. The
// choice is made once, before any scan runs; operations consult it but
// never re-detect capabilities.
type Strategy uint8

const (
	// StrategyScalar evaluates every byte with Cond.Match. Never selected
	// automatically; reachable through SIFT_STRATEGY and pinned by tests.
	StrategyScalar Strategy = iota
	// StrategySWAR8 scans 8 bytes per step. The baseline on every platform.
	StrategySWAR8
	// StrategySWAR16 scans 16 bytes per step, sized for 128-bit vector
	// units.
	StrategySWAR16
	// StrategySWAR32 scans 32 bytes per step, sized for 256-bit vector
	// units.
	StrategySWAR32
)

// String returns the name ParseStrategy accepts for s.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategySWAR8:
		return "swar8"
	case StrategySWAR16:
		return "swar16"
	case StrategySWAR32:
		return "swar32"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return StrategyScalar, true
	case "swar8":
		return StrategySWAR8, true
	case "swar16":
		return StrategySWAR16, true
	case "swar32":
		return StrategySWAR32, true
	default:
		return StrategyScalar, false
	}
}

// Selected once at init and read-only afterwards. activeWidth is the
// vector stride; inputs shorter than it take the scalar path outright,
// and the scalar strategy sets it past any possible input length.
var (
	activeStrategy Strategy
	activeWidth    int
)

const maxInt = int(^uint(0) >> 1)

// setStrategy installs s. Called once from the per-arch init; tests and
// benchmarks use it to pin each kernel.
func setStrategy(s Strategy) {
	switch s {
	case StrategySWAR8:
		activeWidth = width8
	case StrategySWAR16:
		activeWidth = width16
	case StrategySWAR32:
		activeWidth = width32
	default:
		s = StrategyScalar
		activeWidth = maxInt
	}
	activeStrategy = s
}

// initStrategy applies the SIFT_STRATEGY override when set and valid,
// otherwise the platform default chosen by the per-arch init.
func initStrategy(def Strategy) {
	if env := os.Getenv("SIFT_STRATEGY"); env != "" {
		if s, ok := ParseStrategy(env); ok {
			setStrategy(s)
			return
		}
	}
	setStrategy(def)
}

// ActiveStrategy returns the strategy selected at init.
func ActiveStrategy() Strategy {
	return activeStrategy
}
