//go:build amd64 && !noswar

package scan

import "golang.org/x/sys/cpu"

var hasAVX2 = cpu.X86.HasAVX2

func init() {
	// 32-byte steps want 256-bit loads behind them; SSE2-only parts do
	// better keeping the working set at 16 bytes.
	def := StrategySWAR16
	if hasAVX2 {
		def = StrategySWAR32
	}
	initStrategy(def)
}
