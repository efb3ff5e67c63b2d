//go:build !amd64 && !arm64 && !noswar

package scan

import "math/bits"

func init() {
	def := StrategySWAR8
	if bits.UintSize == 64 {
		def = StrategySWAR16
	}
	initStrategy(def)
}
