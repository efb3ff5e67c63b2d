//go:build arm64 && !noswar

package scan

import "golang.org/x/sys/cpu"

var hasASIMD = cpu.ARM64.HasASIMD

func init() {
	def := StrategySWAR8
	if hasASIMD {
		def = StrategySWAR16
	}
	initStrategy(def)
}
