//go:build !amd64 && !arm64

package engine

import "runtime"

func hostCPUName() string {
	switch runtime.GOARCH {
	case "riscv64":
		return "generic-rv64"
	default:
		return "generic"
	}
}

// hostCPUFeatures has no probe on architectures the engine does not model
// feature flags for; callers get an empty set rather than a guess.
func hostCPUFeatures() map[string]bool {
	return map[string]bool{}
}
