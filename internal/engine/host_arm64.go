//go:build arm64

package engine

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func hostCPUName() string {
	if runtime.GOOS == "darwin" {
		return "apple-m1"
	}
	return "generic"
}

func hostCPUFeatures() map[string]bool {
	return map[string]bool{
		// fp and neon are architectural on AArch64.
		"fp-armv8": true,
		"neon":     true,
		"aes":      cpu.ARM64.HasAES,
		"sha2":     cpu.ARM64.HasSHA2,
		"sha3":     cpu.ARM64.HasSHA3,
		"crc":      cpu.ARM64.HasCRC32,
		"lse":      cpu.ARM64.HasATOMICS,
		"rdm":      cpu.ARM64.HasASIMDRDM,
		"fullfp16": cpu.ARM64.HasFPHP,
		"dotprod":  cpu.ARM64.HasASIMDDP,
		"sve":      cpu.ARM64.HasSVE,
	}
}
