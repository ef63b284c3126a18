//go:build amd64

package engine

import "golang.org/x/sys/cpu"

// hostCPUName classifies the host by x86-64 micro-architecture level.
func hostCPUName() string {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
		return "x86-64-v4"
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA && cpu.X86.HasBMI2:
		return "x86-64-v3"
	case cpu.X86.HasSSE42 && cpu.X86.HasPOPCNT:
		return "x86-64-v2"
	default:
		return "x86-64"
	}
}

func hostCPUFeatures() map[string]bool {
	return map[string]bool{
		// sse and sse2 are architectural on x86-64.
		"sse":        true,
		"sse2":       true,
		"sse3":       cpu.X86.HasSSE3,
		"ssse3":      cpu.X86.HasSSSE3,
		"sse4.1":     cpu.X86.HasSSE41,
		"sse4.2":     cpu.X86.HasSSE42,
		"popcnt":     cpu.X86.HasPOPCNT,
		"avx":        cpu.X86.HasAVX,
		"avx2":       cpu.X86.HasAVX2,
		"fma":        cpu.X86.HasFMA,
		"bmi":        cpu.X86.HasBMI1,
		"bmi2":       cpu.X86.HasBMI2,
		"adx":        cpu.X86.HasADX,
		"aes":        cpu.X86.HasAES,
		"pclmul":     cpu.X86.HasPCLMULQDQ,
		"rdrnd":      cpu.X86.HasRDRAND,
		"rdseed":     cpu.X86.HasRDSEED,
		"avx512f":    cpu.X86.HasAVX512F,
		"avx512bw":   cpu.X86.HasAVX512BW,
		"avx512vl":   cpu.X86.HasAVX512VL,
		"avx512dq":   cpu.X86.HasAVX512DQ,
		"avx512vnni": cpu.X86.HasAVX512VNNI,
	}
}
