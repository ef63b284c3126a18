package engine

import (
	"runtime"
	"strings"

	"github.com/xyproto/env/v2"
)

// Triple is the decomposed form of an arch-vendor-os-environment string.
// Components that could not be determined hold "unknown".
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string
}

func (t Triple) String() string {
	return strings.Join([]string{t.Arch, t.Vendor, t.OS, t.Env}, "-")
}

// archAliases maps spellings seen in the wild (including Go's GOARCH names)
// to the canonical architecture component.
var archAliases = map[string]string{
	"x86_64":  "x86_64",
	"x86-64":  "x86_64",
	"amd64":   "x86_64",
	"i386":    "i386",
	"i486":    "i386",
	"i586":    "i386",
	"i686":    "i386",
	"386":     "i386",
	"aarch64": "aarch64",
	"arm64":   "aarch64",
	"arm":     "armv7",
	"armv7":   "armv7",
	"armv7a":  "armv7",
	"thumbv7": "armv7",
	"riscv64": "riscv64",
	"wasm32":  "wasm32",
	"wasm":    "wasm32",
}

var knownVendors = map[string]bool{
	"pc":    true,
	"apple": true,
	"ibm":   true,
	"none":  true,
}

var knownOSes = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"macosx":  true,
	"windows": true,
	"win32":   true,
	"freebsd": true,
	"netbsd":  true,
	"openbsd": true,
	"wasi":    true,
	"none":    true,
}

// ParseTriple splits a triple into its components. It follows the usual
// disambiguation rule for short triples: a missing vendor is more common
// than a missing OS, so in "x86_64-linux-gnu" the second component is
// recognized as an OS and the vendor is left unknown.
func ParseTriple(s string) Triple {
	t := Triple{Arch: "unknown", Vendor: "unknown", OS: "unknown", Env: "unknown"}
	parts := strings.Split(s, "-")
	if len(parts) == 0 || parts[0] == "" {
		return t
	}
	if canon, ok := archAliases[parts[0]]; ok {
		t.Arch = canon
	} else {
		t.Arch = parts[0]
	}
	rest := parts[1:]
	if len(rest) > 0 && !knownVendors[rest[0]] && knownOSes[rest[0]] {
		// vendor omitted
		t.OS = rest[0]
		rest = rest[1:]
	} else if len(rest) > 0 {
		t.Vendor = rest[0]
		rest = rest[1:]
		if len(rest) > 0 {
			t.OS = rest[0]
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		t.Env = strings.Join(rest, "-")
	}
	return t
}

// NormalizeTriple canonicalizes arch aliases and pads the triple out to all
// four components.
func NormalizeTriple(s string) string {
	return ParseTriple(s).String()
}

// hostTriple derives the process triple from GOOS/GOARCH.
func hostTriple() string {
	arch := "unknown"
	if canon, ok := archAliases[runtime.GOARCH]; ok {
		arch = canon
	}
	switch runtime.GOOS {
	case "darwin":
		return Triple{Arch: arch, Vendor: "apple", OS: "darwin", Env: "unknown"}.String()
	case "windows":
		return Triple{Arch: arch, Vendor: "pc", OS: "windows", Env: "msvc"}.String()
	case "linux":
		return Triple{Arch: arch, Vendor: "unknown", OS: "linux", Env: "gnu"}.String()
	default:
		return Triple{Arch: arch, Vendor: "unknown", OS: runtime.GOOS, Env: "unknown"}.String()
	}
}

// HostTriple reports the normalized triple of the running process.
func HostTriple() string {
	return hostTriple()
}

// DefaultTriple reports the triple new machines default to: the process
// triple unless TARGETKIT_TRIPLE overrides it, which is how
// cross-configured CI exercises foreign targets.
func DefaultTriple() string {
	if override := env.Str("TARGETKIT_TRIPLE"); override != "" {
		return NormalizeTriple(override)
	}
	return hostTriple()
}
