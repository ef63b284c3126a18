package engine

import (
	"fmt"
	"runtime"
	"sync"
)

// Target is a registered code-generation backend descriptor. Handles are
// registry-owned: callers borrow them and never dispose them.
type Target struct {
	name        string
	description string
	defaultCPU  string
	ptrWidth    int
	layout      func(Triple) string
}

func (t *Target) Name() string        { return t.name }
func (t *Target) Description() string { return t.description }
func (t *Target) DefaultCPU() string  { return t.defaultCPU }
func (t *Target) PointerWidth() int   { return t.ptrWidth }

// mangling selects the symbol-mangling letter of a data layout from the
// object format implied by the triple's OS.
func mangling(t Triple) string {
	switch t.OS {
	case "darwin", "macosx":
		return "m:o"
	case "windows", "win32":
		return "m:w"
	default:
		return "m:e"
	}
}

// targetTable lists every backend the engine models, in registration order.
// Layout strings follow the values the real backends emit for the common
// object formats.
var targetTable = []*Target{
	{
		name:        "x86-64",
		description: "64-bit X86: EM64T and AMD64",
		defaultCPU:  "x86-64",
		ptrWidth:    64,
		layout: func(t Triple) string {
			return "e-" + mangling(t) + "-i64:64-f80:128-n8:16:32:64-S128"
		},
	},
	{
		name:        "aarch64",
		description: "AArch64 (little endian)",
		defaultCPU:  "generic",
		ptrWidth:    64,
		layout: func(t Triple) string {
			return "e-" + mangling(t) + "-i8:8:32-i16:16:32-i64:64-i128:128-n32:64-S128"
		},
	},
	{
		name:        "arm",
		description: "ARM",
		defaultCPU:  "generic",
		ptrWidth:    32,
		layout: func(t Triple) string {
			return "e-" + mangling(t) + "-p:32:32-i64:64-v128:64:128-a:0:32-n32-S64"
		},
	},
	{
		name:        "riscv64",
		description: "64-bit RISC-V",
		defaultCPU:  "generic-rv64",
		ptrWidth:    64,
		layout: func(t Triple) string {
			return "e-" + mangling(t) + "-p:64:64-i64:64-i128:128-n64-S128"
		},
	},
	{
		name:        "wasm32",
		description: "WebAssembly 32-bit",
		defaultCPU:  "generic",
		ptrWidth:    32,
		layout: func(t Triple) string {
			return "e-m:e-p:32:32-i64:64-n32:64-S128"
		},
	},
}

// archToTarget maps canonical architecture components to target names.
var archToTarget = map[string]string{
	"x86_64":  "x86-64",
	"aarch64": "aarch64",
	"armv7":   "arm",
	"riscv64": "riscv64",
	"wasm32":  "wasm32",
}

var registry struct {
	mu      sync.Mutex
	targets map[string]*Target
	order   []*Target
}

func register(t *Target) {
	if registry.targets == nil {
		registry.targets = make(map[string]*Target)
	}
	if _, ok := registry.targets[t.name]; ok {
		return
	}
	registry.targets[t.name] = t
	registry.order = append(registry.order, t)
}

// RegisterAllTargets makes every modeled backend visible to lookup.
// Safe to call repeatedly.
func RegisterAllTargets() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for _, t := range targetTable {
		register(t)
	}
}

// RegisterNativeTarget registers only the backend matching the running
// process. The returned message is empty on success.
func RegisterNativeTarget() string {
	arch, ok := archAliases[runtime.GOARCH]
	if !ok {
		return fmt.Sprintf("no native backend for architecture %q", runtime.GOARCH)
	}
	name, ok := archToTarget[arch]
	if !ok {
		return fmt.Sprintf("no native backend for architecture %q", arch)
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for _, t := range targetTable {
		if t.name == name {
			register(t)
			return ""
		}
	}
	return fmt.Sprintf("backend %q is not built into this engine", name)
}

// TargetByName looks a registered backend up by its registry name.
func TargetByName(name string) (*Target, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	t, ok := registry.targets[name]
	return t, ok
}

// TargetByTriple resolves a triple to a registered backend. The second
// return is a diagnostic message, empty on success.
func TargetByTriple(triple string) (*Target, string) {
	parsed := ParseTriple(triple)
	name, ok := archToTarget[parsed.Arch]
	if !ok {
		return nil, fmt.Sprintf("unable to find target for this triple (no architecture matches %q)", triple)
	}
	t, registered := TargetByName(name)
	if !registered {
		return nil, fmt.Sprintf("target %q is known but not registered; call an initialize routine first", name)
	}
	return t, ""
}

// TargetByArch resolves an architecture spelling ("amd64", "x86_64", ...)
// to a registered backend.
func TargetByArch(arch string) (*Target, string) {
	canon, ok := archAliases[arch]
	if !ok {
		return nil, fmt.Sprintf("unknown architecture %q", arch)
	}
	name := archToTarget[canon]
	t, registered := TargetByName(name)
	if !registered {
		return nil, fmt.Sprintf("target %q is known but not registered; call an initialize routine first", name)
	}
	return t, ""
}

// AllTargets returns registered backends in registration order.
func AllTargets() []*Target {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]*Target, len(registry.order))
	copy(out, registry.order)
	return out
}

// AllKnownTriples returns one representative normalized triple per modeled
// backend, host OS flavored where that makes sense.
func AllKnownTriples() []string {
	triples := make([]string, 0, len(targetTable))
	host := ParseTriple(hostTriple())
	for _, t := range targetTable {
		for arch, name := range archToTarget {
			if name != t.name {
				continue
			}
			tr := Triple{Arch: arch, Vendor: host.Vendor, OS: host.OS, Env: host.Env}
			if name == "wasm32" {
				tr = Triple{Arch: arch, Vendor: "unknown", OS: "wasi", Env: "unknown"}
			}
			triples = append(triples, tr.String())
			break
		}
	}
	return triples
}
