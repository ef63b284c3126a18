package engine

// Code-generation tuning constants, in the order the facade's enums mirror.
const (
	RelocDefault uint32 = iota
	RelocStatic
	RelocPIC
	RelocDynamicNoPIC
)

const (
	CodeModelDefault uint32 = iota
	CodeModelJITDefault
	CodeModelSmall
	CodeModelKernel
	CodeModelMedium
	CodeModelLarge
)

const (
	CodeGenLevelNone uint32 = iota
	CodeGenLevelLess
	CodeGenLevelDefault
	CodeGenLevelAggressive
)

// TargetMachine is a configured code generator for one
// (target, triple, cpu, features) combination.
type TargetMachine struct {
	target   *Target
	triple   string
	cpu      string
	features string
	opts     TargetOptions
	reloc    uint32
	model    uint32
	optLevel uint32
	disposed bool
}

// CreateTargetMachine builds a machine from a registered target. The triple
// is normalized and the option bag is snapshotted; the caller remains
// responsible for disposing the bag it passed in.
func CreateTargetMachine(t *Target, triple, cpu, features string, o *TargetOptions, reloc, model, optLevel uint32) *TargetMachine {
	if cpu == "" {
		cpu = t.defaultCPU
	}
	return &TargetMachine{
		target:   t,
		triple:   NormalizeTriple(triple),
		cpu:      cpu,
		features: features,
		opts:     o.snapshot(),
		reloc:    reloc,
		model:    model,
		optLevel: optLevel,
	}
}

func DisposeTargetMachine(m *TargetMachine) {
	if m.disposed {
		panic("engine: target machine disposed twice")
	}
	m.disposed = true
}

func (m *TargetMachine) live() {
	if m.disposed {
		panic("engine: use of disposed target machine")
	}
}

func MachineTarget(m *TargetMachine) *Target {
	m.live()
	return m.target
}

func MachineTriple(m *TargetMachine) string {
	m.live()
	return m.triple
}

func MachineCPU(m *TargetMachine) string {
	m.live()
	return m.cpu
}

func MachineFeatures(m *TargetMachine) string {
	m.live()
	return m.features
}

// MachineDataLayout renders the machine's data layout string from its
// target descriptor and triple.
func MachineDataLayout(m *TargetMachine) string {
	m.live()
	return m.target.layout(ParseTriple(m.triple))
}
