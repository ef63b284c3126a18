package engine

// OptionFlag identifies one boolean code-generation tuning flag. The values
// are the wire-level constants the facade's flag table maps names onto.
type OptionFlag uint32

const (
	FlagPrintMachineCode OptionFlag = iota
	FlagLessPreciseFPMAD
	FlagUnsafeFPMath
	FlagNoInfsFPMath
	FlagNoNaNsFPMath
	FlagHonorSignDependentRounding
	FlagNoZerosInBSS
	FlagGuaranteedTailCallOpt
	FlagEnableFastISel
	FlagUseInitArray
	FlagDisableIntegratedAS
	FlagCompressDebugSections
	FlagTrapUnreachable

	numOptionFlags
)

// Float ABI constants.
const (
	FloatABIDefault uint32 = iota
	FloatABISoft
	FloatABIHard
)

// Floating-point operation fusion constants.
const (
	FPFusionFast uint32 = iota
	FPFusionStandard
	FPFusionStrict
)

// TargetOptions is the engine-side option bag. The facade never touches the
// fields directly; it goes through the flag accessors below.
type TargetOptions struct {
	flags      [numOptionFlags]bool
	stackAlign uint32
	floatABI   uint32
	fpFusion   uint32
	disposed   bool
}

// CreateTargetOptions allocates an option bag with all flags cleared,
// no stack alignment override, default float ABI and fast fusion.
func CreateTargetOptions() *TargetOptions {
	return &TargetOptions{fpFusion: FPFusionFast}
}

// DisposeTargetOptions releases the option bag. Disposing twice panics:
// the facade's scoped acquisition guarantees exactly one release and a
// second one is always a lifetime bug.
func DisposeTargetOptions(o *TargetOptions) {
	if o.disposed {
		panic("engine: target options disposed twice")
	}
	o.disposed = true
}

func (o *TargetOptions) live() {
	if o.disposed {
		panic("engine: use of disposed target options")
	}
}

func SetFlag(o *TargetOptions, f OptionFlag, v bool) {
	o.live()
	o.flags[f] = v
}

func Flag(o *TargetOptions, f OptionFlag) bool {
	o.live()
	return o.flags[f]
}

func SetStackAlignment(o *TargetOptions, align uint32) {
	o.live()
	o.stackAlign = align
}

func StackAlignment(o *TargetOptions) uint32 {
	o.live()
	return o.stackAlign
}

func SetFloatABI(o *TargetOptions, abi uint32) {
	o.live()
	o.floatABI = abi
}

func FloatABI(o *TargetOptions) uint32 {
	o.live()
	return o.floatABI
}

func SetFPFusion(o *TargetOptions, mode uint32) {
	o.live()
	o.fpFusion = mode
}

func FPFusion(o *TargetOptions) uint32 {
	o.live()
	return o.fpFusion
}

// snapshot copies the live option state; machines keep a snapshot so later
// mutation or disposal of the bag cannot reach into a constructed machine.
func (o *TargetOptions) snapshot() TargetOptions {
	o.live()
	s := *o
	s.disposed = false
	return s
}
