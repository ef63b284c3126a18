package engine

// LibFunc identifies one recognized library function.
type LibFunc int

const (
	LibFuncMemcpy LibFunc = iota
	LibFuncMemmove
	LibFuncMemset
	LibFuncMemsetPattern16
	LibFuncMemcmp
	LibFuncBcmp
	LibFuncStrlen
	LibFuncStrcpy
	LibFuncStpcpy
	LibFuncStrcmp
	LibFuncMalloc
	LibFuncCalloc
	LibFuncRealloc
	LibFuncFree
	LibFuncSqrt
	LibFuncSqrtf
	LibFuncSin
	LibFuncCos
	LibFuncSincos
	LibFuncPow
	LibFuncExp
	LibFuncLog
	LibFuncFabs
	LibFuncFloor
	LibFuncCeil
	LibFuncPrintf
	LibFuncFprintf
	LibFuncPutchar
	LibFuncPuts

	numLibFuncs
)

var libFuncNames = [numLibFuncs]string{
	LibFuncMemcpy:          "memcpy",
	LibFuncMemmove:         "memmove",
	LibFuncMemset:          "memset",
	LibFuncMemsetPattern16: "memset_pattern16",
	LibFuncMemcmp:          "memcmp",
	LibFuncBcmp:            "bcmp",
	LibFuncStrlen:          "strlen",
	LibFuncStrcpy:          "strcpy",
	LibFuncStpcpy:          "stpcpy",
	LibFuncStrcmp:          "strcmp",
	LibFuncMalloc:          "malloc",
	LibFuncCalloc:          "calloc",
	LibFuncRealloc:         "realloc",
	LibFuncFree:            "free",
	LibFuncSqrt:            "sqrt",
	LibFuncSqrtf:           "sqrtf",
	LibFuncSin:             "sin",
	LibFuncCos:             "cos",
	LibFuncSincos:          "sincos",
	LibFuncPow:             "pow",
	LibFuncExp:             "exp",
	LibFuncLog:             "log",
	LibFuncFabs:            "fabs",
	LibFuncFloor:           "floor",
	LibFuncCeil:            "ceil",
	LibFuncPrintf:          "printf",
	LibFuncFprintf:         "fprintf",
	LibFuncPutchar:         "putchar",
	LibFuncPuts:            "puts",
}

// LibraryInfo is a per-triple table of recognized library functions:
// which standard names resolve to an id, whether each id is available on
// the triple, and what name it is emitted under.
type LibraryInfo struct {
	triple   Triple
	avail    [numLibFuncs]bool
	names    [numLibFuncs]string
	byName   map[string]LibFunc
	disposed bool
}

// CreateLibraryInfo builds the recognized-function table for a triple.
// Availability starts from the full table and is trimmed by platform:
// memset_pattern16 is a Darwin libc extension, stpcpy is missing from MSVC
// runtimes, and sincos is not part of the MSVC or wasi math libraries.
func CreateLibraryInfo(triple string) *LibraryInfo {
	li := &LibraryInfo{
		triple: ParseTriple(triple),
		byName: make(map[string]LibFunc, numLibFuncs),
	}
	for f := LibFunc(0); f < numLibFuncs; f++ {
		li.avail[f] = true
		li.names[f] = libFuncNames[f]
		li.byName[libFuncNames[f]] = f
	}
	darwin := li.triple.OS == "darwin" || li.triple.OS == "macosx"
	msvc := li.triple.Env == "msvc" || li.triple.OS == "windows" || li.triple.OS == "win32"
	wasi := li.triple.OS == "wasi" || li.triple.Arch == "wasm32"
	if !darwin {
		li.avail[LibFuncMemsetPattern16] = false
	}
	if msvc {
		li.avail[LibFuncStpcpy] = false
		li.avail[LibFuncBcmp] = false
		li.avail[LibFuncSincos] = false
	}
	if wasi {
		li.avail[LibFuncSincos] = false
	}
	return li
}

func DisposeLibraryInfo(li *LibraryInfo) {
	if li.disposed {
		panic("engine: library info disposed twice")
	}
	li.disposed = true
}

func (li *LibraryInfo) live() {
	if li.disposed {
		panic("engine: use of disposed library info")
	}
}

// LibFuncByName resolves a standard name to its id, reporting false when
// the name is unrecognized or unavailable on this triple.
func LibFuncByName(li *LibraryInfo, name string) (LibFunc, bool) {
	li.live()
	f, ok := li.byName[name]
	if !ok || !li.avail[f] {
		return 0, false
	}
	return f, true
}

// LibFuncName reports the name the function is currently emitted under.
func LibFuncName(li *LibraryInfo, f LibFunc) string {
	li.live()
	return li.names[f]
}

// SetLibFuncAvailableWithName marks a function available and overrides its
// emitted name. The standard name keeps resolving to the same id.
func SetLibFuncAvailableWithName(li *LibraryInfo, f LibFunc, name string) {
	li.live()
	li.avail[f] = true
	li.names[f] = name
}

// LibFuncCount reports the size of the id space, for iteration.
func LibFuncCount() int { return int(numLibFuncs) }

// LibFuncAvailable reports whether the function is available on this triple.
func LibFuncAvailable(li *LibraryInfo, f LibFunc) bool {
	li.live()
	return li.avail[f]
}

// StandardLibFuncName reports the standard (un-overridden) name for an id.
func StandardLibFuncName(f LibFunc) string { return libFuncNames[f] }
