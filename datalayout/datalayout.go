// Package datalayout parses and models target data-layout strings: the
// compact dash-separated description of byte order, pointer widths and type
// alignments a code-generation backend publishes for a target.
//
// Reference: https://llvm.org/docs/LangRef.html#langref-datalayout
package datalayout

import (
	"strconv"
	"strings"
)

// ByteOrder is the target's endianness.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (b ByteOrder) String() string {
	if b == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Mangling is the symbol-mangling scheme implied by the object format.
type Mangling int

const (
	ManglingNone Mangling = iota
	ManglingELF
	ManglingMachO
	ManglingWinCOFF
	ManglingWinCOFFX86
	ManglingMIPS
	ManglingXCOFF
)

var manglingLetters = map[byte]Mangling{
	'e': ManglingELF,
	'o': ManglingMachO,
	'w': ManglingWinCOFF,
	'x': ManglingWinCOFFX86,
	'm': ManglingMIPS,
	'a': ManglingXCOFF,
}

func (m Mangling) letter() byte {
	for l, v := range manglingLetters {
		if v == m {
			return l
		}
	}
	return 0
}

// TypeLayout describes size and alignment for one scalar or vector width.
// All values are in bits. Pref falls back to ABI when the string omits it.
type TypeLayout struct {
	Size int
	ABI  int
	Pref int
}

// PointerLayout describes pointers in one address space. Index is the width
// of index arithmetic, defaulting to Size.
type PointerLayout struct {
	AddressSpace int
	Size         int
	ABI          int
	Pref         int
	Index        int
}

// DataLayout is the parsed form of a data-layout string.
type DataLayout struct {
	ByteOrder      ByteOrder
	Mangling       Mangling
	StackAlign     int // bits; 0 when unspecified
	Pointers       []PointerLayout
	Integers       []TypeLayout
	Floats         []TypeLayout
	Vectors        []TypeLayout
	AggregateABI  int
	AggregatePref int
	hasAggregate  bool
	NativeInts    []int
	NonIntegralAS []int
}

// PointerSize reports the pointer width in bits for an address space,
// falling back to address space 0, then to 64.
func (d DataLayout) PointerSize(addressSpace int) int {
	var zero *PointerLayout
	for i := range d.Pointers {
		p := &d.Pointers[i]
		if p.AddressSpace == addressSpace {
			return p.Size
		}
		if p.AddressSpace == 0 {
			zero = p
		}
	}
	if zero != nil {
		return zero.Size
	}
	return 64
}

// String renders the layout in canonical component order. Parsing the
// result yields an equal DataLayout.
func (d DataLayout) String() string {
	var parts []string
	if d.ByteOrder == BigEndian {
		parts = append(parts, "E")
	} else {
		parts = append(parts, "e")
	}
	if d.Mangling != ManglingNone {
		parts = append(parts, "m:"+string(d.Mangling.letter()))
	}
	for _, p := range d.Pointers {
		s := "p"
		if p.AddressSpace != 0 {
			s += strconv.Itoa(p.AddressSpace)
		}
		s += ":" + strconv.Itoa(p.Size) + ":" + strconv.Itoa(p.ABI)
		if p.Pref != p.ABI || p.Index != p.Size {
			s += ":" + strconv.Itoa(p.Pref)
			if p.Index != p.Size {
				s += ":" + strconv.Itoa(p.Index)
			}
		}
		parts = append(parts, s)
	}
	appendTypes := func(prefix string, ts []TypeLayout) {
		for _, t := range ts {
			s := prefix + strconv.Itoa(t.Size) + ":" + strconv.Itoa(t.ABI)
			if t.Pref != t.ABI {
				s += ":" + strconv.Itoa(t.Pref)
			}
			parts = append(parts, s)
		}
	}
	appendTypes("i", d.Integers)
	appendTypes("f", d.Floats)
	appendTypes("v", d.Vectors)
	if d.hasAggregate {
		s := "a:" + strconv.Itoa(d.AggregateABI)
		if d.AggregatePref != d.AggregateABI {
			s += ":" + strconv.Itoa(d.AggregatePref)
		}
		parts = append(parts, s)
	}
	if len(d.NativeInts) > 0 {
		ns := make([]string, len(d.NativeInts))
		for i, n := range d.NativeInts {
			ns[i] = strconv.Itoa(n)
		}
		parts = append(parts, "n"+strings.Join(ns, ":"))
	}
	if d.StackAlign != 0 {
		parts = append(parts, "S"+strconv.Itoa(d.StackAlign))
	}
	if len(d.NonIntegralAS) > 0 {
		ns := make([]string, len(d.NonIntegralAS))
		for i, n := range d.NonIntegralAS {
			ns[i] = strconv.Itoa(n)
		}
		parts = append(parts, "ni:"+strings.Join(ns, ":"))
	}
	return strings.Join(parts, "-")
}
