package datalayout_test

import (
	"errors"
	"testing"

	"targetkit/datalayout"
)

func mustParse(t *testing.T, s string) datalayout.DataLayout {
	t.Helper()
	dl, err := datalayout.Parse(s, datalayout.LittleEndian)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return dl
}

func TestParse_X8664Linux(t *testing.T) {
	dl := mustParse(t, "e-m:e-i64:64-f80:128-n8:16:32:64-S128")
	if dl.ByteOrder != datalayout.LittleEndian {
		t.Fatalf("byte order: got %v", dl.ByteOrder)
	}
	if dl.Mangling != datalayout.ManglingELF {
		t.Fatalf("mangling: got %v, want ELF", dl.Mangling)
	}
	if len(dl.Integers) != 1 || dl.Integers[0] != (datalayout.TypeLayout{Size: 64, ABI: 64, Pref: 64}) {
		t.Fatalf("integers: got %+v", dl.Integers)
	}
	if len(dl.Floats) != 1 || dl.Floats[0] != (datalayout.TypeLayout{Size: 80, ABI: 128, Pref: 128}) {
		t.Fatalf("floats: got %+v", dl.Floats)
	}
	if want := []int{8, 16, 32, 64}; len(dl.NativeInts) != 4 ||
		dl.NativeInts[0] != want[0] || dl.NativeInts[3] != want[3] {
		t.Fatalf("native ints: got %v, want %v", dl.NativeInts, want)
	}
	if dl.StackAlign != 128 {
		t.Fatalf("stack align: got %d, want 128", dl.StackAlign)
	}
	// No pointer spec: address space 0 falls back to 64-bit.
	if got := dl.PointerSize(0); got != 64 {
		t.Fatalf("pointer size: got %d, want 64", got)
	}
}

func TestParse_ARMv7(t *testing.T) {
	dl := mustParse(t, "e-m:e-p:32:32-i64:64-v128:64:128-a:0:32-n32-S64")
	if got := dl.PointerSize(0); got != 32 {
		t.Fatalf("pointer size: got %d, want 32", got)
	}
	if len(dl.Vectors) != 1 || dl.Vectors[0] != (datalayout.TypeLayout{Size: 128, ABI: 64, Pref: 128}) {
		t.Fatalf("vectors: got %+v", dl.Vectors)
	}
	if dl.AggregateABI != 0 || dl.AggregatePref != 32 {
		t.Fatalf("aggregate: got %d:%d, want 0:32", dl.AggregateABI, dl.AggregatePref)
	}
}

func TestParse_BigEndianAndDefault(t *testing.T) {
	dl := mustParse(t, "E-m:e-i64:64")
	if dl.ByteOrder != datalayout.BigEndian {
		t.Fatal("E not honored")
	}
	dl, err := datalayout.Parse("m:e-i64:64", datalayout.BigEndian)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if dl.ByteOrder != datalayout.BigEndian {
		t.Fatal("default byte order not honored")
	}
}

func TestParse_PointerVariants(t *testing.T) {
	dl := mustParse(t, "e-p:64:64:64:32-p270:32:32")
	if len(dl.Pointers) != 2 {
		t.Fatalf("pointers: got %+v", dl.Pointers)
	}
	p0 := dl.Pointers[0]
	if p0.AddressSpace != 0 || p0.Size != 64 || p0.ABI != 64 || p0.Pref != 64 || p0.Index != 32 {
		t.Fatalf("p0: got %+v", p0)
	}
	p270 := dl.Pointers[1]
	if p270.AddressSpace != 270 || p270.Size != 32 || p270.Index != 32 {
		t.Fatalf("p270: got %+v", p270)
	}
	if got := dl.PointerSize(270); got != 32 {
		t.Fatalf("PointerSize(270): got %d, want 32", got)
	}
	if got := dl.PointerSize(7); got != 64 {
		t.Fatalf("PointerSize(7) fallback: got %d, want 64", got)
	}
}

func TestParse_Empty(t *testing.T) {
	dl, err := datalayout.Parse("", datalayout.LittleEndian)
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if dl.ByteOrder != datalayout.LittleEndian {
		t.Fatal("default byte order lost")
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  datalayout.ParseErrorKind
	}{
		{"empty component", "e--i64:64", datalayout.ParseErrEmptySpec},
		{"unknown spec", "e-z42", datalayout.ParseErrUnknownSpec},
		{"endianness with trailing", "ee-i64:64", datalayout.ParseErrUnknownSpec},
		{"bad mangling", "e-m:q", datalayout.ParseErrBadMangling},
		{"mangling without colon", "e-me", datalayout.ParseErrBadMangling},
		{"type missing alignment", "e-i64", datalayout.ParseErrMissingField},
		{"type bad integer", "e-i64:abc", datalayout.ParseErrBadInteger},
		{"zero type size", "e-i0:8", datalayout.ParseErrBadInteger},
		{"pointer missing fields", "e-p:64", datalayout.ParseErrMissingField},
		{"stack bad integer", "e-Sx", datalayout.ParseErrBadInteger},
		{"native empty", "e-n", datalayout.ParseErrMissingField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := datalayout.Parse(tc.input, datalayout.LittleEndian)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.input)
			}
			var parseErr *datalayout.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q): expected *ParseError, got %T", tc.input, err)
			}
			if parseErr.Kind != tc.kind {
				t.Fatalf("Parse(%q): kind %d, want %d (%v)", tc.input, parseErr.Kind, tc.kind, parseErr)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	inputs := []string{
		"e-m:e-i64:64-f80:128-n8:16:32:64-S128",
		"e-m:o-i8:8:32-i16:16:32-i64:64-i128:128-n32:64-S128",
		"e-m:e-p:32:32-i64:64-v128:64:128-a:0:32-n32-S64",
		"e-m:e-p:64:64-i64:64-i128:128-n64-S128",
		"e-m:e-p:32:32-i64:64-n32:64-S128",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			dl := mustParse(t, input)
			if got := dl.String(); got != input {
				t.Fatalf("String: got %q, want %q", got, input)
			}
		})
	}
}
