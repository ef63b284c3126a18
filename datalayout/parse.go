package datalayout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseErrorKind enumerates ways a data-layout string can be malformed.
type ParseErrorKind uint8

const (
	// ParseErrEmptySpec indicates an empty component between dashes.
	ParseErrEmptySpec ParseErrorKind = iota + 1
	ParseErrUnknownSpec
	ParseErrBadInteger
	ParseErrBadMangling
	ParseErrMissingField
)

// ParseError reports the first malformed component of a layout string.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Spec  string // the offending dash-separated component
	Msg   string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Spec == "" {
		return fmt.Sprintf("data layout %q: %s", e.Input, e.Msg)
	}
	return fmt.Sprintf("data layout %q: component %q: %s", e.Input, e.Spec, e.Msg)
}

func badSpec(kind ParseErrorKind, input, spec, msg string) error {
	return &ParseError{Kind: kind, Input: input, Spec: spec, Msg: msg}
}

// Parse decodes a data-layout string. defaultOrder applies when the string
// carries no e/E component. The empty string parses to a layout with only
// the default byte order set.
func Parse(s string, defaultOrder ByteOrder) (DataLayout, error) {
	d := DataLayout{ByteOrder: defaultOrder}
	if s == "" {
		return d, nil
	}
	for _, spec := range strings.Split(s, "-") {
		if spec == "" {
			return DataLayout{}, badSpec(ParseErrEmptySpec, s, spec, "empty component")
		}
		if err := parseSpec(&d, s, spec); err != nil {
			return DataLayout{}, err
		}
	}
	return d, nil
}

func parseSpec(d *DataLayout, input, spec string) error {
	switch spec[0] {
	case 'e':
		if spec != "e" {
			return badSpec(ParseErrUnknownSpec, input, spec, "trailing characters after endianness")
		}
		d.ByteOrder = LittleEndian
	case 'E':
		if spec != "E" {
			return badSpec(ParseErrUnknownSpec, input, spec, "trailing characters after endianness")
		}
		d.ByteOrder = BigEndian
	case 'm':
		rest, ok := strings.CutPrefix(spec, "m:")
		if !ok || len(rest) != 1 {
			return badSpec(ParseErrBadMangling, input, spec, "mangling must be m:<letter>")
		}
		m, ok := manglingLetters[rest[0]]
		if !ok {
			return badSpec(ParseErrBadMangling, input, spec, "unknown mangling letter")
		}
		d.Mangling = m
	case 'S':
		bits, err := parseBits(spec[1:])
		if err != nil {
			return badSpec(ParseErrBadInteger, input, spec, "bad stack alignment")
		}
		d.StackAlign = bits
	case 'p':
		return parsePointerSpec(d, input, spec)
	case 'i', 'f', 'v':
		return parseTypeSpec(d, input, spec)
	case 'a':
		fields, err := splitFields(spec[1:], 1, 2)
		if err != nil {
			return badSpec(ParseErrMissingField, input, spec, "aggregate must be a:<abi>[:<pref>]")
		}
		abi, err := parseBitsAllowZero(fields[0])
		if err != nil {
			return badSpec(ParseErrBadInteger, input, spec, "bad aggregate alignment")
		}
		pref := abi
		if len(fields) == 2 {
			if pref, err = parseBitsAllowZero(fields[1]); err != nil {
				return badSpec(ParseErrBadInteger, input, spec, "bad aggregate alignment")
			}
		}
		d.AggregateABI, d.AggregatePref, d.hasAggregate = abi, pref, true
	case 'n':
		if rest, ok := strings.CutPrefix(spec, "ni:"); ok {
			for _, f := range strings.Split(rest, ":") {
				as, err := parseBits(f)
				if err != nil {
					return badSpec(ParseErrBadInteger, input, spec, "bad non-integral address space")
				}
				d.NonIntegralAS = append(d.NonIntegralAS, as)
			}
			return nil
		}
		fields, err := splitFields(spec[1:], 1, -1)
		if err != nil {
			return badSpec(ParseErrMissingField, input, spec, "native widths must be n<size>[:<size>...]")
		}
		for _, f := range fields {
			bits, err := parseBits(f)
			if err != nil {
				return badSpec(ParseErrBadInteger, input, spec, "bad native integer width")
			}
			d.NativeInts = append(d.NativeInts, bits)
		}
	default:
		return badSpec(ParseErrUnknownSpec, input, spec, "unknown specification")
	}
	return nil
}

func parsePointerSpec(d *DataLayout, input, spec string) error {
	body := spec[1:]
	addressSpace := 0
	if idx := strings.IndexByte(body, ':'); idx > 0 {
		as, err := strconv.Atoi(body[:idx])
		if err != nil || as < 0 {
			return badSpec(ParseErrBadInteger, input, spec, "bad pointer address space")
		}
		addressSpace = as
		body = body[idx:]
	}
	body, ok := strings.CutPrefix(body, ":")
	if !ok {
		return badSpec(ParseErrMissingField, input, spec, "pointer must be p[<as>]:<size>:<abi>[:<pref>[:<idx>]]")
	}
	fields, err := splitFields(body, 2, 4)
	if err != nil {
		return badSpec(ParseErrMissingField, input, spec, "pointer must be p[<as>]:<size>:<abi>[:<pref>[:<idx>]]")
	}
	p := PointerLayout{AddressSpace: addressSpace}
	if p.Size, err = parseBits(fields[0]); err != nil {
		return badSpec(ParseErrBadInteger, input, spec, "bad pointer size")
	}
	if p.ABI, err = parseBits(fields[1]); err != nil {
		return badSpec(ParseErrBadInteger, input, spec, "bad pointer alignment")
	}
	p.Pref, p.Index = p.ABI, p.Size
	if len(fields) >= 3 {
		if p.Pref, err = parseBits(fields[2]); err != nil {
			return badSpec(ParseErrBadInteger, input, spec, "bad pointer alignment")
		}
	}
	if len(fields) == 4 {
		if p.Index, err = parseBits(fields[3]); err != nil {
			return badSpec(ParseErrBadInteger, input, spec, "bad pointer index width")
		}
	}
	d.Pointers = append(d.Pointers, p)
	return nil
}

func parseTypeSpec(d *DataLayout, input, spec string) error {
	fields, err := splitFields(spec[1:], 2, 3)
	if err != nil {
		return badSpec(ParseErrMissingField, input, spec, "type must be <size>:<abi>[:<pref>]")
	}
	var t TypeLayout
	if t.Size, err = parseBits(fields[0]); err != nil {
		return badSpec(ParseErrBadInteger, input, spec, "bad type size")
	}
	if t.ABI, err = parseBitsAllowZero(fields[1]); err != nil {
		return badSpec(ParseErrBadInteger, input, spec, "bad type alignment")
	}
	t.Pref = t.ABI
	if len(fields) == 3 {
		if t.Pref, err = parseBitsAllowZero(fields[2]); err != nil {
			return badSpec(ParseErrBadInteger, input, spec, "bad type alignment")
		}
	}
	switch spec[0] {
	case 'i':
		d.Integers = append(d.Integers, t)
	case 'f':
		d.Floats = append(d.Floats, t)
	case 'v':
		d.Vectors = append(d.Vectors, t)
	}
	return nil
}

// splitFields splits a colon-joined field list and checks its arity.
// max < 0 means unbounded.
func splitFields(s string, min, max int) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("no fields")
	}
	fields := strings.Split(s, ":")
	if len(fields) < min || (max >= 0 && len(fields) > max) {
		return nil, fmt.Errorf("want %d..%d fields, got %d", min, max, len(fields))
	}
	return fields, nil
}

func parseBits(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("non-positive width %d", n)
	}
	return n, nil
}

// parseBitsAllowZero admits zero, which is legal for ABI alignments of
// aggregates (a:0:32 on 32-bit ARM).
func parseBitsAllowZero(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative width %d", n)
	}
	return n, nil
}
