package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"targetkit/target"
)

// presetOptions is the decoded shape of an options preset:
//
//	[options]
//	unsafe-float-math = true
//	stack-alignment-override = 16
//	float-abi-type = "soft"
//	float-operation-fusion-mode = "strict"
//
// Boolean keys match the wire flag names; enums are spelled out.
type presetOptions struct {
	Flags                    map[string]bool
	StackAlignmentOverride   int64
	FloatABIType             string
	FloatOperationFusionMode string
}

// loadPreset reads a TOML preset into an Options record. Unknown keys are
// rejected so a typoed flag name cannot silently become a no-op.
func loadPreset(path string) (target.Options, error) {
	var opts target.Options

	var file struct {
		Options map[string]toml.Primitive `toml:"options"`
	}
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return opts, fmt.Errorf("failed to read preset %q: %w", path, err)
	}

	flagNames := make(map[string]bool, len(target.OptionFlagNames()))
	for _, name := range target.OptionFlagNames() {
		flagNames[name] = true
	}

	raw := presetOptions{Flags: make(map[string]bool)}
	for key, prim := range file.Options {
		switch {
		case flagNames[key]:
			var v bool
			if err := meta.PrimitiveDecode(prim, &v); err != nil {
				return opts, fmt.Errorf("preset %q: key %q: %w", path, key, err)
			}
			raw.Flags[key] = v
		case key == "stack-alignment-override":
			if err := meta.PrimitiveDecode(prim, &raw.StackAlignmentOverride); err != nil {
				return opts, fmt.Errorf("preset %q: key %q: %w", path, key, err)
			}
		case key == "float-abi-type":
			if err := meta.PrimitiveDecode(prim, &raw.FloatABIType); err != nil {
				return opts, fmt.Errorf("preset %q: key %q: %w", path, key, err)
			}
		case key == "float-operation-fusion-mode":
			if err := meta.PrimitiveDecode(prim, &raw.FloatOperationFusionMode); err != nil {
				return opts, fmt.Errorf("preset %q: key %q: %w", path, key, err)
			}
		default:
			return opts, fmt.Errorf("preset %q: unknown option %q", path, key)
		}
	}

	return buildPresetOptions(path, raw)
}

func buildPresetOptions(path string, raw presetOptions) (target.Options, error) {
	var opts target.Options

	// Route the boolean keys through the same TOML tags Apply/Read use, so
	// the preset vocabulary cannot drift from the wire contract.
	if len(raw.Flags) > 0 {
		var buf []byte
		for key, v := range raw.Flags {
			buf = append(buf, fmt.Sprintf("%s = %t\n", key, v)...)
		}
		if err := toml.Unmarshal(buf, &opts); err != nil {
			return opts, fmt.Errorf("preset %q: %w", path, err)
		}
	}

	if raw.StackAlignmentOverride != 0 {
		align, err := safecast.Conv[uint32](raw.StackAlignmentOverride)
		if err != nil {
			return opts, fmt.Errorf("preset %q: stack-alignment-override: %w", path, err)
		}
		opts.StackAlignmentOverride = align
	}

	switch raw.FloatABIType {
	case "", "default":
		opts.FloatABIType = target.FloatABIDefault
	case "soft":
		opts.FloatABIType = target.FloatABISoft
	case "hard":
		opts.FloatABIType = target.FloatABIHard
	default:
		return opts, fmt.Errorf("preset %q: unknown float-abi-type %q", path, raw.FloatABIType)
	}

	switch raw.FloatOperationFusionMode {
	case "", "fast":
		opts.FloatOperationFusionMode = target.FloatFusionFast
	case "standard":
		opts.FloatOperationFusionMode = target.FloatFusionStandard
	case "strict":
		opts.FloatOperationFusionMode = target.FloatFusionStrict
	default:
		return opts, fmt.Errorf("preset %q: unknown float-operation-fusion-mode %q", path, raw.FloatOperationFusionMode)
	}

	return opts, nil
}
