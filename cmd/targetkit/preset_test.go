package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"targetkit/target"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
[options]
unsafe-float-math = true
trap-unreachable = true
stack-alignment-override = 16
float-abi-type = "soft"
float-operation-fusion-mode = "strict"
`)
	opts, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	want := target.Options{
		UnsafeFloatMath:          true,
		TrapUnreachable:          true,
		StackAlignmentOverride:   16,
		FloatABIType:             target.FloatABISoft,
		FloatOperationFusionMode: target.FloatFusionStrict,
	}
	if opts != want {
		t.Fatalf("loadPreset: got %+v, want %+v", opts, want)
	}
}

func TestLoadPreset_Defaults(t *testing.T) {
	path := writePreset(t, "[options]\n")
	opts, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	if opts != (target.Options{}) {
		t.Fatalf("empty preset should give zero options, got %+v", opts)
	}
}

func TestLoadPreset_UnknownKey(t *testing.T) {
	path := writePreset(t, "[options]\nunsafe-float-maths = true\n")
	_, err := loadPreset(path)
	if err == nil {
		t.Fatal("expected unknown-key error")
	}
	if !strings.Contains(err.Error(), "unsafe-float-maths") {
		t.Fatalf("error does not name the offending key: %v", err)
	}
}

func TestLoadPreset_BadEnum(t *testing.T) {
	path := writePreset(t, "[options]\nfloat-abi-type = \"softish\"\n")
	if _, err := loadPreset(path); err == nil {
		t.Fatal("expected bad enum error")
	}
}

func TestDescribeTriple_ScriptedTargets(t *testing.T) {
	target.InitializeAllTargets()
	d, err := describeTriple("wasm32-wasi", "", target.Options{}, false)
	if err != nil {
		t.Fatalf("describeTriple: %v", err)
	}
	if d.Target != "wasm32" {
		t.Fatalf("target: got %q, want %q", d.Target, "wasm32")
	}
	if d.PointerBits != 32 {
		t.Fatalf("pointer bits: got %d, want 32", d.PointerBits)
	}
	if d.Schema != describeSchemaVersion {
		t.Fatalf("schema: got %d, want %d", d.Schema, describeSchemaVersion)
	}
}
