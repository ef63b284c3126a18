package engine_test

import (
	"testing"

	"targetkit/internal/engine"
)

func TestNormalizeTriple(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"x86_64-unknown-linux-gnu", "x86_64-unknown-linux-gnu"},
		{"x86_64-linux-gnu", "x86_64-unknown-linux-gnu"},
		{"amd64", "x86_64-unknown-unknown-unknown"},
		{"arm64-apple-darwin", "aarch64-apple-darwin-unknown"},
		{"thumbv7-none-none", "armv7-none-none-unknown"},
		{"wasm32-wasi", "wasm32-unknown-wasi-unknown"},
		{"riscv64", "riscv64-unknown-unknown-unknown"},
		{"i686-pc-windows-msvc", "i386-pc-windows-msvc"},
		{"sparc-sun-solaris", "sparc-sun-solaris-unknown"},
		{"", "unknown-unknown-unknown-unknown"},
	}
	for _, tc := range cases {
		if got := engine.NormalizeTriple(tc.input); got != tc.want {
			t.Errorf("NormalizeTriple(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseTriple_EnvJoinsRemainder(t *testing.T) {
	parsed := engine.ParseTriple("armv7-unknown-linux-gnueabihf")
	if parsed.Env != "gnueabihf" {
		t.Fatalf("env: got %q, want %q", parsed.Env, "gnueabihf")
	}
	parsed = engine.ParseTriple("x86_64-unknown-linux-gnu-extra")
	if parsed.Env != "gnu-extra" {
		t.Fatalf("multi-part env: got %q, want %q", parsed.Env, "gnu-extra")
	}
}

func TestHostTriple_Normalized(t *testing.T) {
	triple := engine.HostTriple()
	if engine.NormalizeTriple(triple) != triple {
		t.Fatalf("host triple %q is not in normalized form", triple)
	}
}
