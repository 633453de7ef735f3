package env

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestMap(t *testing.T) {
	m := NewMap(TargetOS, "darwin", TargetArch, "arm64")

	if got := Get(m, TargetOS); got != "darwin" {
		t.Errorf("Get(GOOS) = %q, want darwin", got)
	}
	if IsSet(m, Prefix) {
		t.Error("PREFIX should not be set")
	}
	if err := m.Set(LLVMConfigPath, "/opt/local/bin/llvm-config"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(m, LLVMConfigPath); got != "/opt/local/bin/llvm-config" {
		t.Errorf("Get(LLVM_CONFIG_PATH) = %q after Set", got)
	}

	want := []string{
		"GOARCH=arm64",
		"GOOS=darwin",
		"LLVM_CONFIG_PATH=/opt/local/bin/llvm-config",
	}
	if got := m.Environ(); !slices.Equal(got, want) {
		t.Errorf("Environ() = %v, want %v", got, want)
	}
}

func TestFromEnviron(t *testing.T) {
	m := FromEnviron([]string{"A=1", "B=x=y", "EMPTY=", "=ignored"})
	if Get(m, "B") != "x=y" {
		t.Errorf("B = %q, want x=y", Get(m, "B"))
	}
	if !IsSet(m, "EMPTY") {
		t.Error("EMPTY should be set")
	}
	if len(m) != 3 {
		t.Errorf("len = %d, want 3", len(m))
	}
}

func TestEnabled(t *testing.T) {
	tests := map[string]bool{
		"1":     true,
		"true":  true,
		"TRUE":  true,
		"yes":   true,
		"0":     false,
		"":      false,
		"false": false,
	}
	for value, want := range tests {
		m := NewMap(Docs, value)
		if got := Enabled(m, Docs); got != want {
			t.Errorf("Enabled(%q) = %v, want %v", value, got, want)
		}
	}
	if Enabled(NewMap(), Docs) {
		t.Error("unset variable should not be enabled")
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Dump(NewMap("FOO", "bar", "BAZ", "qux"), logger)

	out := buf.String()
	if strings.Count(out, "level=WARN") != 2 {
		t.Errorf("expected two warnings, got:\n%s", out)
	}
	if !strings.Contains(out, "key=FOO value=bar") {
		t.Errorf("missing FOO in output:\n%s", out)
	}
}
