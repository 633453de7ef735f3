package bindgen

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/getargv/internal/testutil"
	"github.com/arc-language/getargv/pkg/backend"
	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
	"github.com/arc-language/getargv/pkg/platform"
	"github.com/arc-language/getargv/pkg/registry"
)

func TestManifest(t *testing.T) {
	req := NewRequest("getargv", "wrapper.h")
	req.LibDir = "/opt/homebrew/lib"
	req.DeploymentTarget = "12.6.0"
	req.ClangArgs = []string{"--sysroot=/sdk"}

	data, err := Manifest(req)
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid YAML: %v\n%s", err, data)
	}
	if m.Generator.PackageName != "getargv" {
		t.Errorf("PackageName = %q", m.Generator.PackageName)
	}
	if got := m.Translator.Rules["function"][0].From; got != AllowFunctions {
		t.Errorf("function rule = %q", got)
	}
	if got := m.Translator.Rules["type"][0].From; got != AllowTypes {
		t.Errorf("type rule = %q", got)
	}
	if len(m.Translator.MemTips) != 1 || m.Translator.MemTips[0].Target != NoCopy {
		t.Errorf("MemTips = %+v", m.Translator.MemTips)
	}
	if len(m.Generator.FlagGroups) != 2 {
		t.Fatalf("FlagGroups = %+v", m.Generator.FlagGroups)
	}
	cflags := strings.Join(m.Generator.FlagGroups[0].Flags, " ")
	if cflags != "--sysroot=/sdk -mmacosx-version-min=12.6.0" {
		t.Errorf("CFLAGS = %q", cflags)
	}
	ldflags := strings.Join(m.Generator.FlagGroups[1].Flags, " ")
	if ldflags != "-L/opt/homebrew/lib -lgetargv" {
		t.Errorf("LDFLAGS = %q", ldflags)
	}
}

func TestManifestDocs(t *testing.T) {
	req := NewRequest("getargv", "wrapper.h")
	req.Docs = true
	req.IncludeDirs = []string{"docs_shim"}

	data, err := Manifest(req)
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(m.Generator.FlagGroups) != 1 || m.Generator.FlagGroups[0].Name != "CFLAGS" {
		t.Errorf("docs manifest should only carry CFLAGS: %+v", m.Generator.FlagGroups)
	}
	if len(m.Parser.IncludePaths) != 1 || m.Parser.IncludePaths[0] != "docs_shim" {
		t.Errorf("IncludePaths = %v", m.Parser.IncludePaths)
	}
}

func TestManifestRequiresHeader(t *testing.T) {
	if _, err := Manifest(Request{}); err == nil {
		t.Error("expected error for missing header")
	}
}

func TestMissingHeader(t *testing.T) {
	tests := []struct {
		diag   string
		header string
		ok     bool
	}{
		{"wrapper.h:1:10: fatal error: 'libgetargv.h' file not found", "libgetargv.h", true},
		{"warning: unused\n/usr/include/x.h:3:10: fatal error: 'sys/sysctl.h' file not found\n", "sys/sysctl.h", true},
		{"fatal error: file not found", "", false},
		{"error: unknown type name 'pid_t'", "", false},
	}
	for _, tt := range tests {
		header, ok := missingHeader(tt.diag)
		if header != tt.header || ok != tt.ok {
			t.Errorf("missingHeader(%q) = %q, %v; want %q, %v", tt.diag, header, ok, tt.header, tt.ok)
		}
	}
}

func TestExtraClangArgs(t *testing.T) {
	e := env.NewMap(env.ExtraClangArgs, "  --sysroot=/sdk   -v ")
	got := ExtraClangArgs(e)
	if strings.Join(got, "|") != "--sysroot=/sdk|-v" {
		t.Errorf("ExtraClangArgs = %q", got)
	}
	if len(ExtraClangArgs(env.NewMap())) != 0 {
		t.Error("unset variable should yield no args")
	}
}

func shellGenerator(t *testing.T, script string) core.GeneratorConfig {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("generator stub needs sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	return core.GeneratorConfig{
		Command:  "sh",
		Args:     []string{"-c", script, "generator"},
		Manifest: filepath.Join(dir, "getargv.yml"),
		Output:   dir,
	}
}

func TestRun(t *testing.T) {
	// The stub checks it was handed the manifest as its last argument.
	gen := shellGenerator(t, `for last; do :; done; grep -q PackageName "$last"`)

	err := Run(context.Background(), Options{Generator: gen, Env: env.NewMap("PATH", "/usr/bin:/bin")}, NewRequest("getargv", "wrapper.h"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunMissingHeaderWhileCrossCompiling(t *testing.T) {
	gen := shellGenerator(t, `echo "wrapper.h:1:10: fatal error: 'sys/sysctl.h' file not found" >&2; exit 1`)
	opts := Options{Generator: gen, CrossCompiling: true}

	err := Run(context.Background(), opts, NewRequest("getargv", "wrapper.h"))
	var missing *MissingHeaderError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingHeaderError", err)
	}
	if missing.Header != "sys/sysctl.h" {
		t.Errorf("Header = %q", missing.Header)
	}
	if !errors.Is(err, core.ErrConfiguration) {
		t.Error("MissingHeaderError should be a configuration error")
	}
	if !strings.Contains(err.Error(), "--sysroot=") {
		t.Errorf("message lacks sysroot advice: %v", err)
	}

	// Native builds report the generator failure as is.
	opts.CrossCompiling = false
	err = Run(context.Background(), opts, NewRequest("getargv", "wrapper.h"))
	if err == nil || errors.As(err, &missing) {
		t.Fatalf("native error = %v", err)
	}
	if !strings.Contains(err.Error(), "file not found") {
		t.Errorf("native error should carry the diagnostic: %v", err)
	}
}

func TestRunNoCommand(t *testing.T) {
	err := Run(context.Background(), Options{}, NewRequest("getargv", "wrapper.h"))
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func llvmTool() registry.Tool {
	return registry.Tool{Path: "bin/llvm-config", Package: "llvm", Env: env.LLVMConfigPath}
}

func TestLocateToolKeepsExisting(t *testing.T) {
	e := env.NewMap(env.LLVMConfigPath, "/custom/llvm-config")
	config := &backend.Config{FS: core.RootedFS{Root: t.TempDir()}, Env: e, Arch: platform.Arm64}

	got, err := LocateTool(e, config, llvmTool())
	if err != nil {
		t.Fatalf("LocateTool: %v", err)
	}
	if got != "/custom/llvm-config" {
		t.Errorf("LocateTool = %q", got)
	}
}

func TestLocateToolResolvesAndExports(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "/opt/homebrew/bin/brew", nil)
	e := env.NewMap()
	config := &backend.Config{FS: core.RootedFS{Root: root}, Env: e, Arch: platform.Arm64}

	got, err := LocateTool(e, config, llvmTool())
	if err != nil {
		t.Fatalf("LocateTool: %v", err)
	}
	// llvm is keg-only under Homebrew
	want := "/opt/homebrew/opt/llvm/bin/llvm-config"
	if got != want {
		t.Errorf("LocateTool = %q, want %q", got, want)
	}
	if e[env.LLVMConfigPath] != want {
		t.Errorf("%s = %q, want %q", env.LLVMConfigPath, e[env.LLVMConfigPath], want)
	}
}
