package cli

import (
	"bytes"
	"debug/macho"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arc-language/getargv/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "getargv-config version "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestResolveAndCheck(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LIBGETARGV_LIB_DIR", dir)
	t.Setenv("LLVM_CONFIG_PATH", "/usr/bin/llvm-config")
	for _, key := range []string{"MACOSX_DEPLOYMENT_TARGET", "GETARGV_DOCS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	image := testutil.Thin(testutil.ThinOptions{Cpu: macho.CpuAmd64, VersionMin: 0x000A0D00})
	testutil.WriteFile(t, dir, "libgetargv.dylib", image)

	facts := filepath.Join(dir, "facts.yaml")
	cgo := filepath.Join(dir, "zz_getargv_cgo.go")
	out, err := execute(t, "resolve", "--goos=darwin", "--goarch=amd64",
		"--facts="+facts, "--cgo-file="+cgo, "--package=getargv")
	if err != nil {
		t.Fatalf("resolve: %v\n%s", err, out)
	}
	for _, want := range []string{
		"link-lib=getargv",
		"env=MACOSX_DEPLOYMENT_TARGET=10.13.0",
		"metadata=PID_MAX=99999",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("resolve output lacks %q:\n%s", want, out)
		}
	}
	src, err := os.ReadFile(cgo)
	if err != nil {
		t.Fatalf("cgo file not written: %v", err)
	}
	if !strings.Contains(string(src), "-mmacosx-version-min=10.13.0") {
		t.Errorf("cgo file:\n%s", src)
	}

	out, err = execute(t, "check", "--facts="+facts)
	if err != nil {
		t.Fatalf("check on fresh facts: %v\n%s", err, out)
	}

	t.Setenv("MACOSX_DEPLOYMENT_TARGET", "11.0")
	out, err = execute(t, "check", "--facts="+facts)
	if err == nil {
		t.Fatalf("check should fail after the override changed:\n%s", out)
	}
	if !strings.Contains(out, "changed: env:MACOSX_DEPLOYMENT_TARGET") {
		t.Errorf("check output = %q", out)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	lib := testutil.WriteFile(t, dir, "libgetargv.dylib", testutil.Fat(
		testutil.FatMember{Cpu: macho.CpuAmd64, Data: testutil.Thin(testutil.ThinOptions{Cpu: macho.CpuAmd64, VersionMin: 0x000A0D00})},
		testutil.FatMember{Cpu: macho.CpuArm64, Data: testutil.Thin(testutil.ThinOptions{Cpu: macho.CpuArm64, BuildVersion: 0x000B0000})},
	))

	out, err := execute(t, "inspect", lib)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "min macOS 10.13.0") || !strings.Contains(out, "min macOS 11.0.0") {
		t.Errorf("inspect output:\n%s", out)
	}
}
