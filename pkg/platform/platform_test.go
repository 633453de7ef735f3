package platform

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		input   string
		want    Arch
		wantErr bool
	}{
		{"amd64", X86_64, false},
		{"x86_64", X86_64, false},
		{"arm64", Arm64, false},
		{"aarch64", Arm64, false},
		{"", "", true},
		{"386", "", true},
		{"riscv64", "", true},
		{"ARM64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseArch(tt.input)
			if tt.wantErr {
				if !errors.Is(err, core.ErrConfiguration) {
					t.Fatalf("ParseArch(%q) error = %v, want ErrConfiguration", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArch(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseArch(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestArchGOARCH(t *testing.T) {
	if X86_64.GOARCH() != "amd64" {
		t.Errorf("X86_64.GOARCH() = %q", X86_64.GOARCH())
	}
	if Arm64.GOARCH() != "arm64" {
		t.Errorf("Arm64.GOARCH() = %q", Arm64.GOARCH())
	}
}

func TestVendorForOS(t *testing.T) {
	for _, goos := range []string{"darwin", "ios"} {
		v, err := VendorForOS(goos)
		if err != nil || v != Apple {
			t.Errorf("VendorForOS(%q) = %q, %v; want apple", goos, v, err)
		}
	}
	if v, _ := VendorForOS("linux"); v == Apple {
		t.Error("linux must not be an apple platform")
	}
	if _, err := VendorForOS(""); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("VendorForOS(\"\") error = %v, want ErrConfiguration", err)
	}
	if _, err := VendorForOS("beos"); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("VendorForOS(beos) error = %v, want ErrConfiguration", err)
	}
}

func TestIsCrossCompiling(t *testing.T) {
	tests := []struct {
		host, target Vendor
		want         bool
	}{
		{Apple, Apple, false},
		{Apple, Unknown, true},
		{Unknown, Apple, true},
		{PC, Apple, true},
		// Neither side is apple: XOR reports false even though host and
		// target may differ.
		{Unknown, PC, false},
		{Unknown, Unknown, false},
	}

	for _, tt := range tests {
		if got := IsCrossCompiling(tt.host, tt.target); got != tt.want {
			t.Errorf("IsCrossCompiling(%s, %s) = %v, want %v", tt.host, tt.target, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	p, err := Detect(env.NewMap(env.TargetOS, "darwin", env.TargetArch, "arm64"))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if p.TargetArch != Arm64 || p.TargetVendor != Apple {
		t.Errorf("target = %s/%s, want arm64/apple", p.TargetArch, p.TargetVendor)
	}
	if p.HostOS != runtime.GOOS {
		t.Errorf("HostOS = %q, want %q", p.HostOS, runtime.GOOS)
	}
	wantCross := runtime.GOOS != "darwin" && runtime.GOOS != "ios"
	if p.IsCrossCompiling() != wantCross {
		t.Errorf("IsCrossCompiling() = %v on %s", p.IsCrossCompiling(), runtime.GOOS)
	}
	if err := p.RequireAppleTarget(); err != nil {
		t.Errorf("RequireAppleTarget: %v", err)
	}
}

func TestDetectRejectsUnknownArch(t *testing.T) {
	_, err := Detect(env.NewMap(env.TargetOS, "darwin", env.TargetArch, "ppc64"))
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Detect error = %v, want ErrConfiguration", err)
	}
	if !strings.Contains(err.Error(), "ppc64") {
		t.Errorf("error should name the arch: %v", err)
	}
}

func TestRequireAppleTarget(t *testing.T) {
	p, err := Detect(env.NewMap(env.TargetOS, "linux", env.TargetArch, "amd64"))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	err = p.RequireAppleTarget()
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("RequireAppleTarget error = %v, want ErrConfiguration", err)
	}
	if !strings.Contains(err.Error(), "/proc/$PID/cmdline") {
		t.Errorf("error should point Linux users at /proc: %v", err)
	}
}
