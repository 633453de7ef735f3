package bindgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/env"
)

// MissingHeaderError reports a header clang could not find while cross
// compiling, which usually means no macOS sysroot was given
type MissingHeaderError struct {
	Header string
	Output string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("clang could not find '%s', perhaps you need to set the '%s' env var to something like: '--sysroot=/path/to/macos/sysroot'",
		e.Header, env.ExtraClangArgs)
}

func (e *MissingHeaderError) Unwrap() error {
	return core.ErrConfiguration
}

// ExtraClangArgs splits BINDGEN_EXTRA_CLANG_ARGS on whitespace
func ExtraClangArgs(e core.Environment) []string {
	return strings.Fields(env.Get(e, env.ExtraClangArgs))
}

// Options configures Run
type Options struct {
	Generator core.GeneratorConfig

	// Env is passed to the generator process
	Env core.Environment

	// CrossCompiling turns missing-header diagnostics into sysroot advice
	CrossCompiling bool

	// Stdout receives the generator's standard output; nil discards it
	Stdout io.Writer

	Logger *slog.Logger
}

// Run writes the manifest for req and invokes the generator on it
func Run(ctx context.Context, opts Options, req Request) error {
	gen := opts.Generator
	if gen.Command == "" {
		return fmt.Errorf("%w: no binding generator configured", core.ErrConfiguration)
	}

	data, err := Manifest(req)
	if err != nil {
		return err
	}
	manifestPath := gen.Manifest
	if manifestPath == "" {
		manifestPath = "getargv.yml"
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return &core.Error{Op: "writing generator manifest", Path: manifestPath, Err: err}
	}

	args := append([]string(nil), gen.Args...)
	if gen.Output != "" {
		args = append(args, "-out", gen.Output)
	}
	args = append(args, manifestPath)

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("running binding generator", "command", gen.Command, "args", args)

	cmd := exec.CommandContext(ctx, gen.Command, args...)
	if opts.Env != nil {
		cmd.Env = opts.Env.Environ()
	}
	var stderr bytes.Buffer
	cmd.Stdout = opts.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := stderr.String()
		if opts.CrossCompiling {
			if header, ok := missingHeader(diag); ok {
				return &MissingHeaderError{Header: header, Output: diag}
			}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && diag != "" {
			return fmt.Errorf("unable to generate bindings: %w\n%s", err, strings.TrimSpace(diag))
		}
		return fmt.Errorf("unable to generate bindings: %w", err)
	}

	logger.Info("generated bindings", "manifest", manifestPath, "output", filepath.Clean(gen.Output))
	return nil
}

// missingHeader extracts the quoted name from a clang "file not found"
// diagnostic such as: fatal error: 'sys/sysctl.h' file not found
func missingHeader(diag string) (string, bool) {
	for _, line := range strings.Split(diag, "\n") {
		if !strings.Contains(line, "file not found") {
			continue
		}
		parts := strings.Split(line, "'")
		if len(parts) > 2 && parts[1] != "" {
			return parts[1], true
		}
	}
	return "", false
}
