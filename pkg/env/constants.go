// pkg/env/constants.go
package env

// Variables read by the resolver. GOOS and GOARCH are exported by
// `go generate` and describe the build target, not the host.
const (
	TargetArch       = "GOARCH"
	TargetOS         = "GOOS"
	GoPackage        = "GOPACKAGE"
	DeploymentTarget = "MACOSX_DEPLOYMENT_TARGET"
	Docs             = "GETARGV_DOCS"
	DebugEnv         = "GETARGV_DEBUG_ENV"
	Prefix           = "PREFIX"
	ExtraClangArgs   = "BINDGEN_EXTRA_CLANG_ARGS"

	// LLVMConfigPath is the only variable the resolver writes
	LLVMConfigPath = "LLVM_CONFIG_PATH"
)
