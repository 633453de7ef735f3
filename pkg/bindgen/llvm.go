package bindgen

import (
	"fmt"

	"github.com/arc-language/getargv/pkg/backend"
	"github.com/arc-language/getargv/pkg/core"
	"github.com/arc-language/getargv/pkg/registry"
)

// LocateTool returns the path of tool, taken from tool.Env when set and
// otherwise resolved under the package-manager prefix. A resolved path is
// written back to tool.Env so the generator process sees it.
func LocateTool(e core.Environment, config *backend.Config, tool registry.Tool) (string, error) {
	if tool.Env != "" {
		if v, ok := e.Lookup(tool.Env); ok {
			return v, nil
		}
	}

	res, err := backend.ResolvePrefix(config, tool.Path, tool.Package)
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", tool.Path, err)
	}
	if tool.Env != "" {
		if err := e.Set(tool.Env, res.Path); err != nil {
			return "", fmt.Errorf("setting %s: %w", tool.Env, err)
		}
	}
	return res.Path, nil
}
