package buildcfg

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/getargv/pkg/core"
)

// Facts is the on-disk record of a resolution. Env and Files fingerprint
// the triggers so later runs can tell whether the record is still valid.
type Facts struct {
	Output `yaml:",inline"`

	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`

	// Env holds the value of every trigger variable that was set
	Env map[string]string `yaml:"env,omitempty" json:"env,omitempty"`

	// Files maps every trigger file to its BLAKE3 digest, "" if missing
	Files map[string]string `yaml:"files,omitempty" json:"files,omitempty"`
}

// Fingerprint records the current state of out's triggers
func Fingerprint(fsys core.FileSystem, e core.Environment, out Output) (*Facts, error) {
	facts := &Facts{
		Output:      out,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Env:         make(map[string]string),
		Files:       make(map[string]string),
	}
	for _, key := range out.Triggers.Env {
		if v, ok := e.Lookup(key); ok {
			facts.Env[key] = v
		}
	}
	for _, path := range fingerprintFiles(out) {
		sum, err := Digest(fsys, path)
		if err != nil {
			return nil, err
		}
		facts.Files[path] = sum
	}
	return facts, nil
}

// fingerprintFiles is the trigger files plus the library itself
func fingerprintFiles(out Output) []string {
	files := append([]string(nil), out.Triggers.Files...)
	if out.Library != "" {
		files = append(files, out.Library)
	}
	return files
}

// Digest returns the hex BLAKE3 digest of path, or "" if it does not exist
func Digest(fsys core.FileSystem, path string) (string, error) {
	if !fsys.Exists(path) {
		return "", nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", &core.Error{Op: "fingerprinting", Path: path, Err: err}
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Stale returns the triggers whose state differs from facts, sorted.
// An empty result means the facts are current.
func Stale(fsys core.FileSystem, e core.Environment, facts *Facts) ([]string, error) {
	var changed []string
	for _, key := range facts.Triggers.Env {
		cur, set := e.Lookup(key)
		prev, wasSet := facts.Env[key]
		if set != wasSet || cur != prev {
			changed = append(changed, "env:"+key)
		}
	}
	for _, path := range fingerprintFiles(facts.Output) {
		sum, err := Digest(fsys, path)
		if err != nil {
			return nil, err
		}
		if sum != facts.Files[path] {
			changed = append(changed, "file:"+path)
		}
	}
	sort.Strings(changed)
	return changed, nil
}

// WriteFactsFile writes facts as YAML, or JSON when path ends in .json
func WriteFactsFile(path string, facts *Facts) error {
	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(facts, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(facts)
	}
	if err != nil {
		return fmt.Errorf("encoding facts: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &core.Error{Op: "writing facts", Path: path, Err: err}
	}
	return nil
}

// ReadFactsFile reads a file written by WriteFactsFile. JSON files may
// carry comments.
func ReadFactsFile(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &core.Error{Op: "reading facts", Path: path, Err: fmt.Errorf("no facts recorded, run resolve first: %w", err)}
		}
		return nil, &core.Error{Op: "reading facts", Path: path, Err: err}
	}

	var facts Facts
	if isJSON(path) {
		err = json.Unmarshal(jsonc.ToJSON(data), &facts)
	} else {
		err = yaml.Unmarshal(data, &facts)
	}
	if err != nil {
		return nil, &core.Error{Op: "parsing facts", Path: path, Err: err}
	}
	return &facts, nil
}

func isJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	}
	return false
}
