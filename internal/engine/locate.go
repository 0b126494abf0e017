package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ModuleName is the file name searched for when no engine path is given.
const ModuleName = "jslint.js"

// ErrNotFound is returned by Locate when no engine module can be found.
var ErrNotFound = errors.New("engine module not found")

// Locate resolves the engine module path. An explicit path must exist.
// Otherwise ModuleName is looked up next to the running executable and then
// in the working directory. The returned path is absolute.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return existing(explicit)
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ModuleName))
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, ModuleName))
	}

	for _, c := range candidates {
		if path, err := existing(c); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no %s next to the executable or in the working directory (use --jslint)", ErrNotFound, ModuleName)
}

func existing(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("checking %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return abs, nil
}
