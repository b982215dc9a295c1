package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveRuntimePath turns a configured directory into an absolute path.
// Relative paths are anchored at the executable's directory so the service
// behaves the same regardless of the working directory it was started from.
func ResolveRuntimePath(configured, fallback string) string {
	dir := strings.TrimSpace(configured)
	if dir == "" {
		dir = strings.TrimSpace(fallback)
	}
	if dir == "" {
		return baseDir()
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(baseDir(), dir)
}

func baseDir() string {
	if exe, err := os.Executable(); err == nil && exe != "" {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil && resolved != "" {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil && wd != "" {
		return wd
	}
	return "."
}
