package config

import (
	"os"
	"path/filepath"
)

const DefaultPrefsPath = "~/.config/vimbridge/prefs.db"

// PrefsPath returns the preference database path from VIMBRIDGE_PREFS,
// falling back to DefaultPrefsPath.
func PrefsPath() string {
	if env := os.Getenv("VIMBRIDGE_PREFS"); env != "" {
		return env
	}
	return DefaultPrefsPath
}

// ProjectRoot returns the project root from VIMBRIDGE_PROJECT, falling back
// to the current working directory.
func ProjectRoot() string {
	if env := os.Getenv("VIMBRIDGE_PROJECT"); env != "" {
		return env
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// RegenCommand returns the shell command that rebuilds project metadata,
// from VIMBRIDGE_REGEN_CMD. Empty means regeneration is skipped.
func RegenCommand() string {
	return os.Getenv("VIMBRIDGE_REGEN_CMD")
}

// AbsProjectRoot resolves root to an absolute path, leaving it unchanged on error
func AbsProjectRoot(root string) string {
	if root == "" {
		return ""
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}
