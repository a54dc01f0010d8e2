package application

import (
	"fmt"
	"os"
	"strings"

	"vimbridge/internal/domain"
	"vimbridge/internal/ports"
)

// Preference keys
const (
	KeyExecutablePath = "VimExecutablePath"
	KeyExtensions     = "VimFilenameExtensions"
)

// LoadConfig reads the editor configuration, falling back to defaults for
// anything not yet stored
func LoadConfig(store ports.PreferenceStore) (domain.EditorConfig, error) {
	path, err := store.Get(KeyExecutablePath, domain.DefaultExecutablePath())
	if err != nil {
		return domain.EditorConfig{}, fmt.Errorf("failed to read %s: %w", KeyExecutablePath, err)
	}

	exts, err := store.Get(KeyExtensions, domain.DefaultExtensions)
	if err != nil {
		return domain.EditorConfig{}, fmt.Errorf("failed to read %s: %w", KeyExtensions, err)
	}

	return domain.EditorConfig{
		ExecutablePath:    path,
		AllowedExtensions: domain.ParseExtensions(exts),
	}, nil
}

// SaveExecutablePath stores a new Vim path. It reports whether the stored
// value changed.
func SaveExecutablePath(store ports.PreferenceStore, path string) (bool, error) {
	if err := ValidateExecutablePath(path); err != nil {
		return false, err
	}
	return setIfChanged(store, KeyExecutablePath, domain.DefaultExecutablePath(), strings.TrimSpace(path))
}

// ValidateExecutablePath checks a Vim path without storing it
func ValidateExecutablePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return &ValidationError{Field: "executablePath", Message: "path is required"}
	}
	return nil
}

// SaveExtensions stores a new comma-separated extension list. It reports
// whether the stored value changed.
func SaveExtensions(store ports.PreferenceStore, csv string) (bool, error) {
	if err := ValidateExtensions(csv); err != nil {
		return false, err
	}
	exts := domain.ParseExtensions(csv)
	return setIfChanged(store, KeyExtensions, domain.DefaultExtensions, domain.FormatExtensions(exts))
}

// ValidateExtensions checks a comma-separated extension list without storing it
func ValidateExtensions(csv string) error {
	for _, ext := range domain.ParseExtensions(csv) {
		if !strings.HasPrefix(ext, ".") {
			return &ValidationError{
				Field:   "extensions",
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			}
		}
	}
	return nil
}

func setIfChanged(store ports.PreferenceStore, key, def, value string) (bool, error) {
	current, err := store.Get(key, def)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if current == value {
		return false, nil
	}
	if err := store.Set(key, value); err != nil {
		return false, fmt.Errorf("failed to save %s: %w", key, err)
	}
	return true, nil
}

// Installations lists the Vim installations known to the host
func Installations(cfg domain.EditorConfig) []domain.Installation {
	return []domain.Installation{{Name: domain.EditorName, Path: cfg.ExecutablePath}}
}

// TryGetInstallationForPath returns an Installation for editorPath if a file exists there
func TryGetInstallationForPath(editorPath string) (domain.Installation, bool) {
	info, err := os.Stat(editorPath)
	if err != nil || info.IsDir() {
		return domain.Installation{}, false
	}
	return domain.Installation{Name: domain.EditorName, Path: editorPath}, true
}
