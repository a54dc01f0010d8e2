package editor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"vimbridge/internal/domain"
)

func TestLaunch_StartsProcess(t *testing.T) {
	if _, err := os.Stat("/usr/bin/true"); err != nil {
		t.Skip("/usr/bin/true not available")
	}

	cmd := domain.BuildCommand(
		domain.EditorConfig{ExecutablePath: "/usr/bin/true"},
		domain.OpenRequest{FilePath: "/tmp/a.cs", Line: 1, Column: 1},
		"",
	)

	if err := NewLauncher().Launch(cmd); err != nil {
		t.Errorf("Launch failed: %v", err)
	}
}

func TestLaunch_MissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-vim")

	err := NewLauncher().Launch(domain.Command{Name: missing, Args: []string{"a.cs"}})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
