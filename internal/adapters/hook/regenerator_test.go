package hook

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRegenerator_NoCommand(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegenerator("  ", WithLogger(log.New(&buf, "", 0)))

	if err := r.RegenerateProjectMetadata(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "skipping") {
		t.Errorf("expected skip log, got %q", buf.String())
	}
}

func TestRegenerator_RunsInDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	dir := t.TempDir()

	r := NewRegenerator("touch regenerated", WithDir(dir))
	if err := r.RegenerateProjectMetadata(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "regenerated")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}

func TestRegenerator_ReportsStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	r := NewRegenerator("echo solution is broken >&2; exit 3")
	err := r.RegenerateProjectMetadata(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "solution is broken") {
		t.Errorf("error %q does not carry stderr", err.Error())
	}
}
