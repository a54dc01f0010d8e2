package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"open", "config", "sync", "sync-all", "installations", "watch"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestOpenCommand_RejectedExtensionIsSilent(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{
		"--prefs", filepath.Join(dir, "prefs.db"),
		"--project", dir,
		"open", filepath.Join(dir, "texture.png"), "1", "1",
	})

	err := rootCmd.Execute()
	if err != errNotOpened {
		t.Errorf("Execute() = %v, want errNotOpened", err)
	}
}

func TestOpenCommand_InvalidLine(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.cs")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	rootCmd.SetArgs([]string{
		"--prefs", filepath.Join(dir, "prefs.db"),
		"open", target, "ten",
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for non-numeric line")
	}
}
