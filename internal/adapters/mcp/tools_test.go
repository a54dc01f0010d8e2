package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"vimbridge/internal/application"
	"vimbridge/internal/application/commands"
	"vimbridge/internal/domain"
)

type memStore map[string]string

func (m memStore) Get(key, def string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m memStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m memStore) Close() error { return nil }

type spyLauncher struct {
	launched []domain.Command
}

func (s *spyLauncher) Launch(cmd domain.Command) error {
	s.launched = append(s.launched, cmd)
	return nil
}

type spyRegenerator struct {
	calls int
}

func (s *spyRegenerator) RegenerateProjectMetadata(_ context.Context) error {
	s.calls++
	return nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func setup(t *testing.T) (Deps, *spyLauncher, *spyRegenerator, string) {
	t.Helper()

	dir := t.TempDir()
	exe := filepath.Join(dir, "vim")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := memStore{
		application.KeyExecutablePath: exe,
		application.KeyExtensions:     ".cs,.md",
	}
	launcher := &spyLauncher{}
	regen := &spyRegenerator{}

	return Deps{
		Opener: commands.NewOpenFileCommand(launcher, dir),
		Syncer: commands.NewSyncCommand(regen),
		Store:  store,
	}, launcher, regen, dir
}

func TestOpenFileHandler(t *testing.T) {
	deps, launcher, _, dir := setup(t)
	target := filepath.Join(dir, "a.cs")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	handler := openFileHandler(deps)

	result, err := handler(context.Background(), callRequest(map[string]any{
		"path": target, "line": float64(5), "column": float64(3),
	}))
	if err != nil || result.IsError {
		t.Fatalf("open_file failed: %v %s", err, resultText(t, result))
	}
	if len(launcher.launched) != 1 || !strings.Contains(launcher.launched[0].String(), "cursor(5,3)") {
		t.Errorf("launched = %v", launcher.launched)
	}

	result, _ = handler(context.Background(), callRequest(map[string]any{"path": filepath.Join(dir, "a.png")}))
	if result.IsError || !strings.Contains(resultText(t, result), "Not opened") {
		t.Errorf("unexpected result for unlisted extension: %s", resultText(t, result))
	}

	result, _ = handler(context.Background(), callRequest(map[string]any{"path": filepath.Join(dir, "missing.cs")}))
	if !result.IsError {
		t.Error("expected error result for missing file")
	}

	result, _ = handler(context.Background(), callRequest(map[string]any{}))
	if !result.IsError {
		t.Error("expected error result for missing path")
	}
}

func TestSyncProjectHandler(t *testing.T) {
	deps, _, regen, _ := setup(t)
	handler := syncProjectHandler(deps)

	result, err := handler(context.Background(), callRequest(map[string]any{
		"added": []any{"Assets/a.png"},
	}))
	if err != nil || result.IsError {
		t.Fatalf("sync_project failed: %v", err)
	}
	if regen.calls != 0 {
		t.Errorf("regenerated for non-code files")
	}

	result, _ = handler(context.Background(), callRequest(map[string]any{
		"added": []any{"Assets/a.cs"},
	}))
	if regen.calls != 1 || !strings.Contains(resultText(t, result), "1 new files") {
		t.Errorf("calls = %d, text = %q", regen.calls, resultText(t, result))
	}

	handler(context.Background(), callRequest(map[string]any{}))
	if regen.calls != 2 {
		t.Errorf("empty request should regenerate unconditionally, calls = %d", regen.calls)
	}
}

func TestConfigHandlers(t *testing.T) {
	deps, _, _, _ := setup(t)

	result, _ := setConfigHandler(deps.Store)(context.Background(), callRequest(map[string]any{
		"extensions": ".shader, .cs",
	}))
	if result.IsError {
		t.Fatalf("set_config failed: %s", resultText(t, result))
	}

	result, _ = getConfigHandler(deps.Store)(context.Background(), callRequest(nil))
	if !strings.Contains(resultText(t, result), "extensions: .shader,.cs") {
		t.Errorf("get_config = %q", resultText(t, result))
	}

	result, _ = setConfigHandler(deps.Store)(context.Background(), callRequest(map[string]any{
		"executable_path": "",
	}))
	if !result.IsError {
		t.Error("expected validation error for empty path")
	}
}

func TestSetConfigHandler_WritesNothingWhenAnyFieldInvalid(t *testing.T) {
	deps, _, _, _ := setup(t)
	store := deps.Store.(memStore)
	before := store[application.KeyExecutablePath]

	result, _ := setConfigHandler(store)(context.Background(), callRequest(map[string]any{
		"executable_path": "/opt/homebrew/bin/mvim",
		"extensions":      ".cs,md",
	}))
	if !result.IsError {
		t.Fatal("expected validation error")
	}
	if store[application.KeyExecutablePath] != before {
		t.Errorf("path written despite invalid extensions: %q", store[application.KeyExecutablePath])
	}
}
