package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vimbridge/internal/application"
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

func newTestApp(t *testing.T) (*App, memStore) {
	t.Helper()

	store := memStore{
		application.KeyExecutablePath: "/usr/bin/vim",
		application.KeyExtensions:     ".cs,.md",
	}
	app, err := NewApp(store, "/home/me/Game")
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app, store
}

func TestNewApp_LoadsStoredValues(t *testing.T) {
	app, _ := newTestApp(t)

	if got := app.inputs[fieldPath].Value(); got != "/usr/bin/vim" {
		t.Errorf("path field = %q", got)
	}
	if got := app.inputs[fieldExtensions].Value(); got != ".cs,.md" {
		t.Errorf("extensions field = %q", got)
	}
	if !strings.Contains(app.View(), LabelExecutablePath) {
		t.Error("view is missing the executable path label")
	}
}

func TestApp_SaveWritesChangedFields(t *testing.T) {
	app, store := newTestApp(t)

	app.inputs[fieldExtensions].SetValue(".cs, .shader")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if store[application.KeyExtensions] != ".cs,.shader" {
		t.Errorf("stored extensions = %q", store[application.KeyExtensions])
	}
	if app.err != nil {
		t.Errorf("unexpected error: %v", app.err)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.status != "No changes" {
		t.Errorf("status = %q, want No changes", app.status)
	}
}

func TestApp_SaveRejectsInvalidInput(t *testing.T) {
	app, store := newTestApp(t)

	app.inputs[fieldPath].SetValue("  ")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	var verr *application.ValidationError
	if !errors.As(app.err, &verr) {
		t.Errorf("expected ValidationError, got %v", app.err)
	}
	if store[application.KeyExecutablePath] != "/usr/bin/vim" {
		t.Errorf("path overwritten with %q", store[application.KeyExecutablePath])
	}
}

func TestApp_TabMovesFocus(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if app.focused != fieldExtensions {
		t.Errorf("focused = %d, want %d", app.focused, fieldExtensions)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if app.focused != fieldPath {
		t.Errorf("focused = %d, want %d", app.focused, fieldPath)
	}
}

func TestApp_CopyCommand(t *testing.T) {
	app, _ := newTestApp(t)

	var copied string
	app.copy = func(s string) error {
		copied = s
		return nil
	}

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlY})

	if !strings.HasPrefix(copied, "/usr/bin/vim --servername Unity --remote-silent") {
		t.Errorf("copied = %q", copied)
	}
	if !strings.Contains(copied, "set path+=/home/me/Game/**") {
		t.Errorf("copied command lacks search path: %q", copied)
	}

	app.copy = func(string) error { return errors.New("no clipboard") }
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if app.err == nil {
		t.Error("expected copy error to be shown")
	}
}

func TestApp_SaveWritesNothingWhenAnyFieldInvalid(t *testing.T) {
	app, store := newTestApp(t)

	app.inputs[fieldPath].SetValue("/opt/homebrew/bin/mvim")
	app.inputs[fieldExtensions].SetValue(".cs,shader")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	var verr *application.ValidationError
	if !errors.As(app.err, &verr) || verr.Field != "extensions" {
		t.Errorf("expected extensions ValidationError, got %v", app.err)
	}
	if store[application.KeyExecutablePath] != "/usr/bin/vim" {
		t.Errorf("path written despite invalid extensions: %q", store[application.KeyExecutablePath])
	}
	if store[application.KeyExtensions] != ".cs,.md" {
		t.Errorf("extensions overwritten with %q", store[application.KeyExtensions])
	}
}
