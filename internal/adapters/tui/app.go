package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vimbridge/internal/adapters/tui/styles"
	"vimbridge/internal/application"
	"vimbridge/internal/domain"
	"vimbridge/internal/ports"
)

// Field labels
const (
	LabelExecutablePath = "Vim Executable Path"
	LabelExtensions     = "Code Filename Extensions"
)

const (
	fieldPath = iota
	fieldExtensions
)

// KeyMap defines the preference panel key bindings
type KeyMap struct {
	Save key.Binding
	Next key.Binding
	Copy key.Binding
	Quit key.Binding
}

// DefaultKeys returns the default key bindings
var DefaultKeys = KeyMap{
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("tab", "next field"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy command"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// App is the preferences panel: the two editor fields plus a live preview of
// the remote command they produce
type App struct {
	store       ports.PreferenceStore
	projectRoot string
	keys        KeyMap
	copy        func(string) error

	inputs  []textinput.Model
	focused int
	status  string
	err     error
}

// NewApp creates the panel, loading the current values from store
func NewApp(store ports.PreferenceStore, projectRoot string) (*App, error) {
	cfg, err := application.LoadConfig(store)
	if err != nil {
		return nil, err
	}

	path := textinput.New()
	path.Placeholder = domain.DefaultExecutablePath()
	path.SetValue(cfg.ExecutablePath)
	path.Focus()

	exts := textinput.New()
	exts.Placeholder = domain.DefaultExtensions
	exts.SetValue(domain.FormatExtensions(cfg.AllowedExtensions))

	return &App{
		store:       store,
		projectRoot: projectRoot,
		keys:        DefaultKeys,
		copy:        clipboard.WriteAll,
		inputs:      []textinput.Model{path, exts},
	}, nil
}

// Init returns the blink command for the focused input
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Next):
			a.nextField()
			return a, nil
		case key.Matches(msg, a.keys.Save):
			a.save()
			return a, nil
		case key.Matches(msg, a.keys.Copy):
			if err := a.copy(a.preview().String()); err != nil {
				a.setError(fmt.Errorf("failed to copy: %w", err))
			} else {
				a.setStatus("Copied command to clipboard")
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
	return a, cmd
}

func (a *App) nextField() {
	a.inputs[a.focused].Blur()
	a.focused = (a.focused + 1) % len(a.inputs)
	a.inputs[a.focused].Focus()
}

// save persists both fields. Nothing is written unless both are valid, and
// values are only written when they changed.
func (a *App) save() {
	if err := errors.Join(
		application.ValidateExecutablePath(a.inputs[fieldPath].Value()),
		application.ValidateExtensions(a.inputs[fieldExtensions].Value()),
	); err != nil {
		a.setError(err)
		return
	}

	pathChanged, err := application.SaveExecutablePath(a.store, a.inputs[fieldPath].Value())
	if err != nil {
		a.setError(err)
		return
	}
	extsChanged, err := application.SaveExtensions(a.store, a.inputs[fieldExtensions].Value())
	if err != nil {
		a.setError(err)
		return
	}

	if !pathChanged && !extsChanged {
		a.setStatus("No changes")
		return
	}
	if !domain.IsExecutable(strings.TrimSpace(a.inputs[fieldPath].Value())) {
		a.setStatus("Saved (warning: executable not found)")
		return
	}
	a.setStatus("Saved")
}

func (a *App) preview() domain.Command {
	cfg := domain.EditorConfig{
		ExecutablePath:    strings.TrimSpace(a.inputs[fieldPath].Value()),
		AllowedExtensions: domain.ParseExtensions(a.inputs[fieldExtensions].Value()),
	}
	return domain.BuildCommand(cfg, domain.OpenRequest{FilePath: "<file>"}, a.projectRoot)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.err = nil
}

func (a *App) setError(err error) {
	a.status = ""
	a.err = err
}

// View renders the panel
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(domain.EditorName + " external editor"))
	b.WriteString("\n")

	for i, label := range []string{LabelExecutablePath, LabelExtensions} {
		b.WriteString(styles.InputLabel.Render(label))
		b.WriteString("\n")
		if i == a.focused {
			b.WriteString(styles.InputFocused.Render(a.inputs[i].View()))
		} else {
			b.WriteString(styles.InputField.Render(a.inputs[i].View()))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Preview.Render(a.preview().String()))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(styles.ErrorMsg.Render(a.err.Error()))
	case a.status != "":
		b.WriteString(styles.Success.Render(a.status))
	}
	b.WriteString("\n")

	var help []string
	for _, k := range []key.Binding{a.keys.Next, a.keys.Save, a.keys.Copy, a.keys.Quit} {
		h := k.Help()
		help = append(help, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	b.WriteString(strings.Join(help, "  "))

	return styles.App.Render(b.String())
}
