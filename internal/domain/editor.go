package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// EditorName is the name the host shows for this editor
	EditorName = "Vim"

	// ServerName addresses the running Vim server that receives remote commands
	ServerName = "Unity"

	// DefaultExtensions is the extension list used until the user changes it
	DefaultExtensions = ".cs,.shader,.h,.m,.c,.cpp,.txt,.md,.json"
)

// DefaultExecutablePath returns a platform-specific guess for the Vim binary.
// It is only a starting value; the user is expected to configure the real path.
func DefaultExecutablePath() string {
	switch runtime.GOOS {
	case "darwin":
		return "/opt/homebrew/bin/mvim"
	case "windows":
		return `C:\Program Files\Vim\vim91\gvim.exe`
	default:
		return "/usr/bin/vim"
	}
}

// EditorConfig is the user's external editor configuration
type EditorConfig struct {
	ExecutablePath    string
	AllowedExtensions []string
}

// DefaultEditorConfig returns the configuration used before any preference is saved
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		ExecutablePath:    DefaultExecutablePath(),
		AllowedExtensions: ParseExtensions(DefaultExtensions),
	}
}

// ParseExtensions splits a comma-separated extension list, trimming each entry.
// Blank entries are dropped.
func ParseExtensions(csv string) []string {
	var exts []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		exts = append(exts, part)
	}
	return exts
}

// FormatExtensions joins extensions back into the stored comma-separated form
func FormatExtensions(exts []string) string {
	return strings.Join(exts, ",")
}

// Accepts reports whether path ends with one of the allowed extensions.
// An empty extension list accepts every path.
func (c EditorConfig) Accepts(path string) bool {
	if len(c.AllowedExtensions) == 0 {
		return true
	}
	return matchesAny(path, c.AllowedExtensions)
}

func matchesAny(path string, exts []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// OpenRequest asks for a file to be opened at a cursor position
type OpenRequest struct {
	FilePath string
	Line     int
	Column   int
}

// Normalized returns a copy with negative coordinates clamped to 0
func (r OpenRequest) Normalized() OpenRequest {
	return OpenRequest{
		FilePath: r.FilePath,
		Line:     max(r.Line, 0),
		Column:   max(r.Column, 0),
	}
}

// Command is an external process invocation
type Command struct {
	Name string
	Args []string
}

// BuildCommand constructs the remote-command invocation that opens req in the
// Vim server. The search path argument is omitted when projectRoot is empty.
func BuildCommand(cfg EditorConfig, req OpenRequest, projectRoot string) Command {
	req = req.Normalized()

	args := []string{
		"--servername", ServerName,
		"--remote-silent",
		fmt.Sprintf("+call cursor(%d,%d)", req.Line, req.Column),
	}
	if projectRoot != "" {
		root := filepath.ToSlash(strings.TrimRight(projectRoot, `/\`))
		args = append(args, fmt.Sprintf("+set path+=%s/**", root))
	}
	args = append(args, req.FilePath)

	return Command{Name: cfg.ExecutablePath, Args: args}
}

// String renders the command the way it would be typed in a shell, with the
// file path quoted last. Embedded double quotes are not escaped, so a project
// root or path containing `"` renders ambiguously; Launch never parses this
// form, it passes Args as-is. It is meant for display and logging only.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for i, arg := range c.Args {
		b.WriteByte(' ')
		switch {
		case i == len(c.Args)-1:
			b.WriteString(`"` + arg + `"`)
		case strings.HasPrefix(arg, "+"):
			b.WriteString(`+"` + arg[1:] + `"`)
		default:
			b.WriteString(arg)
		}
	}
	return b.String()
}

// DispatchResult is the outcome of a single dispatch
type DispatchResult struct {
	Success    bool
	Diagnostic string
	Err        error
	Command    *Command
}

// Installation describes an editor binary known to the host
type Installation struct {
	Name string
	Path string
}

// IsExecutable reports whether path names an existing file that can be run
func IsExecutable(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}
