package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vimbridge/internal/adapters/sqlite"
	"vimbridge/internal/adapters/tui"
	"vimbridge/internal/config"
)

func main() {
	prefsFlag := flag.String("prefs", config.PrefsPath(), "path to the preferences database")
	projectFlag := flag.String("project", config.ProjectRoot(), "project root added to Vim's search path")
	flag.Parse()

	store, err := sqlite.Open(*prefsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app, err := tui.NewApp(store, config.AbsProjectRoot(*projectFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
