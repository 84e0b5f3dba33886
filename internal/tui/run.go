package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the interactive shell.
type Options struct {
	AltScreen   bool
	InitialPath string // prefilled resume path, may be empty
}

// Run starts the interactive shell and blocks until the user quits.
func Run(analyzer Analyzer, opts Options) error {
	m := newModel(analyzer, opts.InitialPath)

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
