// Package tui is the interactive shell: it collects a resume path and a job
// description, runs one analysis per request and renders the result.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/resumatch/internal/analyze"
)

// Analyzer runs one analysis request.
type Analyzer interface {
	Analyze(ctx context.Context, req analyze.Request) (analyze.Report, error)
}

type viewState int

const (
	viewForm viewState = iota
	viewAnalyzing
	viewResult
)

// Focusable form elements, in tab order.
const (
	focusPath = iota
	focusJob
	focusButton
	focusCount
)

// analysisDoneMsg is sent when the async analysis completes.
type analysisDoneMsg struct {
	report analyze.Report
	err    error
}

type model struct {
	analyzer Analyzer

	path    textinput.Model
	job     textarea.Model
	focus   int
	spinner spinner.Model

	view    viewState
	warning string
	report  analyze.Report

	width  int
	height int
}

func newModel(analyzer Analyzer, initialPath string) model {
	path := textinput.New()
	path.Placeholder = "path/to/resume.pdf"
	path.Prompt = "› "
	path.SetValue(initialPath)
	path.Focus()

	job := textarea.New()
	job.Placeholder = "Paste the job description here..."
	job.ShowLineNumbers = false
	job.CharLimit = 0
	job.MaxHeight = 0
	job.SetHeight(10)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		analyzer: analyzer,
		path:     path,
		job:      job,
		spinner:  sp,
		width:    80,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.path.Width = max(m.width-8, 20)
		m.job.SetWidth(max(m.width-4, 20))
		return m, nil

	case analysisDoneMsg:
		if msg.err != nil {
			m.view = viewForm
			m.warning = analyze.UserMessage(msg.err)
			cmd := m.setFocus(m.focus)
			return m, cmd
		}
		m.view = viewResult
		m.warning = ""
		m.report = msg.report
		return m, nil

	case spinner.TickMsg:
		if m.view != viewAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewForm:
			return m.updateForm(msg)
		case viewResult:
			return m.updateResult(msg)
		}
		return m, nil
	}

	return m.forwardToFocused(msg)
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab":
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case "shift+tab":
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	case "ctrl+r":
		return m.submit()
	case "enter":
		switch m.focus {
		case focusPath:
			cmd := m.setFocus(focusJob)
			return m, cmd
		case focusButton:
			return m.submit()
		}
	}
	return m.forwardToFocused(msg)
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace", "n":
		m.view = viewForm
		cmd := m.setFocus(focusPath)
		return m, cmd
	}
	return m, nil
}

// submit validates the inputs and starts the analysis. Missing inputs only
// raise a warning; nothing is read or computed.
func (m model) submit() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.path.Value())
	job := m.job.Value()
	if path == "" || strings.TrimSpace(job) == "" {
		m.warning = analyze.MsgInputMissing
		return m, nil
	}

	m.warning = ""
	m.view = viewAnalyzing
	m.path.Blur()
	m.job.Blur()
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(path, job))
}

func (m model) analyzeCmd(path, job string) tea.Cmd {
	analyzer := m.analyzer
	return func() tea.Msg {
		req, err := analyze.RequestFromFile(path, job)
		if err != nil {
			return analysisDoneMsg{err: err}
		}
		report, err := analyzer.Analyze(context.Background(), req)
		return analysisDoneMsg{report: report, err: err}
	}
}

func (m *model) setFocus(focus int) tea.Cmd {
	m.focus = focus
	m.path.Blur()
	m.job.Blur()
	switch focus {
	case focusPath:
		return m.path.Focus()
	case focusJob:
		return m.job.Focus()
	}
	return nil
}

func (m model) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view != viewForm {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusPath:
		m.path, cmd = m.path.Update(msg)
	case focusJob:
		m.job, cmd = m.job.Update(msg)
	}
	return m, cmd
}
