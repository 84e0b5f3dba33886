package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/resumatch/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 0, 0)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	activeButtonStyle = buttonStyle.
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

const (
	appTitle    = "Resume–Job Match"
	appSubtitle = "Point to your resume and paste a job description to see how well they match."
	buttonLabel = "Analyze Match"
)

func (m model) View() string {
	switch m.view {
	case viewAnalyzing:
		return m.viewAnalyzing()
	case viewResult:
		return m.viewResult()
	}
	return m.viewForm()
}

func (m model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle) + "\n")
	b.WriteString(subtitleStyle.Render(appSubtitle) + "\n")

	b.WriteString(labelStyle.Render("Resume (PDF, DOCX or TXT)") + "\n")
	b.WriteString(m.path.View() + "\n\n")

	b.WriteString(labelStyle.Render("Job Description") + "\n")
	b.WriteString(m.job.View() + "\n\n")

	button := buttonStyle.Render(buttonLabel)
	if m.focus == focusButton {
		button = activeButtonStyle.Render(buttonLabel)
	}
	b.WriteString(button + "\n")

	if m.warning != "" {
		b.WriteString("\n" + warningStyle.Render("⚠ "+m.warning) + "\n")
	}

	b.WriteString(hintStyle.Render("tab/shift+tab move  enter on button or ctrl+r analyze  esc quit"))
	return b.String()
}

func (m model) viewAnalyzing() string {
	return titleStyle.Render(appTitle) + "\n\n" +
		m.spinner.View() + " Analyzing match...\n"
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle) + "\n\n")
	b.WriteString(report.Render(m.report, max(m.width-2, 44)))
	b.WriteString(hintStyle.Render("esc new analysis  q quit"))
	return b.String()
}
