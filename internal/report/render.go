// Package report renders analysis results for the terminal, for scripts and
// for logs.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/resumatch/internal/analyze"
)

const (
	noMatchedText = "No skills matched."
	noMissingText = "All key skills are present!"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)

	matchedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // green

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")). // amber
				Italic(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render lays out a report in width columns: score, progress bar and a
// two-column matched / missing skills breakdown.
func Render(r analyze.Report, width int) string {
	width = max(width, 44)
	colWidth := (width - 2) / 2

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(min(width, 60)),
		progress.WithoutPercentage(),
	)

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Match Score") + "\n")
	b.WriteString(bar.ViewAs(r.Percent/100) + "\n")
	b.WriteString(scoreStyle.Render(FormatPercent(r.Percent)+" Match") + "\n\n")

	b.WriteString(dividerStyle.Render(strings.Repeat("─", width)) + "\n")
	b.WriteString(sectionStyle.Render("Skills Breakdown") + "\n\n")

	left := column("Matched Skills", r.Result.Matched, matchedStyle, noMatchedText, colWidth)
	right := column("Missing Skills", r.Result.Missing, missingStyle, noMissingText, colWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteByte('\n')

	return b.String()
}

// FormatPercent formats a percentage with two decimals, e.g. "42.17%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func column(title string, items []string, itemStyle lipgloss.Style, empty string, width int) string {
	body := placeholderStyle.Render(empty)
	if len(items) > 0 {
		body = itemStyle.Render(strings.Join(items, ", "))
	}
	return lipgloss.NewStyle().Width(width).Render(columnHeaderStyle.Render(title) + "\n" + body)
}
