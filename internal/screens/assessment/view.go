package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/ui/components"
	"github.com/smahajan/codequarry/internal/ui/theme"
)

func editorWidth(width int) int {
	w := width - 8
	if w < 40 {
		w = 40
	}
	return w
}

func editorHeight(height int) int {
	// Progress line, question card and notices take roughly 10 rows.
	h := height - 10
	if h < 6 {
		h = 6
	}
	return h
}

// renderProgress shows the position line and bar. There is no way back,
// so the bar only ever grows.
func renderProgress(index, total, width int) string {
	label := fmt.Sprintf("Question %d of %d", index+1, total)
	bar := components.NewProgressBar(label, float64(index)/float64(total), false, width-8)
	return "  " + bar.View()
}

func renderQuestion(q curriculum.Question, width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(q.Title)

	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 12).
		Render(q.Description)

	return theme.Card.Width(width - 8).Render(title + "\n\n" + desc)
}

func renderSubmitting(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Submitting your answers for evaluation...")
}

func renderError(msg string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(msg)
}

func renderNotice(width, height int, msg string, isError bool) string {
	color := theme.TextDim
	if isError {
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(color).
		Render(msg)
}

func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Abandon the assessment?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Your answers will be discarded and you will\nstart over from the first question next time."))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Y abandon    N keep going"))

	card := theme.Card.BorderForeground(theme.Error).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
