package editor

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smahajan/codequarry/internal/practice"
	"github.com/smahajan/codequarry/internal/ui/theme"
)

func (e *EditorScreen) View(width, height int) string {
	chatHeight := height / 3
	if chatHeight < 6 {
		chatHeight = 6
	}

	descCard := e.renderDescription(width)
	resultLine := e.renderResult(width)

	editorHeight := height - lipgloss.Height(descCard) - chatHeight - lipgloss.Height(resultLine) - 3
	if editorHeight < 5 {
		editorHeight = 5
	}
	e.code.SetSize(width-6, editorHeight)

	var b strings.Builder
	b.WriteString(descCard)
	b.WriteString("\n")
	b.WriteString(e.code.View())
	b.WriteString("\n")
	if resultLine != "" {
		b.WriteString(resultLine)
		b.WriteString("\n")
	}
	b.WriteString(e.renderChat(width, chatHeight))
	return b.String()
}

func (e *EditorScreen) renderDescription(width int) string {
	p := e.state.Problem
	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(p.Title)
	if desc, err := p.Difficulty.Display(); err == nil {
		title += "  " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(desc.Color)).
			Render(desc.Marker+" "+desc.Label)
	}
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 12).
		Render(p.Description)
	return theme.Card.Width(width - 6).Render(title + "\n" + body)
}

func (e *EditorScreen) renderResult(width int) string {
	if e.state.Pending() {
		return theme.Hint.Render("  Grading your submission...")
	}
	if e.notice != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Render("  " + e.notice)
	}
	result := e.state.Result()
	if result == nil {
		return ""
	}

	style := theme.Incorrect
	label := "✗ Not yet"
	if result.Correct {
		style = theme.Correct
		label = "✓ Correct"
	}
	feedback := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 10).
		Render(result.Message)
	return "  " + style.Render(label) + "\n  " + feedback
}

func (e *EditorScreen) renderChat(width, height int) string {
	entries := e.state.Conversation.Entries()

	var lines []string
	for _, entry := range entries {
		lines = append(lines, renderEntry(entry, width-10))
	}

	// Keep only the newest lines that fit above the input.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	joined := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(joined) > visible {
		joined = joined[len(joined)-visible:]
	}

	transcript := strings.Join(joined, "\n")
	if transcript == "" {
		transcript = theme.Hint.Render("Stuck? Ask the assistant. Tab switches to the chat.")
	}

	border := theme.Border
	if e.focus == focusChat {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 6).
		Padding(0, 1).
		Render(transcript + "\n" + e.ask.View())
}

func renderEntry(entry practice.Entry, width int) string {
	prefix := "You: "
	color := theme.Primary
	if entry.Speaker == practice.SpeakerAssistant {
		prefix = "Assistant: "
		color = theme.Secondary
		if entry.Text == practice.ErrorNotice {
			color = theme.Error
		}
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(prefix) +
		lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(entry.Text)
}
