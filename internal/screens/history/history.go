// Package history lists past submissions from the local event log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/screen"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/smahajan/codequarry/internal/ui/layout"
	"github.com/smahajan/codequarry/internal/ui/theme"
)

type historyLoadedMsg struct {
	Submissions []store.SubmissionRecord
	Err         error
}

// HistoryScreen displays past submissions, newest first.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	submissions []store.SubmissionRecord
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		subs, err := s.eventRepo.QuerySubmissions(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Submissions: subs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Feedback"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.submissions = msg.Submissions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.submissions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.submissions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No submissions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sub := range s.submissions {
		dateStr := sub.Timestamp.Format("Jan 02, 2006 15:04")

		verdict := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if sub.Correct {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		title := sub.ProblemTitle
		if title == "" {
			title = fmt.Sprintf("Problem #%d", sub.ProblemID)
		}
		langStr := ""
		if sub.Language != "" {
			langStr = "  [" + sub.Language + "]"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s %s%s", prefix, dateStr, verdict, title, langStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		// Show expanded feedback.
		if s.expanded[i] {
			feedback := sub.Feedback
			if feedback == "" {
				feedback = "No feedback recorded."
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(width - 10).
				PaddingLeft(6).
				Render(feedback))
			b.WriteString("\n")
		}
	}

	return b.String()
}
