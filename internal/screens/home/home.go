// Package home is the entry screen: the main menu plus a summary of the
// learner's standing.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/assistant"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/screen"
	"github.com/smahajan/codequarry/internal/screens/assessment"
	"github.com/smahajan/codequarry/internal/screens/dashboard"
	"github.com/smahajan/codequarry/internal/screens/history"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/smahajan/codequarry/internal/ui/components"
	"github.com/smahajan/codequarry/internal/ui/layout"
	"github.com/smahajan/codequarry/internal/ui/theme"
)

const logo = `
   ____          _       ___
  / ___|___   __| | ___ / _ \ _   _  __ _ _ __ _ __ _   _
 | |   / _ \ / _` + "`" + ` |/ _ \ | | | | | |/ _` + "`" + ` | '__| '__| | | |
 | |__| (_) | (_| |  __/ |_| | |_| | (_| | |  | |  | |_| |
  \____\___/ \__,_|\___|\__\_\\__,_|\__,_|_|  |_|   \__, |
                                                    |___/ `

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	skillLevel string
	solved     int
	assessed   bool

	confirmingReset bool
	resetNotice     string

	client    *api.Client
	events    store.EventRepo
	sessionID string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. client is nil in local mode.
func New(client *api.Client, g grader.Grader, asr grader.Assessor, ast assistant.Assistant, events store.EventRepo, sessionID string) *HomeScreen {
	h := &HomeScreen{
		client:    client,
		events:    events,
		sessionID: sessionID,
	}

	// Local standing for the menu stats. Remote standing arrives with the
	// dashboard; this is a cheap synchronous read like any menu badge.
	if events != nil {
		ctx := context.Background()
		if p, err := events.LatestPlacement(ctx); err == nil && p != nil {
			h.skillLevel = p.SkillLevel
			h.assessed = true
		}
		if n, err := events.CountSolved(ctx); err == nil {
			h.solved = n
		}
	}

	startLabel := "START ASSESSMENT"
	if h.assessed {
		startLabel = "RETAKE ASSESSMENT"
	}

	items := []components.MenuItem{
		{Label: startLabel, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessment.New(client, g, asr, ast, events, sessionID),
				}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: dashboard.New(client, g, ast, events, sessionID),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return confirmResetMsg{}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Wipe progress"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case confirmResetMsg:
		h.confirmingReset = true
		return h, nil

	case resetDoneMsg:
		if msg.Err != nil {
			h.resetNotice = "Reset failed: " + msg.Err.Error()
			return h, nil
		}
		h.resetNotice = "Progress wiped."
		h.skillLevel = ""
		h.solved = 0
		h.assessed = false
		return h, nil

	case tea.KeyMsg:
		if h.confirmingReset {
			switch msg.String() {
			case "y", "Y":
				h.confirmingReset = false
				return h, h.resetProgress()
			case "n", "N", "esc":
				h.confirmingReset = false
			}
			return h, nil
		}
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// resetProgress wipes remote progress when a platform is configured, then
// the local event log either way.
func (h *HomeScreen) resetProgress() tea.Cmd {
	client := h.client
	events := h.events
	return func() tea.Msg {
		ctx := context.Background()
		if client != nil {
			if err := client.ResetProgress(ctx); err != nil {
				return resetDoneMsg{Err: err}
			}
		}
		if events != nil {
			if err := events.Reset(ctx); err != nil {
				return resetDoneMsg{Err: err}
			}
		}
		return resetDoneMsg{}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(logo))
	sections = append(sections, theme.Subtitle.Width(width).Render("Adaptive coding practice, mined one problem at a time"))

	rank := h.skillLevel
	if rank == "" {
		rank = "Unranked"
	}
	stats := lipgloss.NewStyle().Foreground(theme.Accent).Render("◆ "+rank) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("✓ %d solved", h.solved))
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(stats))

	if h.confirmingReset {
		warn := theme.Card.BorderForeground(theme.Error).Render(
			theme.Incorrect.Render("Wipe all progress?") + "\n\n" +
				theme.Body.Render("This deletes your placement, submissions and history.\nPress Y to confirm, N to cancel."))
		sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(warn))
	} else {
		sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View()))
	}

	if h.resetNotice != "" {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(h.resetNotice))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
