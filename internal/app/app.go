// Package app wires the collaborators together and runs the root Bubble
// Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/assistant"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/screen"
	"github.com/smahajan/codequarry/internal/screens/home"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/smahajan/codequarry/internal/ui/layout"
)

// Deps are the collaborators the screens run on. Client is nil in local
// mode; the rest are always present.
type Deps struct {
	Client    *api.Client
	Grader    grader.Grader
	Assessor  grader.Assessor
	Assistant assistant.Assistant
	Events    store.EventRepo
	SessionID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   Deps
	width  int
	height int

	skillLevel string
	solved     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Client, deps.Grader, deps.Assessor, deps.Assistant, deps.Events, deps.SessionID)
	m := AppModel{
		router: router.New(homeScreen),
		deps:   deps,
	}
	m.refreshStanding()
	return m
}

// refreshStanding reloads the header stats from the event log.
func (m *AppModel) refreshStanding() {
	if m.deps.Events == nil {
		return
	}
	ctx := context.Background()
	if p, err := m.deps.Events.LatestPlacement(ctx); err == nil && p != nil {
		m.skillLevel = p.SkillLevel
	}
	if n, err := m.deps.Events.CountSolved(ctx); err == nil {
		m.solved = n
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: confirm overlays and leave events
		// depend on seeing it.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation points are when standing can have changed (a grade
		// came in, an assessment finished).
		m.refreshStanding()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.skillLevel, m.solved, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
