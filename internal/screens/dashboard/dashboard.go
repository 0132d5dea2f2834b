// Package dashboard shows the learner profile and the ordered learning
// path, and is the launch point into practice sessions.
package dashboard

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/assistant"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/screen"
	"github.com/smahajan/codequarry/internal/screens/editor"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/smahajan/codequarry/internal/ui/layout"
)

// DashboardScreen implements screen.Screen for the curriculum view.
type DashboardScreen struct {
	data     *curriculum.Dashboard
	problems []curriculum.Question // flattened in path order
	cursor   int
	errMsg   string

	client    *api.Client
	grader    grader.Grader
	assistant assistant.Assistant
	events    store.EventRepo
	sessionID string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard screen. client is nil in local mode.
func New(client *api.Client, g grader.Grader, ast assistant.Assistant, events store.EventRepo, sessionID string) *DashboardScreen {
	return &DashboardScreen{
		client:    client,
		grader:    g,
		assistant: ast,
		events:    events,
		sessionID: sessionID,
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open problem"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

// load fetches the dashboard from the platform, or assembles the local
// equivalent from the built-in path and the event log.
func (d *DashboardScreen) load() tea.Cmd {
	client, events := d.client, d.events
	return func() tea.Msg {
		ctx := context.Background()
		if client != nil {
			data, err := client.Dashboard(ctx)
			return loadedMsg{Dashboard: data, Err: err}
		}

		data := &curriculum.Dashboard{LearningPath: curriculum.BuiltinPath()}
		if events != nil {
			if p, err := events.LatestPlacement(ctx); err == nil && p != nil {
				data.Profile.SkillLevel = p.SkillLevel
				data.Profile.TopicStrength = p.TopicStrength
				data.Profile.AssessmentCompleted = true
			}
			if n, err := events.CountSolved(ctx); err == nil {
				data.Profile.ProblemsSolved = n
			}
		}
		return loadedMsg{Dashboard: data}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			d.errMsg = "Could not load the dashboard: " + msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.data = msg.Dashboard
		d.problems = flatten(msg.Dashboard.LearningPath)
		if d.cursor >= len(d.problems) {
			d.cursor = 0
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(d.problems)-1 {
				d.cursor++
			}
		case "enter":
			if d.cursor < len(d.problems) {
				problem := d.problems[d.cursor]
				client, g, ast, events, sessionID := d.client, d.grader, d.assistant, d.events, d.sessionID
				return d, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: editor.New(problem, client, g, ast, events, sessionID),
					}
				}
			}
		case "r", "R":
			return d, d.load()
		case "esc":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func flatten(path []curriculum.Topic) []curriculum.Question {
	var out []curriculum.Question
	for _, t := range path {
		out = append(out, t.Problems...)
	}
	return out
}
