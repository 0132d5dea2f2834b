// Package assessment runs the diagnostic assessment: a fixed ordered set
// of questions answered in one sitting and graded as a single batch.
package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/assistant"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/screen"
	"github.com/smahajan/codequarry/internal/screens/dashboard"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/smahajan/codequarry/internal/ui/components"
	"github.com/smahajan/codequarry/internal/ui/layout"
)

// AssessmentScreen implements screen.Screen for the diagnostic run.
type AssessmentScreen struct {
	state  *assess.State
	editor components.CodeEditor

	client    *api.Client
	grader    grader.Grader
	assessor  grader.Assessor
	assistant assistant.Assistant
	events    store.EventRepo
	sessionID string

	startedAt      time.Time
	confirmingQuit bool
	errMsg         string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates the assessment screen. Questions load asynchronously on Init.
func New(client *api.Client, g grader.Grader, asr grader.Assessor, ast assistant.Assistant, events store.EventRepo, sessionID string) *AssessmentScreen {
	return &AssessmentScreen{
		client:    client,
		grader:    g,
		assessor:  asr,
		assistant: ast,
		events:    events,
		sessionID: sessionID,
		startedAt: time.Now(),
	}
}

func (a *AssessmentScreen) Init() tea.Cmd {
	return a.loadQuestions()
}

func (a *AssessmentScreen) Title() string {
	return "Assessment"
}

func (a *AssessmentScreen) KeyHints() []layout.KeyHint {
	if a.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon assessment"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if a.state == nil {
		return nil
	}
	advance := "Next question"
	if a.state.Index() == a.state.Total()-1 {
		advance = "Submit assessment"
	}
	return []layout.KeyHint{
		{Key: "Ctrl+N", Description: advance},
		{Key: "Esc", Description: "Quit"},
	}
}

// loadQuestions fetches the diagnostic set: from the platform when one is
// configured, from the built-in curriculum otherwise.
func (a *AssessmentScreen) loadQuestions() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		if client == nil {
			return questionsLoadedMsg{Questions: curriculum.DiagnosticQuestions()}
		}
		qs, err := client.AssessmentQuestions(context.Background())
		return questionsLoadedMsg{Questions: qs, Err: err}
	}
}

func (a *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return a.handleQuestionsLoaded(msg)

	case batchResultMsg:
		return a.handleBatchResult(msg)

	case tea.KeyMsg:
		if a.confirmingQuit {
			switch msg.String() {
			case "y", "Y":
				return a, a.abandon()
			case "n", "N", "esc":
				a.confirmingQuit = false
			}
			return a, nil
		}

		switch msg.String() {
		case "esc":
			a.confirmingQuit = true
			return a, nil
		case "ctrl+n":
			return a.advance()
		}
	}

	if a.state == nil {
		return a, nil
	}

	// Everything else belongs to the editor. Every edit is mirrored into
	// the answer store immediately so the buffer is never ahead of it.
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	a.state.SetAnswer(a.editor.Value())
	return a, cmd
}

func (a *AssessmentScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		a.errMsg = "Could not load the assessment: " + msg.Err.Error()
		return a, nil
	}

	state, err := assess.NewState(msg.Questions)
	if err != nil {
		a.errMsg = "Could not load the assessment: " + err.Error()
		return a, nil
	}
	a.state = state
	a.errMsg = ""
	a.editor = components.NewCodeEditor(state.Answer())

	cmds := []tea.Cmd{a.editor.Init(), a.editor.Focus()}
	if a.events != nil {
		events, sessionID, total := a.events, a.sessionID, state.Total()
		cmds = append(cmds, func() tea.Msg {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:     sessionID,
				Mode:          "assessment",
				Action:        "start",
				QuestionCount: total,
			})
			return nil
		})
	}
	return a, tea.Batch(cmds...)
}

// advance moves forward one question, or issues the batch finalize from
// the last one. Blocked transitions are ignored.
func (a *AssessmentScreen) advance() (screen.Screen, tea.Cmd) {
	if a.state == nil {
		return a, nil
	}

	a.state.SetAnswer(a.editor.Value())

	switch a.state.Advance() {
	case assess.StepNext:
		a.errMsg = ""
		a.editor.SetValue(a.state.Answer())
		return a, nil
	case assess.StepFinalize:
		a.errMsg = ""
		return a, a.finalize()
	default:
		return a, nil
	}
}

// finalize snapshots the batch and submits it. The snapshot is taken here,
// before the command runs, so later edits cannot leak into it.
func (a *AssessmentScreen) finalize() tea.Cmd {
	batch := a.state.Batch()
	assessor := a.assessor

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		placement, err := assessor.Assess(ctx, batch)
		return batchResultMsg{Placement: placement, Err: err}
	}
}

func (a *AssessmentScreen) handleBatchResult(msg batchResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		a.state.FinalizeFailed()
		a.errMsg = "Submission failed: " + msg.Err.Error() + " — press Ctrl+N to retry."
		return a, nil
	}

	a.state.Finalized()

	events, sessionID := a.events, a.sessionID
	placement := msg.Placement
	total := a.state.Total()
	duration := int(time.Since(a.startedAt).Seconds())
	client, g, ast := a.client, a.grader, a.assistant

	// One sequential command: record the outcome, then navigate. The
	// completed assessment must not be reachable again, so the dashboard
	// replaces it instead of stacking on top.
	return a, func() tea.Msg {
		if events != nil {
			ctx := context.Background()
			_ = events.AppendSubmissionEvent(ctx, store.SubmissionEventData{
				SessionID:    sessionID,
				ProblemTitle: fmt.Sprintf("Diagnostic assessment (%d questions)", total),
				Batch:        true,
			})
			if placement != nil {
				_ = events.AppendPlacement(ctx, store.PlacementEventData{
					SessionID:     sessionID,
					SkillLevel:    string(placement.SkillLevel),
					TopicStrength: placement.TopicStrength,
					Feedback:      placement.Feedback,
				})
			}
			_ = events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:     sessionID,
				Mode:          "assessment",
				Action:        "finish",
				QuestionCount: total,
				DurationSecs:  duration,
			})
		}
		return router.ReplaceScreenMsg{
			Screen: dashboard.New(client, g, ast, events, sessionID),
		}
	}
}

// abandon records the walk-away and pops back to the menu.
func (a *AssessmentScreen) abandon() tea.Cmd {
	events, sessionID := a.events, a.sessionID
	var total int
	if a.state != nil {
		total = a.state.Total()
	}
	duration := int(time.Since(a.startedAt).Seconds())

	return func() tea.Msg {
		if events != nil {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:     sessionID,
				Mode:          "assessment",
				Action:        "abandon",
				QuestionCount: total,
				DurationSecs:  duration,
			})
		}
		return router.PopScreenMsg{}
	}
}

func (a *AssessmentScreen) View(width, height int) string {
	if a.errMsg != "" && a.state == nil {
		return renderNotice(width, height, a.errMsg, true)
	}
	if a.state == nil {
		return renderNotice(width, height, "Preparing your assessment...", false)
	}
	if a.confirmingQuit {
		return renderQuitConfirm(width, height)
	}

	a.editor.SetSize(editorWidth(width), editorHeight(height))

	var b strings.Builder
	b.WriteString(renderProgress(a.state.Index(), a.state.Total(), width))
	b.WriteString("\n\n")
	b.WriteString(renderQuestion(a.state.Current(), width))
	b.WriteString("\n\n")
	b.WriteString(a.editor.View())

	if a.state.Submitting() {
		b.WriteString("\n\n")
		b.WriteString(renderSubmitting(width))
	} else if a.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(a.errMsg, width))
	}

	return b.String()
}
