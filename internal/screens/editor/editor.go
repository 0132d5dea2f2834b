// Package editor is the practice view for a single problem: the code
// editor, grade-on-demand submission, and the doubt-solver conversation.
package editor

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/assistant"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/practice"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/screen"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/smahajan/codequarry/internal/ui/components"
	"github.com/smahajan/codequarry/internal/ui/layout"
)

// focusArea tracks which widget owns the keyboard.
type focusArea int

const (
	focusCode focusArea = iota
	focusChat
)

// EditorScreen implements screen.Screen for one practice problem.
type EditorScreen struct {
	state  *practice.State
	code   components.CodeEditor
	ask    components.TextInput
	focus  focusArea
	notice string
	seeded string // starter code the editor opened with

	client    *api.Client
	grader    grader.Grader
	assistant assistant.Assistant
	events    store.EventRepo
	sessionID string
	startedAt time.Time
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New opens a practice session on problem. The session state (and with it
// the working copy of the code and the conversation) lives exactly as
// long as this screen. A non-nil client refreshes the problem by id on
// open; the dashboard copy renders until the fresh one arrives.
func New(problem curriculum.Question, client *api.Client, g grader.Grader, ast assistant.Assistant, events store.EventRepo, sessionID string) *EditorScreen {
	state := practice.NewState(problem, curriculum.LangPython)
	e := &EditorScreen{
		state:     state,
		code:      components.NewCodeEditor(state.Code()),
		ask:       components.NewTextInput("Ask the assistant about this problem...", 300),
		seeded:    state.Code(),
		client:    client,
		grader:    g,
		assistant: ast,
		events:    events,
		sessionID: sessionID,
		startedAt: time.Now(),
	}
	return e
}

func (e *EditorScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{e.code.Init(), e.code.Focus()}
	if e.client != nil {
		client, id := e.client, e.state.Problem.ID
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			p, err := client.Problem(ctx, id)
			return problemLoadedMsg{Problem: p, Err: err}
		})
	}
	if e.events != nil {
		events, sessionID, problemID := e.events, e.sessionID, e.state.Problem.ID
		cmds = append(cmds, func() tea.Msg {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: sessionID,
				Mode:      "practice",
				Action:    "start",
				ProblemID: problemID,
			})
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (e *EditorScreen) Title() string {
	return e.state.Problem.Title
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Tab", Description: "Code/Chat"},
		{Key: "Ctrl+L", Description: "Language: " + string(e.state.Language)},
		{Key: "Esc", Description: "Back"},
	}
	if e.focus == focusChat {
		hints[1] = layout.KeyHint{Key: "Enter", Description: "Ask"}
	}
	return hints
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemLoadedMsg:
		return e.handleProblemLoaded(msg)

	case verdictMsg:
		return e.handleVerdict(msg)

	case replyMsg:
		return e.handleReply(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return e, e.leave()
		case "tab":
			return e, e.toggleFocus()
		case "ctrl+s":
			return e.submit()
		case "ctrl+l":
			e.state.Language = e.state.Language.Next()
			return e, nil
		case "enter":
			if e.focus == focusChat {
				return e.askQuestion()
			}
		}
	}

	// Remaining input goes to the focused widget. Code edits are mirrored
	// into the session state on every keystroke, so a submission snapshot
	// can never observe a half-applied buffer.
	var cmd tea.Cmd
	if e.focus == focusChat {
		e.ask, cmd = e.ask.Update(msg)
	} else {
		e.code, cmd = e.code.Update(msg)
		e.state.SetCode(e.code.Value())
	}
	return e, cmd
}

// handleProblemLoaded swaps in the platform's copy of the problem. The
// editor buffer is reseeded only while it still holds the untouched
// dashboard starter; typed code is never clobbered.
func (e *EditorScreen) handleProblemLoaded(msg problemLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// The dashboard copy is still a valid problem; keep it.
		return e, nil
	}
	e.state.Problem = msg.Problem
	if e.state.Code() == e.seeded && msg.Problem.StarterCode != e.seeded {
		e.seeded = msg.Problem.StarterCode
		e.state.SetCode(msg.Problem.StarterCode)
		e.code.SetValue(msg.Problem.StarterCode)
	}
	return e, nil
}

func (e *EditorScreen) toggleFocus() tea.Cmd {
	if e.focus == focusCode {
		e.focus = focusChat
		e.code.Blur()
		return e.ask.Focus()
	}
	e.focus = focusCode
	e.ask.Blur()
	return e.code.Focus()
}

// submit issues a grading request for the current code. Rejected while a
// previous submission is still pending.
func (e *EditorScreen) submit() (screen.Screen, tea.Cmd) {
	e.state.SetCode(e.code.Value())

	attempt, snapshot, ok := e.state.BeginSubmit()
	if !ok {
		e.notice = "A submission is already being graded."
		return e, nil
	}
	e.notice = ""

	g := e.grader
	problem, lang := e.state.Problem, e.state.Language
	return e, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		start := time.Now()
		v, err := g.Grade(ctx, problem, snapshot, lang)
		return verdictMsg{
			Attempt:   attempt,
			Snapshot:  snapshot,
			Verdict:   v,
			LatencyMs: time.Since(start).Milliseconds(),
			Err:       err,
		}
	}
}

func (e *EditorScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if e.state.FailSubmit(msg.Attempt) {
			e.notice = "Grading failed: " + msg.Err.Error()
		}
		return e, nil
	}

	if !e.state.ResolveSubmit(msg.Attempt, msg.Verdict) {
		// Stale verdict for a superseded submission; drop it.
		return e, nil
	}

	var cmd tea.Cmd
	if e.events != nil {
		events, sessionID := e.events, e.sessionID
		problem, lang := e.state.Problem, e.state.Language
		code := msg.Snapshot
		v := msg.Verdict
		latency := msg.LatencyMs
		cmd = func() tea.Msg {
			_ = events.AppendSubmissionEvent(context.Background(), store.SubmissionEventData{
				SessionID:    sessionID,
				ProblemID:    problem.ID,
				ProblemTitle: problem.Title,
				Language:     string(lang),
				Code:         code,
				Correct:      v.Correct,
				Feedback:     v.Message,
				LatencyMs:    latency,
			})
			return nil
		}
	}
	return e, cmd
}

// askQuestion sends the chat input to the assistant. The user entry is
// appended optimistically before the round trip.
func (e *EditorScreen) askQuestion() (screen.Screen, tea.Cmd) {
	question, ok := e.state.Conversation.BeginAsk(e.ask.Value())
	if !ok {
		return e, nil
	}
	e.ask.Reset()

	ast := e.assistant
	problem := e.state.Problem
	code := e.state.Code()
	return e, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		reply, err := ast.Ask(ctx, problem, code, question)
		return replyMsg{Question: question, Reply: reply, Err: err}
	}
}

func (e *EditorScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	answered := msg.Err == nil
	if answered {
		e.state.Conversation.Resolve(msg.Reply)
	} else {
		e.state.Conversation.ResolveError()
	}

	var cmd tea.Cmd
	if e.events != nil {
		events, sessionID, problemID := e.events, e.sessionID, e.state.Problem.ID
		question := msg.Question
		var errText string
		if msg.Err != nil {
			errText = msg.Err.Error()
		}
		cmd = func() tea.Msg {
			_ = events.AppendAskEvent(context.Background(), store.AskEventData{
				SessionID:    sessionID,
				ProblemID:    problemID,
				Question:     question,
				Answered:     answered,
				ErrorMessage: errText,
			})
			return nil
		}
	}
	return e, cmd
}

// leave records the session end and pops back to the dashboard.
func (e *EditorScreen) leave() tea.Cmd {
	events, sessionID, problemID := e.events, e.sessionID, e.state.Problem.ID
	duration := int(time.Since(e.startedAt).Seconds())
	return func() tea.Msg {
		if events != nil {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:    sessionID,
				Mode:         "practice",
				Action:       "finish",
				ProblemID:    problemID,
				DurationSecs: duration,
			})
		}
		return router.PopScreenMsg{}
	}
}
