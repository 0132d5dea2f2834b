package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// CodeEditor wraps bubbles/textarea for editing a solution. The buffer
// here is the widget's working copy; the screen mirrors every edit into
// the answer store so submissions snapshot from one place.
type CodeEditor struct {
	Model textarea.Model
}

// NewCodeEditor creates an editor seeded with the given code.
func NewCodeEditor(code string) CodeEditor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0 // unlimited
	ta.SetValue(code)
	return CodeEditor{Model: ta}
}

// Init returns the initial command.
func (e CodeEditor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (e CodeEditor) Update(msg tea.Msg) (CodeEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e CodeEditor) View() string {
	return e.Model.View()
}

// Value returns the current buffer contents.
func (e CodeEditor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the buffer contents.
func (e *CodeEditor) SetValue(code string) {
	e.Model.SetValue(code)
}

// SetSize resizes the editor viewport.
func (e *CodeEditor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Focus gives the editor keyboard focus.
func (e *CodeEditor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *CodeEditor) Blur() {
	e.Model.Blur()
}

// Focused reports whether the editor has keyboard focus.
func (e CodeEditor) Focused() bool {
	return e.Model.Focused()
}
