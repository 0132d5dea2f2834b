package practice

import "strings"

// Speaker identifies who produced a conversation entry.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ErrorNotice is the synthetic assistant entry appended when an ask fails.
const ErrorNotice = "Error connecting to the assistant. Please try again."

// Entry is one message in the doubt-solver transcript.
type Entry struct {
	Speaker Speaker
	Text    string
}

// Thread is the append-only conversation with the assistant, scoped to one
// problem view. Every user message is paired with exactly one assistant
// entry: the real answer on success, ErrorNotice on failure. Replies append
// in arrival order, which may differ from ask order when several asks are
// in flight; that interleaving is accepted behavior.
type Thread struct {
	entries []Entry
}

// NewThread creates an empty conversation.
func NewThread() *Thread {
	return &Thread{}
}

// BeginAsk starts an ask. The question is trimmed; whitespace-only input
// is rejected with ok=false and appends nothing. Otherwise the user entry
// is appended immediately — before any network round trip — and the
// trimmed question is returned for the caller to send.
func (t *Thread) BeginAsk(question string) (trimmed string, ok bool) {
	trimmed = strings.TrimSpace(question)
	if trimmed == "" {
		return "", false
	}
	t.entries = append(t.entries, Entry{Speaker: SpeakerUser, Text: trimmed})
	return trimmed, true
}

// Resolve appends the assistant's answer for an outstanding ask.
func (t *Thread) Resolve(answer string) {
	t.entries = append(t.entries, Entry{Speaker: SpeakerAssistant, Text: answer})
}

// ResolveError appends the synthetic error entry for an outstanding ask so
// the transcript is never left missing a reply.
func (t *Thread) ResolveError() {
	t.entries = append(t.entries, Entry{Speaker: SpeakerAssistant, Text: ErrorNotice})
}

// Entries returns a copy of the transcript in append order.
func (t *Thread) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries in the transcript.
func (t *Thread) Len() int {
	return len(t.entries)
}
