package practice

import "testing"

func TestBeginAsk_AppendsUserEntryImmediately(t *testing.T) {
	th := NewThread()

	trimmed, ok := th.BeginAsk("  what is a stack?  ")
	if !ok {
		t.Fatal("non-empty ask rejected")
	}
	if trimmed != "what is a stack?" {
		t.Errorf("trimmed = %q", trimmed)
	}

	entries := th.Entries()
	if len(entries) != 1 {
		t.Fatalf("len = %d, user entry must appear before any reply", len(entries))
	}
	if entries[0].Speaker != SpeakerUser || entries[0].Text != "what is a stack?" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestBeginAsk_EmptyIsNoOp(t *testing.T) {
	th := NewThread()
	for _, input := range []string{"", "   ", "\n\t "} {
		if _, ok := th.BeginAsk(input); ok {
			t.Errorf("BeginAsk(%q) accepted, want rejection", input)
		}
	}
	if th.Len() != 0 {
		t.Errorf("len = %d, empty asks must append nothing", th.Len())
	}
}

func TestEveryAskGetsExactlyOneReply(t *testing.T) {
	th := NewThread()

	// 2 successful asks, 1 failed ask.
	th.BeginAsk("q1")
	th.Resolve("a1")
	th.BeginAsk("q2")
	th.Resolve("a2")
	th.BeginAsk("q3")
	th.ResolveError()

	if got, want := th.Len(), 2*(2+1); got != want {
		t.Fatalf("thread length = %d, want %d", got, want)
	}
	entries := th.Entries()
	users, assistants := 0, 0
	for _, e := range entries {
		switch e.Speaker {
		case SpeakerUser:
			users++
		case SpeakerAssistant:
			assistants++
		}
	}
	if users != assistants {
		t.Errorf("users=%d assistants=%d, 1:1 pairing broken", users, assistants)
	}
}

func TestAskFailure_AppendsErrorNotice(t *testing.T) {
	th := NewThread()
	th.BeginAsk("what is a stack?")
	th.ResolveError()

	entries := th.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[1].Speaker != SpeakerAssistant || entries[1].Text != ErrorNotice {
		t.Errorf("entries[1] = %+v, want synthetic error entry", entries[1])
	}
}

func TestRepliesAppendInArrivalOrder(t *testing.T) {
	th := NewThread()

	// Two asks in flight; the second reply arrives first. Out-of-order
	// arrival is accepted behavior, not an error.
	th.BeginAsk("slow question")
	th.BeginAsk("fast question")
	th.Resolve("fast answer")
	th.Resolve("slow answer")

	entries := th.Entries()
	want := []Entry{
		{SpeakerUser, "slow question"},
		{SpeakerUser, "fast question"},
		{SpeakerAssistant, "fast answer"},
		{SpeakerAssistant, "slow answer"},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	th := NewThread()
	th.BeginAsk("q")
	entries := th.Entries()
	entries[0].Text = "mutated"
	if th.Entries()[0].Text != "q" {
		t.Error("Entries must return a copy, not the backing slice")
	}
}
