package assistant

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/llm"
)

func TestLocalAsk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Think about what happens on an empty list.\n"),
	})
	a := NewLocal(mock, DefaultConfig())

	problem := curriculum.Question{Title: "Max Element", Description: "Find the largest value"}
	reply, err := a.Ask(context.Background(), problem, "def solve(xs): return xs[0]", "why does this crash?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply != "Think about what happens on an empty list." {
		t.Errorf("reply not trimmed: %q", reply)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("doubt answers are free text, no schema expected")
	}
	for _, want := range []string{"Max Element", "xs[0]", "why does this crash?"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestLocalAskProviderError(t *testing.T) {
	a := NewLocal(llm.NewMockProvider(), DefaultConfig())

	_, err := a.Ask(context.Background(), curriculum.Question{}, "", "help")
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}
