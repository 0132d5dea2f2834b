package dashboard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/store"
)

type mockEventRepo struct {
	placement *store.PlacementRecord
	solved    int
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSubmissionEvent(_ context.Context, _ store.SubmissionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAskEvent(_ context.Context, _ store.AskEventData) error { return nil }
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlacement(_ context.Context, _ store.PlacementEventData) error {
	return nil
}
func (m *mockEventRepo) QuerySubmissions(_ context.Context, _ store.QueryOpts) ([]store.SubmissionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestPlacement(_ context.Context) (*store.PlacementRecord, error) {
	return m.placement, nil
}
func (m *mockEventRepo) CountSolved(_ context.Context) (int, error) { return m.solved, nil }
func (m *mockEventRepo) Reset(_ context.Context) error              { return nil }

func TestLocalLoadBuildsProfileFromEvents(t *testing.T) {
	events := &mockEventRepo{
		placement: &store.PlacementRecord{
			SkillLevel:    "Intermediate",
			TopicStrength: map[string]float64{"Arrays": 0.6},
		},
		solved: 4,
	}
	d := New(nil, nil, nil, events, "test-session")

	msg := d.load()()
	loaded, ok := msg.(loadedMsg)
	if !ok {
		t.Fatalf("got %T, want loadedMsg", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("load: %v", loaded.Err)
	}

	p := loaded.Dashboard.Profile
	if p.SkillLevel != "Intermediate" || p.ProblemsSolved != 4 || !p.AssessmentCompleted {
		t.Errorf("profile = %+v", p)
	}
	if len(loaded.Dashboard.LearningPath) == 0 {
		t.Error("expected built-in learning path in local mode")
	}
}

func TestNavigationAndOpen(t *testing.T) {
	d := New(nil, nil, nil, &mockEventRepo{}, "test-session")
	updated, _ := d.Update(d.load()())
	d = updated.(*DashboardScreen)

	if len(d.problems) == 0 {
		t.Fatal("no problems loaded")
	}

	// Cursor clamps at the top.
	updated, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	d = updated.(*DashboardScreen)
	if d.cursor != 0 {
		t.Errorf("cursor = %d, want 0", d.cursor)
	}

	updated, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	d = updated.(*DashboardScreen)
	if d.cursor != 1 {
		t.Errorf("cursor = %d, want 1", d.cursor)
	}

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command on enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestFlattenPreservesPathOrder(t *testing.T) {
	path := []curriculum.Topic{
		{Name: "A", Problems: []curriculum.Question{{ID: 1}, {ID: 2}}},
		{Name: "B", Problems: []curriculum.Question{{ID: 3}}},
	}
	flat := flatten(path)
	if len(flat) != 3 || flat[0].ID != 1 || flat[2].ID != 3 {
		t.Errorf("flatten = %+v", flat)
	}
}
