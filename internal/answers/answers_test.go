package answers

import "testing"

func TestStoreInitializedFromStarters(t *testing.T) {
	s := NewStore(map[int]string{1: "def a():", 2: "def b():"})

	if got := s.Get(1); got != "def a():" {
		t.Errorf("Get(1) = %q, want starter code", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	s := NewStore(map[int]string{1: "a"})

	s.Set(1, "ab")
	s.Set(1, "abc")
	s.Set(1, "abcd")

	if got := s.Get(1); got != "abcd" {
		t.Errorf("Get(1) = %q, want last written value", got)
	}
}

func TestStoreSetIsSynchronous(t *testing.T) {
	s := NewStore(map[int]string{5: ""})
	for i, edit := range []string{"p", "pr", "pri", "prin", "print"} {
		s.Set(5, edit)
		if got := s.Get(5); got != edit {
			t.Fatalf("edit %d: Get = %q, want %q immediately after Set", i, got, edit)
		}
	}
}

func TestStoreIgnoresUnknownKey(t *testing.T) {
	s := NewStore(map[int]string{1: "a"})

	s.Set(99, "stale write after navigation")

	if s.Has(99) {
		t.Error("Set must not create entries for unknown ids")
	}
	if got := s.Get(99); got != "" {
		t.Errorf("Get(99) = %q, want empty", got)
	}
	if got := s.Get(1); got != "a" {
		t.Errorf("Get(1) = %q, unrelated entry disturbed", got)
	}
}
