package curriculum

import (
	"encoding/json"
	"testing"
)

func TestDifficultyDisplay_TotalOverClosedSet(t *testing.T) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		desc, err := d.Display()
		if err != nil {
			t.Errorf("Display(%q): unexpected error %v", d, err)
		}
		if desc.Color == "" || desc.Marker == "" {
			t.Errorf("Display(%q): incomplete descriptor %+v", d, desc)
		}
	}
}

func TestDifficultyDisplay_RejectsUnknown(t *testing.T) {
	if _, err := Difficulty("Legendary").Display(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
	if _, err := Difficulty("").Display(); err == nil {
		t.Error("expected error for empty difficulty")
	}
}

func TestDifficultyUnmarshal(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{`"Beginner"`, DifficultyBeginner, false},
		{`"Advanced"`, DifficultyAdvanced, false},
		{`""`, "", false},
		{`"expert"`, "", true},
	}
	for _, tt := range tests {
		var d Difficulty
		err := json.Unmarshal([]byte(tt.input), &d)
		if tt.wantErr {
			if err == nil {
				t.Errorf("unmarshal %s: expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal %s: %v", tt.input, err)
		}
		if d != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.input, d, tt.want)
		}
	}
}

func TestLanguageCycle(t *testing.T) {
	if got := LangPython.Next(); got != LangJava {
		t.Errorf("python.Next() = %q, want java", got)
	}
	if got := LangC.Next(); got != LangPython {
		t.Errorf("c.Next() = %q, want python (wraparound)", got)
	}
	if got := Language("rust").Next(); got != LangPython {
		t.Errorf("unknown.Next() = %q, want python", got)
	}
}
