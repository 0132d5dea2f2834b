package curriculum

import (
	"encoding/json"
	"fmt"
)

// Difficulty is the closed set of problem difficulty grades used by the
// platform. Unknown strings are rejected at decode time rather than
// falling through to a default rendering.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is a member of the closed difficulty set.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// UnmarshalJSON enforces the closed set. The empty string is allowed so
// diagnostic questions, which carry no difficulty, decode cleanly.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = ""
		return nil
	}
	v := Difficulty(s)
	if !v.Valid() {
		return fmt.Errorf("unknown difficulty %q", s)
	}
	*d = v
	return nil
}

// DisplayDescriptor is how a difficulty grade is rendered: a marker glyph
// and a hex color understood by the UI theme.
type DisplayDescriptor struct {
	Marker string
	Color  string
	Label  string
}

// descriptors is a total mapping over the closed difficulty set.
var descriptors = map[Difficulty]DisplayDescriptor{
	DifficultyBeginner:     {Marker: "●", Color: "#22C55E", Label: "Beginner"},
	DifficultyIntermediate: {Marker: "●", Color: "#EAB308", Label: "Intermediate"},
	DifficultyAdvanced:     {Marker: "●", Color: "#EF4444", Label: "Advanced"},
}

// Display returns the display descriptor for d. It errors on values
// outside the closed set instead of rendering a silent fallback.
func (d Difficulty) Display() (DisplayDescriptor, error) {
	desc, ok := descriptors[d]
	if !ok {
		return DisplayDescriptor{}, fmt.Errorf("no display descriptor for difficulty %q", string(d))
	}
	return desc, nil
}
