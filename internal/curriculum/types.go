package curriculum

// Question is a single diagnostic or practice problem as served by the
// platform. Immutable for the lifetime of a session; the working copy of
// the learner's code lives in the answer store, never here.
type Question struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StarterCode string     `json:"starter_code"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
}

// Topic groups problems in the learning path. Topics arrive ordered from
// the platform and are rendered in that order.
type Topic struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Problems    []Question `json:"problems"`
}

// Profile is the learner summary shown on the dashboard.
type Profile struct {
	SkillLevel          string             `json:"skill_level"`
	ProblemsSolved      int                `json:"problems_solved"`
	AssessmentCompleted bool               `json:"assessment_completed"`
	TopicStrength       map[string]float64 `json:"topic_strength"`
}

// Dashboard is the curriculum view: profile plus ordered learning path.
type Dashboard struct {
	Profile      Profile `json:"profile"`
	LearningPath []Topic `json:"learning_path"`
}

// Language identifies the language a practice solution is written in.
type Language string

const (
	LangPython Language = "python"
	LangJava   Language = "java"
	LangCPP    Language = "cpp"
	LangC      Language = "c"
)

// Languages lists the selectable languages in editor cycle order.
var Languages = []Language{LangPython, LangJava, LangCPP, LangC}

// Next returns the language after l in cycle order, wrapping around.
// Unknown values restart the cycle at the first language.
func (l Language) Next() Language {
	for i, known := range Languages {
		if known == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}
