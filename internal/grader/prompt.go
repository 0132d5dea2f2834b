package grader

import (
	"fmt"
	"strings"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
)

const gradeSystemPrompt = `You are an expert programming instructor evaluating a student's solution.

Rules:
- Determine whether the code solves the stated problem correctly.
- Be lenient with function and variable names unless a specific name is required by the problem itself.
- Judge logic and edge-case handling, not style.
- Feedback must be constructive and specific: name what is wrong or what to improve, never just "incorrect".
- When the code is correct, feedback may point out a possible improvement but must open by confirming the solution works.`

const assessSystemPrompt = `You are an expert programming instructor scoring a diagnostic assessment.

Rules:
- Evaluate the full set of solutions together and place the student in exactly one tier: Beginner, Intermediate, or Advanced.
- Analyze logic, time complexity, and recurring error patterns across the answers.
- Score topic strength per topic from 0.0 (no evidence of competence) to 1.0 (strong competence). Use the topics Arrays, Strings, and Loops.
- Unanswered or unmodified starter code counts as no evidence, not as a wrong answer.
- Feedback is a short summary of strengths and weaknesses, addressed to the student.`

// buildGradePrompt formats one submission for evaluation.
func buildGradePrompt(problem curriculum.Question, code string, lang curriculum.Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problem.Title)
	fmt.Fprintf(&b, "Description: %s\n", problem.Description)
	fmt.Fprintf(&b, "Language: %s\n\n", lang)
	b.WriteString("Student code:\n")
	b.WriteString(code)
	return b.String()
}

// buildAssessPrompt formats the diagnostic batch, pairing each question
// with the answer submitted for it.
func buildAssessPrompt(batch []assess.BatchItem) string {
	var b strings.Builder
	b.WriteString("Diagnostic solutions to evaluate:\n\n")
	for i, item := range batch {
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, item.Question)
		fmt.Fprintf(&b, "Code:\n%s\n\n", item.Code)
	}
	return strings.TrimRight(b.String(), "\n")
}
