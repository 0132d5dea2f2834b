package api

import (
	"context"
	"fmt"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/practice"
)

// AssessmentQuestions fetches the fixed diagnostic question set. The
// platform generates the set once per learner and returns the same
// questions on every call until the assessment is completed.
func (c *Client) AssessmentQuestions(ctx context.Context) ([]curriculum.Question, error) {
	var out struct {
		Questions []curriculum.Question `json:"questions"`
	}
	if err := c.do(ctx, "GET", "/assessment/questions/", nil, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// SubmitAssessment sends the full diagnostic answer batch for evaluation.
// The platform places the learner and builds the learning path in one
// step; there is no partial acceptance.
func (c *Client) SubmitAssessment(ctx context.Context, items []assess.BatchItem) error {
	body := struct {
		Submissions []assess.BatchItem `json:"submissions"`
	}{Submissions: items}
	return c.do(ctx, "POST", "/assessment/submit/", body, nil)
}

// Dashboard fetches the learner profile and the ordered learning path.
func (c *Client) Dashboard(ctx context.Context) (*curriculum.Dashboard, error) {
	var out curriculum.Dashboard
	if err := c.do(ctx, "GET", "/dashboard/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Problem fetches a single problem by id. Returns ErrNotFound when the
// id is not part of the learner's curriculum.
func (c *Client) Problem(ctx context.Context, id int) (curriculum.Question, error) {
	var out curriculum.Question
	if err := c.do(ctx, "GET", fmt.Sprintf("/problems/%d/", id), nil, &out); err != nil {
		return curriculum.Question{}, err
	}
	return out, nil
}

// SubmitSolution grades one practice submission and returns the verdict.
func (c *Client) SubmitSolution(ctx context.Context, problemID int, code string, lang curriculum.Language) (practice.Verdict, error) {
	body := struct {
		Code     string `json:"code"`
		Language string `json:"language"`
	}{Code: code, Language: string(lang)}
	var out struct {
		Correct  bool   `json:"is_correct"`
		Feedback string `json:"feedback"`
	}
	if err := c.do(ctx, "POST", fmt.Sprintf("/submit/%d/", problemID), body, &out); err != nil {
		return practice.Verdict{}, err
	}
	return practice.Verdict{Correct: out.Correct, Message: out.Feedback}, nil
}

// Ask sends one doubt-solver question with the learner's current code and
// the problem description as context, returning the reply text.
func (c *Client) Ask(ctx context.Context, question, code, problemContext string) (string, error) {
	body := struct {
		Question string `json:"question"`
		Code     string `json:"code"`
		Context  string `json:"context"`
	}{Question: question, Code: code, Context: problemContext}
	var out struct {
		Answer string `json:"answer"`
	}
	if err := c.do(ctx, "POST", "/ask/", body, &out); err != nil {
		return "", err
	}
	return out.Answer, nil
}

// ResetProgress wipes the learner's assessment, profile and submission
// history on the platform. Irreversible.
func (c *Client) ResetProgress(ctx context.Context) error {
	return c.do(ctx, "POST", "/reset/", nil, nil)
}
