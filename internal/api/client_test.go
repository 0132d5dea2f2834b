package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, Credentials{Token: "tok-123"})
}

func TestAssessmentQuestions(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/assessment/questions/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []map[string]any{
				{"id": 1, "title": "Sum", "description": "Add two numbers", "starter_code": "def solve():"},
				{"id": 2, "title": "Reverse", "description": "Reverse a string", "starter_code": "def solve():"},
			},
		})
	})

	qs, err := c.AssessmentQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "tok-123", gotAuth[len("Token "):])
	assert.Equal(t, 1, qs[0].ID)
	assert.Equal(t, "Reverse", qs[1].Title)
}

func TestSubmitAssessmentSendsBatch(t *testing.T) {
	var got struct {
		Submissions []assess.BatchItem `json:"submissions"`
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/assessment/submit/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	batch := []assess.BatchItem{
		{Question: "Add two numbers", Code: "a"},
		{Question: "Reverse a string", Code: "b"},
	}
	require.NoError(t, c.SubmitAssessment(context.Background(), batch))
	assert.Equal(t, batch, got.Submissions)
}

func TestSubmitSolutionMapsVerdict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit/7/", r.URL.Path)
		var body struct {
			Code     string `json:"code"`
			Language string `json:"language"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "print(42)", body.Code)
		assert.Equal(t, "python", body.Language)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"is_correct": false,
			"feedback":   "Handle the empty input case.",
		})
	})

	v, err := c.SubmitSolution(context.Background(), 7, "print(42)", curriculum.LangPython)
	require.NoError(t, err)
	assert.False(t, v.Correct)
	assert.Equal(t, "Handle the empty input case.", v.Message)
}

func TestAsk(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ask/", r.URL.Path)
		var body struct {
			Question string `json:"question"`
			Code     string `json:"code"`
			Context  string `json:"context"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "why does this fail?", body.Question)
		_ = json.NewEncoder(w).Encode(map[string]string{"answer": "You are off by one."})
	})

	reply, err := c.Ask(context.Background(), "why does this fail?", "code", "desc")
	require.NoError(t, err)
	assert.Equal(t, "You are off by one.", reply)
}

func TestDashboard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"profile": map[string]any{
				"skill_level":          "Intermediate",
				"problems_solved":      3,
				"assessment_completed": true,
			},
			"learning_path": []map[string]any{
				{"id": 1, "name": "Arrays", "slug": "arrays"},
			},
		})
	})

	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Intermediate", d.Profile.SkillLevel)
	assert.True(t, d.Profile.AssessmentCompleted)
	require.Len(t, d.LearningPath, 1)
	assert.Equal(t, "arrays", d.LearningPath[0].Slug)
}

func TestUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Dashboard(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestProblemNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Problem(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStatusErrorCarriesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	err := c.ResetProgress(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "boom", se.Body)
}

func TestNoTokenOmitsHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, Credentials{})
	require.NoError(t, c.ResetProgress(context.Background()))
	assert.Empty(t, gotAuth)
}
