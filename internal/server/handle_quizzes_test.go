package server

import (
	"net/http"
	"testing"

	"github.com/playperu/trivia/internal/trivia"
)

func TestPlayQuizAvoidsPreviousQuestions(t *testing.T) {
	r := newTestRouter(t)

	// Science holds questions 1, 2 and 3.
	seen := []int{}
	for range 3 {
		rec := doJSON(t, r, http.MethodPost, "/quizzes", trivia.QuizRequest{
			PreviousQuestions: seen,
			QuizCategory:      &trivia.Category{ID: 1, Type: "Science"},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decode[trivia.QuizResponse](t, rec)
		if body.Question == nil {
			t.Fatalf("got no question after %v", seen)
		}
		if body.Question.Category != 1 {
			t.Errorf("question %d from category %d, want 1", body.Question.ID, body.Question.Category)
		}
		for _, id := range seen {
			if id == body.Question.ID {
				t.Fatalf("question %d repeated", id)
			}
		}
		seen = append(seen, body.Question.ID)
	}

	rec := doJSON(t, r, http.MethodPost, "/quizzes", trivia.QuizRequest{
		PreviousQuestions: seen,
		QuizCategory:      &trivia.Category{ID: 1},
	})
	body := decode[trivia.QuizResponse](t, rec)
	if !body.Success || body.Question != nil {
		t.Errorf("exhausted category: got %+v, want null question", body)
	}
}

func TestPlayQuizAllCategories(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/quizzes", trivia.QuizRequest{
		PreviousQuestions: []int{},
		QuizCategory:      &trivia.Category{ID: 0, Type: "click"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decode[trivia.QuizResponse](t, rec); body.Question == nil {
		t.Error("expected a question from any category")
	}
}

func TestPlayQuizMissingFields(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body any
	}{
		{"no category", map[string]any{"previous_questions": []int{}}},
		{"no previous", map[string]any{"quiz_category": map[string]any{"id": 1}}},
		{"empty", map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/quizzes", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
		})
	}
}
