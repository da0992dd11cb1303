package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/trivia/internal/trivia"
)

func handlePlayQuiz(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req trivia.QuizRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusUnprocessableEntity)
			return
		}
		if req.QuizCategory == nil || req.PreviousQuestions == nil {
			writeError(w, http.StatusUnprocessableEntity)
			return
		}

		q, err := store.RandomQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusOK, trivia.QuizResponse{Success: true, Question: nil})
			return
		}
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, trivia.QuizResponse{Success: true, Question: &q})
	}
}
