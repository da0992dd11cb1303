package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/playperu/trivia/internal/trivia"
)

func handleListQuestions(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, total, err := store.ListQuestions(r.Context(), QuestionFilter{}, pageParam(r))
		if err != nil {
			internalError(w, r, logger, err)
			return
		}
		if len(questions) == 0 {
			writeError(w, http.StatusNotFound)
			return
		}

		categories, err := store.ListCategories(r.Context())
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, trivia.QuestionPage{
			Success:         true,
			Questions:       questions,
			TotalQuestions:  total,
			Categories:      categories,
			CurrentCategory: nil,
		})
	}
}

func handleCreateQuestion(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req trivia.CreateQuestionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest)
			return
		}

		req.Question = strings.TrimSpace(req.Question)
		req.Answer = strings.TrimSpace(req.Answer)
		if req.Question == "" || req.Answer == "" || req.Category == 0 ||
			req.Difficulty < 1 || req.Difficulty > 5 {
			writeError(w, http.StatusUnprocessableEntity)
			return
		}

		if _, err := store.GetCategory(r.Context(), req.Category); errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusUnprocessableEntity)
			return
		} else if err != nil {
			internalError(w, r, logger, err)
			return
		}

		id, err := store.CreateQuestion(r.Context(), req)
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusCreated, trivia.CreateQuestionResponse{Success: true, Created: id})
	}
}

func handleDeleteQuestion(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound)
			return
		}

		err := store.DeleteQuestion(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound)
			return
		}
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, trivia.DeleteQuestionResponse{Success: true, Deleted: id})
	}
}

func handleSearchQuestions(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req trivia.SearchRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest)
			return
		}
		if req.SearchTerm == "" {
			writeError(w, http.StatusUnprocessableEntity)
			return
		}

		questions, total, err := store.ListQuestions(r.Context(), QuestionFilter{Term: req.SearchTerm}, pageParam(r))
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, trivia.QuestionList{
			Success:         true,
			Questions:       questions,
			TotalQuestions:  total,
			CurrentCategory: nil,
		})
	}
}

func internalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError)
}
