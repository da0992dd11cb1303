package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/trivia/internal/trivia"
)

func handleListCategories(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := store.ListCategories(r.Context())
		if err != nil {
			internalError(w, r, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, trivia.CategoriesResponse{Success: true, Categories: categories})
	}
}

func handleCategoryQuestions(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound)
			return
		}

		category, err := store.GetCategory(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound)
			return
		}
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		questions, total, err := store.ListQuestions(r.Context(), QuestionFilter{CategoryID: category.ID}, pageParam(r))
		if err != nil {
			internalError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, trivia.QuestionList{
			Success:         true,
			Questions:       questions,
			TotalQuestions:  total,
			CurrentCategory: &category.ID,
		})
	}
}
