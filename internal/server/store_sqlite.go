package server

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/playperu/trivia/internal/trivia"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListCategories(ctx context.Context) (trivia.CategoryMap, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := trivia.CategoryMap{}
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		cats[c.ID] = c.Type
	}
	return cats, rows.Err()
}

func (s *SQLiteStore) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	var c trivia.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, type FROM categories WHERE id = ?
	`, id).Scan(&c.ID, &c.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, name string) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (type) VALUES (?)
		RETURNING id
	`, name).Scan(&id)
	return id, err
}

func (s *SQLiteStore) ListQuestions(ctx context.Context, filter QuestionFilter, page Page) ([]trivia.Question, int, error) {
	where, args := filterClause(filter)

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions`+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions`+where+`
		ORDER BY id
		LIMIT ? OFFSET ?
	`, append(args, page.Size, page.offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
	}
	return questions, total, rows.Err()
}

// filterClause builds the WHERE clause for filter. Search terms match as
// literal, case-insensitive substrings of the question text. SQLite only
// folds ASCII, so both sides are folded in Go.
func filterClause(filter QuestionFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.CategoryID != 0 {
		conds = append(conds, "category = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.Term != "" {
		conds = append(conds, `search_text LIKE '%' || ? || '%' ESCAPE '\'`)
		args = append(args, escapeLike(foldCase(filter.Term)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func foldCase(s string) string { return strings.ToLower(s) }

func (s *SQLiteStore) CreateQuestion(ctx context.Context, req trivia.CreateQuestionRequest) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (question, answer, category, difficulty, search_text)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, req.Question, req.Answer, req.Category, req.Difficulty, foldCase(req.Question)).Scan(&id)
	return id, err
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) RandomQuestion(ctx context.Context, categoryID int, exclude []int) (trivia.Question, error) {
	var conds []string
	var args []any
	if categoryID != 0 {
		conds = append(conds, "category = ?")
		args = append(args, categoryID)
	}
	if len(exclude) > 0 {
		conds = append(conds, "id NOT IN (?"+strings.Repeat(", ?", len(exclude)-1)+")")
		for _, id := range exclude {
			args = append(args, id)
		}
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var q trivia.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions`+where+`
		ORDER BY RANDOM()
		LIMIT 1
	`, args...).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return q, ErrNotFound
	}
	return q, err
}

// Check lets the store serve as a health Checker.
func (s *SQLiteStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
