// Package client talks to the trivia HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/playperu/trivia/internal/trivia"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("trivia api: status %d", e.Status)
	}
	return fmt.Sprintf("trivia api: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	base *url.URL
	http *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its cookie jar, if
// any, is kept as is.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New returns a client for the API rooted at baseURL. Requests carry
// cookies through a jar, so credentials set by the server are sent back.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Questions fetches one page of all questions.
func (c *Client) Questions(ctx context.Context, page int) (trivia.QuestionPage, error) {
	var out trivia.QuestionPage
	q := url.Values{"page": {strconv.Itoa(page)}}
	err := c.do(ctx, http.MethodGet, "/questions", q, nil, &out)
	return out, err
}

// CategoryQuestions fetches the questions of one category.
func (c *Client) CategoryQuestions(ctx context.Context, categoryID int) (trivia.QuestionList, error) {
	var out trivia.QuestionList
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d/questions", categoryID), nil, nil, &out)
	return out, err
}

// Search posts term verbatim as {"searchTerm": term}.
func (c *Client) Search(ctx context.Context, term string) (trivia.QuestionList, error) {
	var out trivia.QuestionList
	err := c.do(ctx, http.MethodPost, "/questions/search", nil, trivia.SearchRequest{SearchTerm: term}, &out)
	return out, err
}

func (c *Client) DeleteQuestion(ctx context.Context, id int) error {
	var out trivia.DeleteQuestionResponse
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil, nil, &out)
}

func (c *Client) Categories(ctx context.Context) (trivia.CategoryMap, error) {
	var out trivia.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// CreateQuestion returns the id of the new question.
func (c *Client) CreateQuestion(ctx context.Context, req trivia.CreateQuestionRequest) (int, error) {
	var out trivia.CreateQuestionResponse
	if err := c.do(ctx, http.MethodPost, "/questions", nil, req, &out); err != nil {
		return 0, err
	}
	return out.Created, nil
}

// NextQuizQuestion returns a random question outside previous, or nil
// once the category is exhausted. categoryID 0 draws from every category.
func (c *Client) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*trivia.Question, error) {
	if previous == nil {
		previous = []int{}
	}
	req := trivia.QuizRequest{
		PreviousQuestions: previous,
		QuizCategory:      &trivia.Category{ID: categoryID},
	}
	var out trivia.QuizResponse
	if err := c.do(ctx, http.MethodPost, "/quizzes", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Question, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = query.Encode()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env trivia.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&env) == nil {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
