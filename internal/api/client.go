package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookget/bookdesk/internal/logger"
	"github.com/bookget/bookdesk/internal/model"
)

// Per-request timeout for all gateway calls.
const requestTimeout = 15 * time.Second

// TokenSource supplies the current bearer token; it returns the empty string
// when no session exists.
type TokenSource func() string

// Client talks to the catalog backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

var _ Gateway = (*Client)(nil)

// NewClient creates a gateway client for the given base URL. token may be
// nil for a client that only performs anonymous reads.
func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		token:   token,
	}
}

// Login exchanges credentials for a bearer token via the form-encoded token
// endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", networkFailure(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	in := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	return c.do(ctx, http.MethodPost, "/auth/register", in, nil)
}

// ListUsers returns all non-admin accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/auth/users/%d", id), nil, nil)
}

// ListBooks returns the full book collection.
func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := c.do(ctx, http.MethodGet, "/books/", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SearchBooks returns books matching the query by title, ISBN, or year.
func (c *Client) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	var books []model.Book
	path := "/books/search/" + url.PathEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook adds a book. Admin only.
func (c *Client) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodPost, "/books/", in, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook replaces a book's fields and author set. Admin only.
func (c *Client) UpdateBook(ctx context.Context, id int, in model.BookInput) (model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), in, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// DeleteBook removes a book. Admin only.
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}

// RateBook submits the current user's rating for a book and returns the book
// with its server-recomputed aggregate. The rating is validated client-side;
// an invalid value fails without any network call.
func (c *Client) RateBook(ctx context.Context, id int, rating float64) (model.Book, error) {
	if err := model.ValidateRating(rating); err != nil {
		return model.Book{}, validationFailure(err)
	}
	in := map[string]float64{"rating": rating}
	var book model.Book
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/books/%d/rate", id), in, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// ListAuthors returns the full author collection.
func (c *Client) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := c.do(ctx, http.MethodGet, "/authors/", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// SearchAuthors returns authors matching the query by name.
func (c *Client) SearchAuthors(ctx context.Context, query string) ([]model.Author, error) {
	var authors []model.Author
	path := "/authors/search/" + url.PathEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// CreateAuthor adds an author. Admin only.
func (c *Client) CreateAuthor(ctx context.Context, in model.AuthorInput) (model.Author, error) {
	var author model.Author
	if err := c.do(ctx, http.MethodPost, "/authors/", in, &author); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

// UpdateAuthor replaces an author's fields. Admin only.
func (c *Client) UpdateAuthor(ctx context.Context, id int, in model.AuthorInput) (model.Author, error) {
	var author model.Author
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/authors/%d", id), in, &author); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

// DeleteAuthor removes an author. Books left without any author are cascade
// deleted by the backend and reported in the result. Admin only.
func (c *Client) DeleteAuthor(ctx context.Context, id int) (AuthorDeleteResult, error) {
	var result AuthorDeleteResult
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/authors/%d", id), nil, &result); err != nil {
		return AuthorDeleteResult{}, err
	}
	return result, nil
}

// do builds a JSON request for path and decodes the response into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return validationFailure(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return networkFailure(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes a prepared request, attaching the bearer token when one is
// available, and normalizes the outcome.
func (c *Client) send(req *http.Request, out any) error {
	log := logger.Get()

	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).
			Msg("request transport failed")
		return networkFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkFailure(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		failure := httpFailure(resp.StatusCode, data)
		log.Debug().Int("status", resp.StatusCode).Str("method", req.Method).
			Str("url", req.URL.String()).Str("reason", failure.Reason).
			Msg("request rejected")
		return failure
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Failure{Kind: KindHTTP, Status: resp.StatusCode,
			Reason: "malformed response body", Err: err}
	}
	return nil
}
