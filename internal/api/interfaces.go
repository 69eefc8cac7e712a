package api

import (
	"context"

	"github.com/bookget/bookdesk/internal/model"
)

// Gateway defines the interface for the catalog backend.
type Gateway interface {
	// Auth
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int) error

	// Books
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id int, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	RateBook(ctx context.Context, id int, rating float64) (model.Book, error)

	// Authors
	ListAuthors(ctx context.Context) ([]model.Author, error)
	SearchAuthors(ctx context.Context, query string) ([]model.Author, error)
	CreateAuthor(ctx context.Context, in model.AuthorInput) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int, in model.AuthorInput) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) (AuthorDeleteResult, error)
}

// AuthorDeleteResult reports the outcome of an author deletion, including
// titles of books removed because they lost their last author.
type AuthorDeleteResult struct {
	Message      string   `json:"message"`
	DeletedBooks []string `json:"deleted_books"`
}
