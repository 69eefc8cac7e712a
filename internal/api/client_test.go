package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookget/bookdesk/internal/model"
)

func staticToken(token string) TokenSource {
	return func() string { return token }
}

func TestListBooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/" {
			t.Errorf("Expected path /books/, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode([]model.Book{
			{ID: 1, Title: "Solaris", ISBN: "978-0156027601", PublicationYear: 1961, Rating: 4.5},
			{ID: 2, Title: "The Dispossessed", ISBN: "978-0061054884", PublicationYear: 1974},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	books, err := client.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks() error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("Expected 2 books, got %d", len(books))
	}
	if books[0].Title != "Solaris" || books[0].Rating != 4.5 {
		t.Errorf("Unexpected first book: %+v", books[0])
	}
}

func TestSearchBooksEscapesQuery(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode([]model.Book{})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	if _, err := client.SearchBooks(context.Background(), "war & peace"); err != nil {
		t.Fatalf("SearchBooks() error: %v", err)
	}
	if gotPath != "/books/search/war%20&%20peace" {
		t.Errorf("Unexpected escaped path %s", gotPath)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Expected bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode(model.Book{ID: 5, Title: "New Book"})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("secret-token"))
	book, err := client.CreateBook(context.Background(), model.BookInput{
		Title: "New Book", ISBN: "123", PublicationYear: 2020, AuthorIDs: []int{1},
	})
	if err != nil {
		t.Fatalf("CreateBook() error: %v", err)
	}
	if book.ID != 5 {
		t.Errorf("Expected book ID 5, got %d", book.ID)
	}
}

func TestAnonymousRequestHasNoBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Expected no Authorization header, got %q", got)
		}
		json.NewEncoder(w).Encode([]model.Book{})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""))
	if _, err := client.ListBooks(context.Background()); err != nil {
		t.Fatalf("ListBooks() error: %v", err)
	}
}

func TestLoginFormEncoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token" {
			t.Errorf("Expected path /auth/token, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Expected form content type, got %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error: %v", err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "pw" {
			t.Errorf("Unexpected form values: %v", r.PostForm)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-123", "token_type": "bearer",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	token, err := client.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("Expected token tok-123, got %s", token)
	}
}

func TestHTTPFailureCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Only admin can delete books"})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	err := client.DeleteBook(context.Background(), 1)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !IsKind(err, KindHTTP) {
		t.Errorf("Expected KindHTTP, got %v", err)
	}
	if FailureReason(err) != "Only admin can delete books" {
		t.Errorf("Expected backend detail as reason, got %q", FailureReason(err))
	}
}

func TestHTTPFailureWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListAuthors(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if FailureReason(err) != "request failed with status 500" {
		t.Errorf("Expected generic reason, got %q", FailureReason(err))
	}
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := NewClient(server.URL, nil)
	_, err := client.ListBooks(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !IsKind(err, KindNetwork) {
		t.Errorf("Expected KindNetwork, got %v", err)
	}
}

func TestRateBookGuardSkipsNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(model.Book{ID: 1})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	for _, v := range []float64{0, 6, 3.5, -1} {
		_, err := client.RateBook(context.Background(), 1, v)
		if !IsKind(err, KindValidation) {
			t.Errorf("RateBook(%v) expected KindValidation, got %v", v, err)
		}
	}
	if calls != 0 {
		t.Errorf("Expected zero network calls for invalid ratings, got %d", calls)
	}

	for v := 1.0; v <= 5.0; v++ {
		if _, err := client.RateBook(context.Background(), 1, v); err != nil {
			t.Errorf("RateBook(%v) error: %v", v, err)
		}
	}
	if calls != 5 {
		t.Errorf("Expected 5 network calls for valid ratings, got %d", calls)
	}
}

func TestDeleteAuthorCascade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/authors/3" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message":       "Author and orphaned books deleted successfully",
			"deleted_books": []string{"Orphaned Title"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	result, err := client.DeleteAuthor(context.Background(), 3)
	if err != nil {
		t.Fatalf("DeleteAuthor() error: %v", err)
	}
	if len(result.DeletedBooks) != 1 || result.DeletedBooks[0] != "Orphaned Title" {
		t.Errorf("Unexpected cascade result: %+v", result)
	}
}

func TestDeleteAuthorNoCascade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"message":       "Author and orphaned books deleted successfully",
			"deleted_books": []string{},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	result, err := client.DeleteAuthor(context.Background(), 4)
	if err != nil {
		t.Fatalf("DeleteAuthor() error: %v", err)
	}
	if len(result.DeletedBooks) != 0 {
		t.Errorf("Expected no cascade deletions, got %v", result.DeletedBooks)
	}
}
