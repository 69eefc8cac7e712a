package model

import "strings"

// Maximum length of a book description shown on a summary card.
const CardDescriptionLimit = 200

// Book represents a catalog book with its authors and per-user ratings.
// Rating is the server-computed mean of UserRatings; the client never
// recalculates it.
type Book struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	ISBN            string          `json:"isbn"`
	PublicationYear int             `json:"publication_year"`
	Description     string          `json:"description"`
	Rating          float64         `json:"rating"`
	Authors         []AuthorSummary `json:"authors"`
	UserRatings     []UserRating    `json:"user_ratings"`
}

// BookSummary is the short book form embedded in author details.
type BookSummary struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	Description     string  `json:"description,omitempty"`
	Rating          float64 `json:"rating"`
}

// BookInput is the payload for creating or updating a book.
type BookInput struct {
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	Description     string `json:"description"`
	AuthorIDs       []int  `json:"author_ids"`
}

// UserRating is a single user's rating of a book.
type UserRating struct {
	ID     int     `json:"id"`
	UserID int     `json:"user_id"`
	BookID int     `json:"book_id"`
	Rating float64 `json:"rating"`
}

// UserRatingFor returns the rating the given user gave this book, if any.
func (b *Book) UserRatingFor(userID int) (float64, bool) {
	for _, r := range b.UserRatings {
		if r.UserID == userID {
			return r.Rating, true
		}
	}
	return 0, false
}

// AuthorNames returns the book's author names joined with ", ".
func (b *Book) AuthorNames() string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// TruncateDescription shortens a description for card display, appending an
// ellipsis when the text was cut. The limit counts characters, not bytes, so
// multi-byte text is never cut mid-rune.
func TruncateDescription(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
