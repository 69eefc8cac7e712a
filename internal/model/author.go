package model

// AuthorSummary is the short author form embedded in book payloads.
type AuthorSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Biography string `json:"biography,omitempty"`
}

// Author represents a catalog author with the books they contributed to.
// Books are carried for display only; the backend owns the relation.
type Author struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Biography string        `json:"biography"`
	Books     []BookSummary `json:"books"`
}

// AuthorInput is the payload for creating or updating an author.
type AuthorInput struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
}
