package search

// Package search coalesces keystrokes into debounced search dispatches and
// tags each dispatch with a sequence number so late responses for an older
// query can be discarded.
