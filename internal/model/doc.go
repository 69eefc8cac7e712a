package model

// Package model defines domain data structures used across the app: books,
// authors, users, and ratings as returned by the catalog backend, plus the
// role and action tables that gate what each user may do. Structures mirror
// the backend JSON schemas and are designed for direct rendering in the UI.
