package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the catalog gateway and renders the book,
// author and user views, detail dialogs, forms, rating submission, and
// notifications. All UI strings are localized via Localization.
