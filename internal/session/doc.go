package session

// Package session persists the authenticated user across launches and
// derives the current role from the stored username. Token and username are
// stored under the keys earlier releases used, so sessions survive upgrades.
