package api

// Package api implements the REST gateway to the book catalog backend. Each
// operation maps to one HTTP call; successes return parsed entities, every
// failure is normalized into a *Failure carrying the network / HTTP /
// validation taxonomy. Authenticated calls attach the session bearer token
// via a TokenSource; 401/403 surface like any other failure, with no
// automatic re-authentication or retry.
