package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FailureKind classifies gateway failures.
type FailureKind int

const (
	// KindNetwork is a transport-level failure: the request never produced
	// an HTTP response.
	KindNetwork FailureKind = iota

	// KindHTTP is a non-2xx response, optionally carrying the backend's
	// structured reason.
	KindHTTP

	// KindValidation is a client-side rejection; no request was sent.
	KindValidation
)

// String returns the kind's identifier for logs.
func (k FailureKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Failure is the single error type returned by the gateway. Callers convert
// it into a transient notification and leave the current view untouched.
type Failure struct {
	Kind   FailureKind
	Status int    // HTTP status for KindHTTP, zero otherwise
	Reason string // human-readable reason, backend "detail" when present
	Err    error  // underlying error, may be nil
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s failure: %s: %v", f.Kind, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s failure: %s", f.Kind, f.Reason)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (f *Failure) Unwrap() error {
	return f.Err
}

// FailureReason extracts a user-presentable reason from any error.
func FailureReason(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return err.Error()
}

// IsKind reports whether err is a gateway failure of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

func networkFailure(err error) *Failure {
	return &Failure{Kind: KindNetwork, Reason: "network error", Err: err}
}

func validationFailure(err error) *Failure {
	return &Failure{Kind: KindValidation, Reason: err.Error(), Err: err}
}

// errorBody is the FastAPI-style error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

func httpFailure(status int, body []byte) *Failure {
	reason := fmt.Sprintf("request failed with status %d", status)
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		reason = eb.Detail
	}
	return &Failure{Kind: KindHTTP, Status: status, Reason: reason}
}
