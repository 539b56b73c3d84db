package notion

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failures a page fetch can end in.
type ErrorKind int

const (
	KindMissingCredential ErrorKind = iota + 1
	KindConnectionFailed
	KindUnauthorized
	KindNotFound
	KindServerError
	KindInvalidResponse
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "MissingCredential"
	case KindConnectionFailed:
		return "ConnectionFailed"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	case KindServerError:
		return "ServerError"
	case KindInvalidResponse:
		return "InvalidResponse"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is, one per kind.
var (
	// ErrMissingCredential indicates no API key was supplied
	ErrMissingCredential = &APIError{Kind: KindMissingCredential}
	// ErrConnectionFailed indicates the request never produced a response
	ErrConnectionFailed = &APIError{Kind: KindConnectionFailed}
	// ErrUnauthorized indicates a 401 or 403 response
	ErrUnauthorized = &APIError{Kind: KindUnauthorized}
	// ErrNotFound indicates a 404 response
	ErrNotFound = &APIError{Kind: KindNotFound}
	// ErrServerError indicates a 5xx response
	ErrServerError = &APIError{Kind: KindServerError}
	// ErrInvalidResponse covers unreadable 2xx bodies and unlisted statuses
	ErrInvalidResponse = &APIError{Kind: KindInvalidResponse}
)

// APIError represents a failed page fetch.
//
// StatusCode is zero when no response was received. Err holds the underlying
// transport or read error, if any.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = defaultMessage(e.Kind)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: HTTP %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *APIError of the same kind, so the
// sentinels above match any error of their kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized
}

// KindOf returns the kind of the first *APIError in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// IsNotFound reports whether err is a NotFound failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err is an Unauthorized failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func defaultMessage(k ErrorKind) string {
	switch k {
	case KindMissingCredential:
		return "NOTION_API_KEY is not set"
	case KindConnectionFailed:
		return "failed to send request to Notion"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindServerError:
		return "server error"
	case KindInvalidResponse:
		return "request failed"
	default:
		return "unknown error"
	}
}
