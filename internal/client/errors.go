package client

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath = errors.New("unknown catalog resource")
	ErrInvalidPage = errors.New("page must not be negative")

	ErrComicsRetrieval = errors.New("an error occurred while trying to read comics")
	ErrCharacterSearch = errors.New("an error occurred while trying to search characters")
)

// TransportError reports a failed request or a non-2xx response
type TransportError struct {
	StatusCode int    // Zero when no response was received
	Status     string // Status text, e.g. "404 Not Found"
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch data: %v", e.Err)
	}
	return fmt.Sprintf("failed to fetch data: %s", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FormatError reports a successful response without a usable data envelope
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected API response format: %v", e.Err)
	}
	return "unexpected API response format"
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
