package library

import "github.com/pkg/errors"

// Callers match these with errors.Is; operations wrap them with detail.
var (
	// ErrNotFound covers an index out of range, an unmatched title and an
	// item that is not in the catalog.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition covers an ineligible checkout and the return of an
	// item this user has not borrowed.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrBorrowLimit = errors.Wrap(ErrInvalidTransition, "borrow limit reached")
)
