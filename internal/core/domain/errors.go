package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Bad or missing
// content data is never an error: the engine treats it as absent and
// returns empty results instead.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates programmer-level misuse, such as a
	// negative result limit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotIndexed indicates the search engine has not built its
	// indexes yet. Search itself fails soft; this error is for
	// operations that require a completed build, such as stats.
	ErrNotIndexed = errors.New("content not indexed")

	// ErrSourceUnavailable indicates no content source is configured.
	ErrSourceUnavailable = errors.New("content source unavailable")
)
