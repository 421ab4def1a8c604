package sip

import "errors"

var (
	// ErrEmptyPriceHistory means the fetched price series had no entries,
	// so there is nothing to simulate against.
	ErrEmptyPriceHistory = errors.New("price history is empty")

	// ErrUnsortedPriceHistory means the price series violated the fetch
	// contract: dates must be strictly ascending with no duplicates.
	ErrUnsortedPriceHistory = errors.New("price history dates must be strictly ascending")

	// ErrInvalidSchedule wraps schedule validation failures (bad day of
	// month, non-positive amount). Surfaced before any simulation work.
	ErrInvalidSchedule = errors.New("invalid schedule definition")
)
