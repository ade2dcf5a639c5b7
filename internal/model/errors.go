package model

import "errors"

var (
	// ErrMalformedPeriod is returned when a header carries no month name or no year.
	ErrMalformedPeriod = errors.New("malformed period")
	// ErrEmptyHistory is returned by min/max lookups on a product with no observations.
	ErrEmptyHistory = errors.New("empty history")
	// ErrNoCurrentFile is returned when no period file is found walking back from today.
	ErrNoCurrentFile = errors.New("no current period file")
)
