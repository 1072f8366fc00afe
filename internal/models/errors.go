package models

import "errors"

var (
	// ErrInvalidInput reports empty or over-long text passed to
	// classification. No turn is recorded when it is returned.
	ErrInvalidInput = errors.New("invalid input text")

	// ErrScoringUnavailable reports a failure of the underlying
	// sentiment scorer, as opposed to bad caller input.
	ErrScoringUnavailable = errors.New("sentiment scoring unavailable")
)
