package domain

import "errors"

// Common domain errors.
var (
	ErrEmptyGroup = errors.New("group has no records")
)
