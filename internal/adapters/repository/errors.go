package repository

import "errors"

// Sentinel kinds for report store errors.
var (
	ErrChildNotFound = errors.New("child not found")
)
