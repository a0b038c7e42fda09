package ingestion

import "errors"

var (
	// ErrPoolSubmit is returned when decode work cannot be handed to the worker pool.
	ErrPoolSubmit = errors.New("submitting decode work")
)
