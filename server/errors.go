package server

import "errors"

var (
	// ErrServiceRequired is returned when no query service is given to NewRouter.
	ErrServiceRequired = errors.New("query service is required")
)
