package config

import "errors"

var (
	// ErrInvalidBackend is returned for a backend other than inmemory or badger.
	ErrInvalidBackend = errors.New("config: invalid backend")

	// ErrMissingDataFile is returned when a data file path is empty.
	ErrMissingDataFile = errors.New("config: data file is required")

	// ErrInvalidLogFormat is returned for a log format other than text, json or pretty.
	ErrInvalidLogFormat = errors.New("config: invalid log format")

	// ErrInvalidAddr is returned for an empty or malformed listen address.
	ErrInvalidAddr = errors.New("config: invalid listen address")

	// ErrInvalidPoolSize is returned for a negative pool size.
	ErrInvalidPoolSize = errors.New("config: invalid pool size")

	// ErrInvalidEnv is returned when an environment variable cannot be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment variable")
)
