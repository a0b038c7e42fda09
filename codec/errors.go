package codec

import "errors"

var (
	// ErrMalformedRecord indicates a source record could not be decoded.
	// Every decode failure wraps it.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingField indicates a required field is absent or null.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidCurrency indicates a balance that is not a currency amount.
	ErrInvalidCurrency = errors.New("invalid currency amount")

	// ErrInvalidTimestamp indicates a timestamp in none of the accepted layouts.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrNilRecord is returned when encoding a nil record.
	ErrNilRecord = errors.New("record is nil")
)
