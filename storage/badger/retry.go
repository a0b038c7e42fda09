package badger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	conflictAttempts  = 3
	conflictBaseDelay = 10 * time.Millisecond
)

// retryConflicts runs op again with exponential backoff while it fails with
// badger.ErrConflict. Any other error is returned at once.
func retryConflicts(ctx context.Context, logger *slog.Logger, op func() error) error {
	var lastErr error
	delay := conflictBaseDelay
	for attempt := 1; attempt <= conflictAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op()
		if lastErr == nil || !errors.Is(lastErr, badger.ErrConflict) {
			return lastErr
		}
		logger.Debug("write conflict, will retry", "attempt", attempt, "maxAttempts", conflictAttempts)

		if attempt == conflictAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return lastErr
}
