package badger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
)

func TestRetryConflicts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success first time", func(t *testing.T) {
		calls := 0
		err := retryConflicts(context.Background(), logger, func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("conflict then success", func(t *testing.T) {
		calls := 0
		err := retryConflicts(context.Background(), logger, func() error {
			calls++
			if calls < 2 {
				return fmt.Errorf("commit: %w", badger.ErrConflict)
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("conflict every time", func(t *testing.T) {
		calls := 0
		err := retryConflicts(context.Background(), logger, func() error {
			calls++
			return badger.ErrConflict
		})
		assert.ErrorIs(t, err, badger.ErrConflict)
		assert.Equal(t, conflictAttempts, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := retryConflicts(context.Background(), logger, func() error {
			calls++
			return boom
		})
		assert.Equal(t, boom, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		err := retryConflicts(ctx, logger, func() error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})
}
