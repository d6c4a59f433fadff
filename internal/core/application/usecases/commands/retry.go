package commands

import (
	"context"
	"errors"

	"tableside/internal/pkg/errs"
)

// maxAttempts bounds how many times a handler re-runs its transaction after
// a serialization or deadlock conflict reported by the storage adapter.
const maxAttempts = 3

// withRetry runs op, retrying when it fails with a transient storage error.
// Any other error aborts immediately. Context cancellation is checked between
// attempts so a caller that gave up does not trigger more work.
func withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = op(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrTransientStorage) {
			return err
		}
	}
	return err
}
