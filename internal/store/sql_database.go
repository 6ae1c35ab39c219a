package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	readRetryBase = 50 * time.Millisecond
	readRetries   = 3
)

// DB wraps *sql.DB with the per-call timeout and the transient-error
// classification used by the repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	queryTimeout       time.Duration
}

// Migrate applies all embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withTimeout derives the context for a single store call.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// retryRead runs a read-only call, repeating it with exponential backoff
// while the classifier reports the failure as transient.
func (db *DB) retryRead(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(readRetries, retry.NewExponential(readRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.retryRead").Msg("transient store error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// timeoutError maps an expired deadline to [ErrStoreTimeout] and returns any
// other error unchanged.
func timeoutError(err error) error {
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrStoreTimeout, err)
	}
	return err
}
