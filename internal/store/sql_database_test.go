package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_withTimeout(t *testing.T) {
	t.Run("no timeout configured", func(t *testing.T) {
		db := &DB{}
		ctx, cancel := db.withTimeout(context.Background())
		defer cancel()

		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline)
	})

	t.Run("bounded", func(t *testing.T) {
		db := &DB{queryTimeout: time.Second}
		ctx, cancel := db.withTimeout(context.Background())
		defer cancel()

		deadline, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
	})
}

func TestDB_retryRead(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   bool
	}{
		{name: "success first time", errs: []error{nil}, wantCalls: 1},
		{name: "transient then success", errs: []error{pgError(pgerrcode.DeadlockDetected), nil}, wantCalls: 2},
		{name: "permanent error", errs: []error{pgError(pgerrcode.UniqueViolation)}, wantCalls: 1, wantErr: true},
		{name: "plain error", errs: []error{errors.New("boom")}, wantCalls: 1, wantErr: true},
		{
			name: "transient until exhausted",
			errs: []error{
				pgError(pgerrcode.CannotConnectNow),
				pgError(pgerrcode.CannotConnectNow),
				pgError(pgerrcode.CannotConnectNow),
				pgError(pgerrcode.CannotConnectNow),
			},
			wantCalls: readRetries + 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{errorClassificator: NewPostgresErrorClassifier()}

			calls := 0
			err := db.retryRead(testContext(), func(ctx context.Context) error {
				e := tt.errs[calls]
				calls++
				return e
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				var pgErr *pgconn.PgError
				assert.Error(t, err)
				if errors.As(tt.errs[0], &pgErr) {
					assert.ErrorAs(t, err, &pgErr)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

type classifierFunc func(err error) ErrorClassification

func (f classifierFunc) Classify(err error) ErrorClassification { return f(err) }

func TestDB_retryRead_consultsClassifier(t *testing.T) {
	flaky := errors.New("flaky")

	t.Run("every failure is classified", func(t *testing.T) {
		var seen []error
		db := &DB{errorClassificator: classifierFunc(func(err error) ErrorClassification {
			seen = append(seen, err)
			return Retryable
		})}

		calls := 0
		err := db.retryRead(testContext(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return flaky
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []error{flaky, flaky}, seen)
	})

	t.Run("success skips classification", func(t *testing.T) {
		db := &DB{errorClassificator: classifierFunc(func(error) ErrorClassification {
			t.Fatal("classifier called for a successful read")
			return NonRetryable
		})}

		assert.NoError(t, db.retryRead(testContext(), func(context.Context) error { return nil }))
	})

	t.Run("no classifier never retries", func(t *testing.T) {
		db := &DB{}

		calls := 0
		err := db.retryRead(testContext(), func(context.Context) error {
			calls++
			return flaky
		})

		assert.ErrorIs(t, err, flaky)
		assert.Equal(t, 1, calls)
	})
}

func TestTimeoutError(t *testing.T) {
	assert.NoError(t, timeoutError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, timeoutError(plain))

	err := timeoutError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrStoreTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.NotErrorIs(t, timeoutError(context.Canceled), ErrStoreTimeout)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a pg error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "wrapped retryable", err: errors.Join(ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
