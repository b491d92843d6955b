package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	transient := errors.New("transient")
	permanent := errors.New("permanent")

	testCases := []struct {
		name      string
		results   []error
		retryable func(error) bool
		wantCalls int
		wantErr   error
	}{
		{
			name:      "success first try",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "success after transient failures",
			results:   []error{transient, transient, nil},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			results:   []error{transient, transient, transient},
			wantCalls: 3,
			wantErr:   transient,
		},
		{
			name:      "stops on non retryable error",
			results:   []error{permanent, nil},
			retryable: func(err error) bool { return errors.Is(err, transient) },
			wantCalls: 1,
			wantErr:   permanent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			cfg := utils.RetryConfig{
				MaxAttempts:  3,
				InitialDelay: time.Millisecond,
				Retryable:    tc.retryable,
			}

			err := utils.Retry(context.Background(), cfg, func() error {
				res := tc.results[calls]
				calls++
				return res
			})

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_StopsWaitingOnCancelledContext(t *testing.T) {
	transient := errors.New("transient")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	cfg := utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Hour,
	}

	start := time.Now()
	err := utils.Retry(ctx, cfg, func() error {
		calls++
		cancel()
		return transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Second)
}
