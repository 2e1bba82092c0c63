package camunda

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"pitchdeck/internal/common/config"
	"pitchdeck/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(maxRetries int) *Client {
	return &Client{config: &ClientConfig{
		ConnectionTimeout: time.Second,
		RetryConfig: &RetryConfig{
			MaxRetries: maxRetries,
			BaseDelay:  time.Millisecond,
			MaxDelay:   4 * time.Millisecond,
		},
	}}
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name          string
		failures      []error
		expectedCalls int
		expectedError bool
		validateError func(t *testing.T, err error)
	}{
		{
			name:          "succeeds first time",
			expectedCalls: 1,
		},
		{
			name:          "recovers from transient failures",
			failures:      []error{stderrors.New("rpc error: Unavailable"), stderrors.New("connection refused")},
			expectedCalls: 3,
		},
		{
			name:          "permanent failure stops immediately",
			failures:      []error{stderrors.New("permission denied")},
			expectedCalls: 1,
			expectedError: true,
			validateError: func(t *testing.T, err error) {
				_, ok := errors.AsStandardError(err)
				assert.False(t, ok)
				assert.Contains(t, err.Error(), "permission denied")
			},
		},
		{
			name: "exhausted budget is broker unavailable",
			failures: []error{
				stderrors.New("deadline exceeded"),
				stderrors.New("deadline exceeded"),
				stderrors.New("deadline exceeded"),
			},
			expectedCalls: 3,
			expectedError: true,
			validateError: func(t *testing.T, err error) {
				assert.Equal(t, errors.ErrCodeBrokerUnavailable, errors.CodeOf(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestClient(2)
			calls := 0
			err := c.withRetry(context.Background(), "topology", func(context.Context) error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectedError {
				require.Error(t, err)
				tt.validateError(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWithRetry_Cancelled(t *testing.T) {
	c := createTestClient(5)
	c.config.RetryConfig.BaseDelay = time.Hour
	c.config.RetryConfig.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	err := c.withRetry(ctx, "topology", func(context.Context) error {
		cancel()
		return stderrors.New("connection reset by peer")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	cfg := &RetryConfig{BaseDelay: time.Second, MaxDelay: 10 * time.Second}
	assert.Equal(t, time.Second, backoff(cfg, 0))
	assert.Equal(t, 4*time.Second, backoff(cfg, 2))
	assert.Equal(t, 10*time.Second, backoff(cfg, 5))
}

func TestIsRetryableZeebeError(t *testing.T) {
	assert.True(t, isRetryableZeebeError(stderrors.New("rpc error: code = Unavailable")))
	assert.True(t, isRetryableZeebeError(stderrors.New("i/o timeout")))
	assert.False(t, isRetryableZeebeError(stderrors.New("NOT_FOUND: no such job")))
}

func TestClientConfigFrom(t *testing.T) {
	cfg := ClientConfigFrom(config.CamundaConfig{BrokerAddress: "zeebe:26500", Timeout: 2500})
	assert.Equal(t, "zeebe:26500", cfg.GatewayAddress)
	assert.Equal(t, 2500*time.Millisecond, cfg.ConnectionTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Same(t, DefaultRetryConfig, cfg.RetryConfig)
}
