// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pitchdeck/internal/common/config"
	"pitchdeck/internal/common/errors"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Client wraps the Zeebe gRPC client with a connection check and retry.
type Client struct {
	client zbc.Client
	config *ClientConfig
}

// ClientConfig holds configuration for the Camunda/Zeebe client.
type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RequestTimeout         time.Duration
	RetryConfig            *RetryConfig
}

// RetryConfig defines retry behavior for transient failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// ClientConfigFrom builds a ClientConfig from the camunda config section.
func ClientConfigFrom(cfg config.CamundaConfig) *ClientConfig {
	connTimeout := config.GetDuration(cfg.Timeout)
	if connTimeout <= 0 {
		connTimeout = 10 * time.Second
	}
	reqTimeout := config.GetDuration(cfg.RequestTimeout)
	if reqTimeout <= 0 {
		reqTimeout = 30 * time.Second
	}
	return &ClientConfig{
		GatewayAddress:         cfg.BrokerAddress,
		UsePlaintextConnection: true,
		ConnectionTimeout:      connTimeout,
		RequestTimeout:         reqTimeout,
		RetryConfig:            DefaultRetryConfig,
	}
}

// NewClient dials the gateway and checks the topology, retrying transient
// failures with exponential backoff.
func NewClient(ctx context.Context, cfg *ClientConfig) (*Client, error) {
	if cfg.RetryConfig == nil {
		cfg.RetryConfig = DefaultRetryConfig
	}

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.GatewayAddress,
		UsePlaintextConnection: cfg.UsePlaintextConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Zeebe client: %w", err)
	}

	c := &Client{client: zeebeClient, config: cfg}
	if err := c.withRetry(ctx, "topology", c.HealthCheck); err != nil {
		zeebeClient.Close()
		return nil, err
	}
	return c, nil
}

// GetClient returns the raw Zeebe client for opening job workers.
func (c *Client) GetClient() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

// HealthCheck asks the broker for its topology.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

// withRetry runs op until it succeeds, fails with a non-transient error, or
// the retry budget runs out. Exhausted transient failures come back as
// BROKER_UNAVAILABLE.
func (c *Client) withRetry(ctx context.Context, operation string, op func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= c.config.RetryConfig.MaxRetries; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryableZeebeError(err) {
			return fmt.Errorf("zeebe %s: %w", operation, err)
		}
		if attempt == c.config.RetryConfig.MaxRetries {
			break
		}

		select {
		case <-time.After(backoff(c.config.RetryConfig, attempt)):
		case <-ctx.Done():
			return fmt.Errorf("zeebe %s cancelled after %d attempts: %w", operation, attempt+1, ctx.Err())
		}
	}
	return errors.NewBrokerUnavailableError(operation, lastErr)
}

func backoff(cfg *RetryConfig, attempt int) time.Duration {
	delay := cfg.BaseDelay * time.Duration(1<<attempt)
	if delay > cfg.MaxDelay || delay <= 0 {
		delay = cfg.MaxDelay
	}
	return delay
}

var retryablePhrases = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"deadline exceeded",
	"unavailable",
	"unreachable",
	"broken pipe",
}

func isRetryableZeebeError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range retryablePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
