// internal/analytics/retry.go
package analytics

import (
	"context"
	"time"
)

// retryWithBackoff runs fn up to attempts times with exponential backoff.
// Retry lives only at this persistence boundary; the analysis engines never
// block or retry internally.
func retryWithBackoff(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
