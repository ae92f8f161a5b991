package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/matthewmetros/docscrape"
)

// BackoffDelays builds an exponential backoff schedule for the given
// number of retries: 1s, 2s, 4s, ... capped at 30s per attempt.
func BackoffDelays(retries int) []time.Duration {
	const maxDelay = 30 * time.Second
	delays := make([]time.Duration, 0, retries)
	delay := time.Second
	for i := 0; i < retries; i++ {
		delays = append(delays, delay)
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return delays
}

// FetchWithRetryDelays calls fetch and retries it after each delay in
// delays when the failure is transient. Only EUNAVAILABLE errors are
// retried; client errors and invalid URLs fail immediately. The sleep
// between attempts is context-aware.
func FetchWithRetryDelays(ctx context.Context, url string, fetch func(context.Context) (string, error), logger *slog.Logger, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		if attempt > 0 {
			if logger != nil {
				logger.Debug("retrying fetch",
					"url", url,
					"attempt", attempt,
					"delay", delays[attempt-1],
					"error", lastErr,
				)
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delays[attempt-1]):
			}
		}
		html, err := fetch(ctx)
		if err == nil {
			return html, nil
		}
		lastErr = err
		if docscrape.ErrorCode(err) != docscrape.EUNAVAILABLE {
			return "", err
		}
		if ctx.Err() != nil {
			return "", err
		}
	}
	return "", lastErr
}
