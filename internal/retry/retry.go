package retry

import (
	"time"

	"go.uber.org/zap"
)

// Config defines retry behavior. The defaults absorb transient 5xx/timeout
// noise from a rate-limited remote without masking persistent faults.
type Config struct {
	Attempts  int
	Delay     time.Duration
	Permanent func(error) bool // errors that must not be retried
}

// DefaultConfig matches the remote's observed flakiness: two attempts, five
// seconds apart.
func DefaultConfig() Config {
	return Config{
		Attempts: 2,
		Delay:    5 * time.Second,
	}
}

// Do executes fn up to cfg.Attempts times with a fixed delay between
// attempts. The final error is returned exactly as fn produced it, so
// callers can still classify it.
func Do(logger *zap.Logger, operation string, cfg Config, fn func() error) error {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				logger.Info("operation succeeded after retry",
					zap.String("operation", operation),
					zap.Int("attempts", attempt))
			}
			return nil
		}

		if cfg.Permanent != nil && cfg.Permanent(lastErr) {
			return lastErr
		}
		if attempt == cfg.Attempts {
			break
		}

		logger.Warn("operation failed, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.Attempts),
			zap.Duration("retry_in", cfg.Delay),
			zap.Error(lastErr))
		time.Sleep(cfg.Delay)
	}

	return lastErr
}
