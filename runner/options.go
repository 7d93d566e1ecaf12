package runner

import "time"

// Config holds configuration for a Runner.
type Config struct {
	startAttempts int
	startDelay    time.Duration
}

// Option defines a functional option for a Runner.
type Option func(*Config)

// WithStartRetry sets how often Start retries a launch that failed because the
// executable was momentarily busy (ETXTBSY), and the pause between attempts.
// attempts counts the initial try and is clamped to at least 1.
func WithStartRetry(attempts int, delay time.Duration) Option {
	return func(c *Config) {
		if attempts < 1 {
			attempts = 1
		}

		c.startAttempts = attempts
		c.startDelay = delay
	}
}
