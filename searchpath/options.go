package searchpath

import boshlog "github.com/cloudfoundry/bosh-utils/logger"

// DefaultKey is the variable consulted by the OS when resolving bare command names.
const DefaultKey = "PATH"

// Config holds configuration for a Registry.
type Config struct {
	key    string
	env    Env
	logger boshlog.Logger
}

// Option defines a functional option for a Registry.
type Option func(*Config)

// WithKey selects the environment variable to edit.
func WithKey(key string) Option {
	return func(c *Config) {
		c.key = key
	}
}

// WithEnv replaces the process environment, mostly for tests.
func WithEnv(env Env) Option {
	return func(c *Config) {
		c.env = env
	}
}

// WithLogger sets the logger used for before/after traces.
func WithLogger(logger boshlog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}
