package fakeexec

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/ruffel/fakeexec/searchpath"
)

const defaultShell = "/bin/sh"

// Config holds configuration derived from options.
type Config struct {
	tempDir  string
	shell    string
	logger   boshlog.Logger
	registry *searchpath.Registry
}

// Option defines a functional option for New.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		shell:  defaultShell,
		logger: boshlog.NewLogger(boshlog.LevelNone),
	}
}

// WithTempDir places the script directory and the staged output files under
// dir instead of os.TempDir.
func WithTempDir(dir string) Option {
	return func(c *Config) {
		c.tempDir = dir
	}
}

// WithShell sets the absolute path of the interpreter named in the script's
// shebang line.
func WithShell(path string) Option {
	return func(c *Config) {
		c.shell = path
	}
}

// WithLogger sets the logger for traces and release diagnostics.
func WithLogger(logger boshlog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithRegistry registers mocks through reg instead of a PATH registry.
func WithRegistry(reg *searchpath.Registry) Option {
	return func(c *Config) {
		c.registry = reg
	}
}
