package searchpath

import "os"

// Env reads and writes environment variables.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnv is the environment of the running process.
type OSEnv struct{}

var _ Env = OSEnv{}

// LookupEnv delegates to os.LookupEnv.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv delegates to os.Setenv.
func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}
