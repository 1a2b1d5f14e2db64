package storage

import "fmt"

const (
	// DefaultMaxRetries is the number of attempts for a write operation.
	DefaultMaxRetries = 4

	// DefaultRetryDelay is the milliseconds waited between write attempts.
	DefaultRetryDelay = 2000
)

// Config holds all configuration for the Storage.
//
// Config is geared towards "bucket" style storage, where you have a
// specific root (the Bucket).
type Config struct {
	Bucket     string
	Root       string
	MaxRetries int
	RetryDelay int // Milliseconds between retries
}

// NewConfig returns a new Config with AWS style options.
func NewConfig(bucket, root string, maxRetries, retryDelay int) Config {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}

	return Config{
		Bucket:     bucket,
		Root:       root,
		MaxRetries: maxRetries,
		RetryDelay: retryDelay,
	}
}

func (c Config) String() string {
	root := ""
	if len(c.Root) > 0 {
		root = fmt.Sprintf("Root:%s", c.Root)
	}

	return fmt.Sprintf("{Bucket:%v %s MaxRetries:%v RetryDelay:%v}",
		c.Bucket,
		root,
		c.MaxRetries,
		c.RetryDelay)
}
