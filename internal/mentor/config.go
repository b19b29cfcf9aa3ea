package mentor

import "time"

// Config holds mentor service tuning.
type Config struct {
	// PersistTimeout bounds a single durable write of the ledger.
	// Default: 5s.
	PersistTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{PersistTimeout: 5 * time.Second}
}
