package goqc

// Config holds the tunable verification parameters.
type Config struct {
	// Number of candidates generated per verification
	PoolSize int
	// Bound on the magnitude of generated values. Numeric ranges, text
	// lengths and composite sizes all scale with it
	SizeBound int
}

// The default verification configuration.
func DefaultConfig() Config {
	return Config{
		PoolSize:  100,
		SizeBound: 100,
	}
}
