package puz

type readConfig struct {
	limits      Limits
	compression Compression
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithCompression sets the wrapper Decode expects. CompAuto (the default)
// detects it from the input signature; CompNone disables unwrapping.
func WithCompression(comp Compression) ReadOption {
	return func(c *readConfig) { c.compression = comp }
}
