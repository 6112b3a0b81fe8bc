package logger

// Standard field keys, so the same attribute is spelled the same way everywhere.
const (
	KeyPath        = "path"
	KeyCompression = "compression"
	KeyOffset      = "offset"
	KeySize        = "size"
	KeyError       = "error"
	KeyVersion     = "version"
)
