package puz

import "math"

// maxLimit keeps limit+1 representable as the int64 io.LimitReader takes.
const maxLimit = math.MaxInt64 - 1

type Limits struct {
	MaxInputLen        uint64 // bytes as stored, before unwrapping
	MaxUncompressedLen uint64 // puz bytes after unwrapping
}

func defaultLimits() Limits {
	return Limits{
		MaxInputLen:        16 << 20, // 16 MiB
		MaxUncompressedLen: 16 << 20, // 16 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxInputLen == 0 {
		l.MaxInputLen = d.MaxInputLen
	}
	if l.MaxUncompressedLen == 0 {
		l.MaxUncompressedLen = d.MaxUncompressedLen
	}
	l.MaxInputLen = clampLimit(l.MaxInputLen)
	l.MaxUncompressedLen = clampLimit(l.MaxUncompressedLen)
	return l
}

func clampLimit(n uint64) uint64 {
	return min(n, maxLimit)
}
