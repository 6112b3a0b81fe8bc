package puz

import (
	"errors"
	"fmt"
)

var (
	ErrNotAPuz             = errors.New("puz: could not find beginning of puz data")
	ErrVersionFormat       = errors.New("puz: unexpected version format")
	ErrUnknownPuzzleType   = errors.New("puz: unknown puzzle type")
	ErrUnknownSolutionType = errors.New("puz: unknown solution type")
	ErrMalformed           = errors.New("puz: malformed or truncated header")
	ErrInvalidPayload      = errors.New("puz: invalid payload")
	ErrLimitExceeded       = errors.New("puz: limit exceeded")
)

// VersionError reports version bytes that are not "<digit>.<digit><byte>".
type VersionError struct {
	Raw [4]byte
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%v: expected '0.0' and a probably-null byte, found 0x%02x%02x%02x%02x",
		ErrVersionFormat, e.Raw[0], e.Raw[1], e.Raw[2], e.Raw[3])
}

func (e *VersionError) Is(target error) bool { return target == ErrVersionFormat }

// PuzzleTypeError reports a puzzle type code outside the known table.
type PuzzleTypeError struct {
	Code uint16
}

func (e *PuzzleTypeError) Error() string {
	return fmt.Sprintf("%v: 0x%04x", ErrUnknownPuzzleType, e.Code)
}

func (e *PuzzleTypeError) Is(target error) bool { return target == ErrUnknownPuzzleType }

// SolutionTypeError reports a solution type code outside the known table.
type SolutionTypeError struct {
	Code uint16
}

func (e *SolutionTypeError) Error() string {
	return fmt.Sprintf("%v: 0x%04x", ErrUnknownSolutionType, e.Code)
}

func (e *SolutionTypeError) Is(target error) bool { return target == ErrUnknownSolutionType }

// MalformedError reports a header field that could not be read in full.
// Err is the underlying short-read condition.
type MalformedError struct {
	Field  string
	Offset int
	Err    error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: reading %s at offset %d: %v", ErrMalformed, e.Field, e.Offset, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }
