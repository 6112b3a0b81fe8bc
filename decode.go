package puz

import (
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// ParseHeader decodes the fixed header of the puz data contained in b.
//
// The parsing process:
//  1. Locates the start offset with FindStart
//  2. Copies any bytes before the start into Garbage.Preamble
//  3. Reads the header fields in file order, validating the version,
//     puzzle type and solution type as they are read
//
// The returned body is the remainder of b after the header. It aliases b.
//
// ParseHeader returns ErrNotAPuz if the magic is not found, a *MalformedError
// (ErrMalformed) if b ends inside the header, and a *VersionError,
// *PuzzleTypeError or *SolutionTypeError for unrecognized values.
func ParseHeader(b []byte) (*Header, []byte, error) {
	start, err := FindStart(b)
	if err != nil {
		return nil, nil, err
	}

	h := &Header{Offset: start}
	if start > 0 {
		h.Garbage.Preamble = append([]byte(nil), b[:start]...)
	}

	c := &cursor{buf: b, off: start}

	checksum, err := c.u16("checksum")
	if err != nil {
		return nil, nil, err
	}
	h.Checksum = Checksum(checksum)

	if err := c.skip("magic", magicLen); err != nil {
		return nil, nil, err
	}

	cib, err := c.u16("board checksum")
	if err != nil {
		return nil, nil, err
	}
	h.BoardChecksum = Checksum(cib)

	if err := c.fill("masked checksums", h.MaskedChecksums[:]); err != nil {
		return nil, nil, err
	}

	var rawVersion [4]byte
	if err := c.fill("version", rawVersion[:]); err != nil {
		return nil, nil, err
	}
	if h.Version, err = ParseVersion(rawVersion); err != nil {
		return nil, nil, err
	}

	if err := c.fill("unknown header data 1", h.Garbage.Unknown1[:]); err != nil {
		return nil, nil, err
	}

	scrambled, err := c.u16("scrambled checksum")
	if err != nil {
		return nil, nil, err
	}
	if scrambled != 0 {
		cs := Checksum(scrambled)
		h.ScrambledChecksum = &cs
	}

	if err := c.fill("unknown header data 2", h.Garbage.Unknown2[:]); err != nil {
		return nil, nil, err
	}

	if h.Width, err = c.u8("width"); err != nil {
		return nil, nil, err
	}
	if h.Height, err = c.u8("height"); err != nil {
		return nil, nil, err
	}
	if h.ClueCount, err = c.u16("clue count"); err != nil {
		return nil, nil, err
	}

	puzzleCode, err := c.u16("puzzle type")
	if err != nil {
		return nil, nil, err
	}
	if h.PuzzleType, err = PuzzleTypeFromCode(puzzleCode); err != nil {
		return nil, nil, err
	}

	solutionCode, err := c.u16("solution type")
	if err != nil {
		return nil, nil, err
	}
	if h.SolutionType, err = SolutionTypeFromCode(solutionCode); err != nil {
		return nil, nil, err
	}

	return h, c.rest(), nil
}

// File is a puz file read through Decode.
type File struct {
	Header *Header
	// Body is the data following the header (grid, strings, extra sections).
	// It aliases Raw.
	Body []byte
	// Compression is the wrapper the input was unwrapped from.
	Compression Compression
	// Raw is the unwrapped puz data, preamble included.
	Raw []byte
}

// Fingerprint returns the BLAKE3-256 digest of the unwrapped puz data.
func (f *File) Fingerprint() [32]byte {
	return blake3.Sum256(f.Raw)
}

// Decode reads a puz file from r and decodes its header.
//
// The input may be wrapped in a compressed container. By default the wrapper
// is detected from its signature (see [DetectCompression]); use
// WithCompression to force one, which is required for Brotli.
//
// Decode enforces the configured [Limits] on both the stored and the
// unwrapped size and returns ErrLimitExceeded when either is exceeded.
func Decode(r io.Reader, opts ...ReadOption) (*File, error) {
	cfg := readConfig{limits: defaultLimits(), compression: CompAuto}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	stored, err := readAll(io.LimitReader(r, int64(cfg.limits.MaxInputLen)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(stored)) > cfg.limits.MaxInputLen {
		return nil, fmt.Errorf("%w: input larger than %d bytes", ErrLimitExceeded, cfg.limits.MaxInputLen)
	}

	comp := cfg.compression
	if comp == CompAuto {
		comp = DetectCompression(stored)
	}
	raw, err := decompress(comp, stored, cfg.limits.MaxUncompressedLen)
	if err != nil {
		return nil, err
	}

	h, body, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}
	return &File{Header: h, Body: body, Compression: comp, Raw: raw}, nil
}
