package puz

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Compression identifies a wrapper around puz data.
type Compression uint16

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
	CompGZIP Compression = 0x5
	CompXZ   Compression = 0x6

	// CompAuto selects the wrapper from the input signature.
	CompAuto Compression = 0xFFFF
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZIP:
		return "zip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "br"
	case CompGZIP:
		return "gzip"
	case CompXZ:
		return "xz"
	case CompAuto:
		return "auto"
	default:
		return fmt.Sprintf("Compression(%d)", uint16(c))
	}
}

// ParseCompression parses a codec name as printed by Compression.String.
// A few common aliases are accepted.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return CompAuto, nil
	case "none", "raw":
		return CompNone, nil
	case "zip":
		return CompZIP, nil
	case "zstd", "zst":
		return CompZSTD, nil
	case "lz4":
		return CompLZ4, nil
	case "br", "brotli":
		return CompBR, nil
	case "gzip", "gz":
		return CompGZIP, nil
	case "xz":
		return CompXZ, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (valid: auto, none, zip, zstd, lz4, br, gzip, xz)", name)
	}
}

// CompressionForPath guesses the wrapper from a file name extension.
// It returns CompAuto when the extension says nothing.
func CompressionForPath(p string) Compression {
	switch strings.ToLower(path.Ext(p)) {
	case ".zip":
		return CompZIP
	case ".zst", ".zstd":
		return CompZSTD
	case ".lz4":
		return CompLZ4
	case ".br":
		return CompBR
	case ".gz":
		return CompGZIP
	case ".xz":
		return CompXZ
	default:
		return CompAuto
	}
}

var signatures = []struct {
	comp  Compression
	magic []byte
}{
	{CompZIP, []byte{'P', 'K', 0x03, 0x04}},
	{CompZSTD, []byte{0x28, 0xB5, 0x2F, 0xFD}},
	{CompLZ4, []byte{0x04, 0x22, 0x4D, 0x18}},
	{CompGZIP, []byte{0x1F, 0x8B, 0x08}}, // deflate is the only gzip method
	{CompXZ, []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
}

// DetectCompression returns the wrapper whose signature b starts with, or
// CompNone. Brotli streams carry no signature and are never detected.
// Input with the puz magic at offset 2 is always CompNone, whatever its
// checksum bytes look like.
func DetectCompression(b []byte) Compression {
	if len(b) >= magicOffset+magicLen && bytes.Equal(b[magicOffset:magicOffset+magicLen], Magic[:]) {
		return CompNone
	}
	for _, s := range signatures {
		if bytes.HasPrefix(b, s.magic) {
			return s.comp
		}
	}
	return CompNone
}

// Function variables for testing injection.
var (
	newZstdReader = func(maxMemory uint64) (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxMemory))
	}
	newXZReader = func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) }
	zipOpen     = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll     = io.ReadAll
)

// decompress unwraps in according to comp.
// It enforces maxUncompressed to prevent decompression bombs.
// For CompNone, in is returned as-is.
func decompress(comp Compression, in []byte, maxUncompressed uint64) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch comp {
	case CompNone:
		out = in
	case CompZIP:
		out, err = zipDecompress(in, maxUncompressed)
	case CompZSTD:
		out, err = zstdDecompress(in, maxUncompressed)
	case CompLZ4:
		out, err = readLimited(lz4.NewReader(bytes.NewReader(in)), maxUncompressed, comp)
	case CompBR:
		out, err = readLimited(brotli.NewReader(bytes.NewReader(in)), maxUncompressed, comp)
	case CompGZIP:
		out, err = gzipDecompress(in, maxUncompressed)
	case CompXZ:
		out, err = xzDecompress(in, maxUncompressed)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > maxUncompressed {
		return nil, fmt.Errorf("%w: puz data larger than %d bytes", ErrLimitExceeded, maxUncompressed)
	}
	return out, nil
}

// readLimited reads r to EOF, failing once more than limit bytes are produced.
func readLimited(r io.Reader, limit uint64, comp Compression) ([]byte, error) {
	b, err := readAll(io.LimitReader(r, int64(clampLimit(limit))+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, comp, err)
	}
	if uint64(len(b)) > limit {
		return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", ErrLimitExceeded, comp, limit)
	}
	return b, nil
}

// zipDecompress extracts the puz entry of a ZIP archive: the only entry with
// a .puz extension, or failing that the only regular file.
func zipDecompress(zipBytes []byte, limit uint64) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: zip: %v", ErrInvalidPayload, err)
	}
	var files, puzFiles []*zip.File
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		files = append(files, zf)
		if strings.EqualFold(path.Ext(zf.Name), ".puz") {
			puzFiles = append(puzFiles, zf)
		}
	}
	var zf *zip.File
	switch {
	case len(puzFiles) == 1:
		zf = puzFiles[0]
	case len(puzFiles) == 0 && len(files) == 1:
		zf = files[0]
	default:
		return nil, fmt.Errorf("%w: zip must contain exactly one puz entry, found %d of %d files",
			ErrInvalidPayload, len(puzFiles), len(files))
	}
	if zf.UncompressedSize64 > limit {
		return nil, fmt.Errorf("%w: zip entry %q is %d bytes", ErrLimitExceeded, zf.Name, zf.UncompressedSize64)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, fmt.Errorf("%w: zip entry %q: %v", ErrInvalidPayload, zf.Name, err)
	}
	defer rc.Close()
	return readLimited(rc, limit, CompZIP)
}

// zstdDecompress decodes a Zstandard frame, bounding decoder memory by limit.
func zstdDecompress(in []byte, limit uint64) ([]byte, error) {
	dec, err := newZstdReader(limit)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(in, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: zstd: %v", ErrLimitExceeded, err)
		}
		return nil, fmt.Errorf("%w: zstd: %v", ErrInvalidPayload, err)
	}
	return out, nil
}

func gzipDecompress(in []byte, limit uint64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", ErrInvalidPayload, err)
	}
	defer zr.Close()
	return readLimited(zr, limit, CompGZIP)
}

func xzDecompress(in []byte, limit uint64) ([]byte, error) {
	r, err := newXZReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("%w: xz: %v", ErrInvalidPayload, err)
	}
	return readLimited(r, limit, CompXZ)
}
