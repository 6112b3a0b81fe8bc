// Package puz decodes the header of Across Lite .puz crossword files.
//
// A .puz file begins with a 52-byte fixed header followed by the solution
// grid, the player state grid and a sequence of NUL-terminated strings
// (title, author, copyright, clues, notes). This package decodes and
// validates the header and hands back the body untouched.
//
// # File Format Overview
//
// All multi-byte integers are little-endian. Offsets are relative to the
// start of the puz data:
//
//	0x00  2  overall checksum
//	0x02 12  magic "ACROSS&DOWN\0"
//	0x0E  2  board (CIB) checksum
//	0x10  8  masked checksums
//	0x18  4  version "1.3\0"
//	0x1C  2  reserved
//	0x1E  2  scrambled solution checksum (0 when not scrambled)
//	0x20 12  reserved
//	0x2C  1  width
//	0x2D  1  height
//	0x2E  2  clue count
//	0x30  2  puzzle type
//	0x32  2  solution type
//
// Some producers prepend extra bytes to the file. The start of the puz data
// is found by scanning for the magic, and anything before it is kept in
// [Garbage].Preamble. Reserved regions are kept too, so nothing in the
// header is lost.
//
// # Basic Usage
//
// To decode a header from an in-memory buffer:
//
//	b, _ := os.ReadFile("daily.puz")
//	h, body, err := puz.ParseHeader(b)
//	if err != nil {
//		return err
//	}
//	fmt.Println(h.Width, h.Height, h.ClueCount, len(body))
//
// To read a file that may be compressed (zip, zstd, lz4, gzip, xz, brotli):
//
//	f, _ := os.Open("daily.puz.zst")
//	defer f.Close()
//	pf, err := puz.Decode(f)
//
// # Errors
//
// Failures are reported with the sentinels in errors.go. Value-carrying
// errors ([VersionError], [PuzzleTypeError], [SolutionTypeError],
// [MalformedError]) match their sentinel with errors.Is and expose the raw
// bytes or codes through errors.As. A truncated header (ErrMalformed) is
// distinct from a complete header holding an unknown value.
//
// Checksums are carried as stored; they are not verified.
package puz
