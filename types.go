package puz

import "fmt"

const (
	// HeaderSize is the length of the fixed header, counted from the
	// discovered start offset through the solution type field.
	HeaderSize = 0x34

	magicOffset = 2
	magicLen    = 12
)

// Magic is the NUL-terminated signature found two bytes into the puz data.
var Magic = [magicLen]byte{'A', 'C', 'R', 'O', 'S', 'S', '&', 'D', 'O', 'W', 'N', 0}

// Checksum is a stored 16-bit checksum. It is carried as read and never recomputed.
type Checksum uint16

func (c Checksum) String() string {
	return fmt.Sprintf("0x%04x", uint16(c))
}

// Version is the format version stored as "<major>.<minor><ext>" in four bytes.
//
// Some producers put a character such as 'c' in the fourth byte instead of NUL;
// it is kept in Extension. Extension is 0 when the byte was NUL.
type Version struct {
	Major     uint8
	Minor     uint8
	Extension rune
}

// HasExtension reports whether the fourth version byte was non-zero.
func (v Version) HasExtension() bool { return v.Extension != 0 }

func (v Version) String() string {
	if v.HasExtension() {
		return fmt.Sprintf("%d.%d%c", v.Major, v.Minor, v.Extension)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// PuzzleType is the raw puzzle type code. Only the declared constants are valid.
type PuzzleType uint16

const (
	PuzzleNormal      PuzzleType = 0x0001
	PuzzleDiagramless PuzzleType = 0x0401
)

func (p PuzzleType) String() string {
	switch p {
	case PuzzleNormal:
		return "normal"
	case PuzzleDiagramless:
		return "diagramless"
	default:
		return fmt.Sprintf("PuzzleType(0x%04x)", uint16(p))
	}
}

// SolutionType is the raw solution state code. Only the declared constants are valid.
type SolutionType uint16

const (
	SolutionNormal    SolutionType = 0x0000
	SolutionMissing   SolutionType = 0x0002
	SolutionScrambled SolutionType = 0x0004
)

func (s SolutionType) String() string {
	switch s {
	case SolutionNormal:
		return "normal"
	case SolutionMissing:
		return "missing"
	case SolutionScrambled:
		return "scrambled"
	default:
		return fmt.Sprintf("SolutionType(0x%04x)", uint16(s))
	}
}

// Garbage holds bytes of unknown meaning, kept verbatim so the original
// file can be reproduced.
type Garbage struct {
	// Preamble is everything before the start offset. Some producers prepend
	// extra bytes to the file. It is nil when the puz data starts at offset 0.
	Preamble []byte

	// Unknown1 and Unknown2 are reserved header regions. They often contain
	// uninitialized memory or fragments of strings.
	Unknown1 [2]byte
	Unknown2 [12]byte
}

// Header is the decoded fixed header of a puz file.
type Header struct {
	// Offset is where the puz data begins inside the input buffer.
	Offset int

	Garbage Garbage

	// Checksum is the overall file checksum.
	Checksum Checksum
	// BoardChecksum covers the board configuration (CIB) fields.
	BoardChecksum   Checksum
	MaskedChecksums [8]byte

	Version Version

	// ScrambledChecksum is the checksum of the scrambled solution. It is nil
	// when the stored value is zero.
	ScrambledChecksum *Checksum

	Width     uint8
	Height    uint8
	ClueCount uint16

	PuzzleType   PuzzleType
	SolutionType SolutionType
}

// BodyOffset returns the absolute offset of the first byte after the header.
func (h *Header) BodyOffset() int {
	return h.Offset + HeaderSize
}

// Scrambled reports whether the solution is stored scrambled.
func (h *Header) Scrambled() bool {
	return h.SolutionType == SolutionScrambled
}
