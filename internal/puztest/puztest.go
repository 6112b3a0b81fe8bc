// Package puztest builds synthetic .puz images for tests outside the
// root package.
package puztest

import (
	"encoding/binary"

	"github.com/logicossoftware/go-puz"
)

// Fields lists the header values written by Bytes.
type Fields struct {
	Checksum     uint16
	Board        uint16
	Version      string
	Scrambled    uint16
	Width        uint8
	Height       uint8
	Clues        uint16
	PuzzleType   uint16
	SolutionType uint16
}

// Daily is a plain 15x15, version 1.3 header.
func Daily() Fields {
	return Fields{
		Checksum:   0xBEEF,
		Board:      0x1234,
		Version:    "1.3",
		Width:      15,
		Height:     15,
		Clues:      78,
		PuzzleType: uint16(puz.PuzzleNormal),
	}
}

// Bytes lays out f followed by body. Version is copied as-is, so "1.3"
// leaves the fourth byte zero.
func (f Fields) Bytes(body []byte) []byte {
	b := make([]byte, puz.HeaderSize, puz.HeaderSize+len(body))
	binary.LittleEndian.PutUint16(b[0x00:], f.Checksum)
	copy(b[0x02:], puz.Magic[:])
	binary.LittleEndian.PutUint16(b[0x0E:], f.Board)
	copy(b[0x18:0x1C], f.Version)
	binary.LittleEndian.PutUint16(b[0x1E:], f.Scrambled)
	b[0x2C] = f.Width
	b[0x2D] = f.Height
	binary.LittleEndian.PutUint16(b[0x2E:], f.Clues)
	binary.LittleEndian.PutUint16(b[0x30:], f.PuzzleType)
	binary.LittleEndian.PutUint16(b[0x32:], f.SolutionType)
	return append(b, body...)
}
