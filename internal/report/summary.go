// Package report flattens a decoded puzzle header into a printable record
// shared by the CLI, the C exports and the examples.
package report

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/logicossoftware/go-puz"
)

// Summary is the display form of a decoded header. Raw byte fields are hex.
type Summary struct {
	Path              string `json:"path,omitempty" yaml:"path,omitempty"`
	Compression       string `json:"compression" yaml:"compression"`
	Offset            int    `json:"offset" yaml:"offset"`
	BodyOffset        int    `json:"body_offset" yaml:"body_offset"`
	BodyLen           int    `json:"body_len" yaml:"body_len"`
	Preamble          string `json:"preamble,omitempty" yaml:"preamble,omitempty"`
	Checksum          string `json:"checksum" yaml:"checksum"`
	BoardChecksum     string `json:"board_checksum" yaml:"board_checksum"`
	MaskedChecksums   string `json:"masked_checksums" yaml:"masked_checksums"`
	Version           string `json:"version" yaml:"version"`
	ScrambledChecksum string `json:"scrambled_checksum,omitempty" yaml:"scrambled_checksum,omitempty"`
	Width             uint8  `json:"width" yaml:"width"`
	Height            uint8  `json:"height" yaml:"height"`
	ClueCount         uint16 `json:"clue_count" yaml:"clue_count"`
	PuzzleType        string `json:"puzzle_type" yaml:"puzzle_type"`
	SolutionType      string `json:"solution_type" yaml:"solution_type"`
	Unknown1          string `json:"unknown1" yaml:"unknown1"`
	Unknown2          string `json:"unknown2" yaml:"unknown2"`
	Fingerprint       string `json:"blake3,omitempty" yaml:"blake3,omitempty"`
}

// FromHeader builds a Summary from a header and the length of its body.
func FromHeader(h *puz.Header, bodyLen int) Summary {
	s := Summary{
		Compression:     puz.CompNone.String(),
		Offset:          h.Offset,
		BodyOffset:      h.BodyOffset(),
		BodyLen:         bodyLen,
		Preamble:        hex.EncodeToString(h.Garbage.Preamble),
		Checksum:        h.Checksum.String(),
		BoardChecksum:   h.BoardChecksum.String(),
		MaskedChecksums: hex.EncodeToString(h.MaskedChecksums[:]),
		Version:         h.Version.String(),
		Width:           h.Width,
		Height:          h.Height,
		ClueCount:       h.ClueCount,
		PuzzleType:      h.PuzzleType.String(),
		SolutionType:    h.SolutionType.String(),
		Unknown1:        hex.EncodeToString(h.Garbage.Unknown1[:]),
		Unknown2:        hex.EncodeToString(h.Garbage.Unknown2[:]),
	}
	if h.ScrambledChecksum != nil {
		s.ScrambledChecksum = h.ScrambledChecksum.String()
	}
	return s
}

// FromFile adds the container details of f to its header summary.
func FromFile(path string, f *puz.File) Summary {
	s := FromHeader(f.Header, len(f.Body))
	s.Path = path
	s.Compression = f.Compression.String()
	sum := f.Fingerprint()
	s.Fingerprint = hex.EncodeToString(sum[:])
	return s
}

// Headers implements output.TableRenderer.
func (s Summary) Headers() []string {
	return []string{"Field", "Value"}
}

// Rows implements output.TableRenderer.
func (s Summary) Rows() [][]string {
	rows := [][]string{}
	add := func(k, v string) { rows = append(rows, []string{k, v}) }
	if s.Path != "" {
		add("path", s.Path)
	}
	add("compression", s.Compression)
	add("offset", strconv.Itoa(s.Offset))
	add("body", fmt.Sprintf("%d bytes at %d", s.BodyLen, s.BodyOffset))
	add("version", s.Version)
	add("size", fmt.Sprintf("%dx%d", s.Width, s.Height))
	add("clues", strconv.Itoa(int(s.ClueCount)))
	add("puzzle type", s.PuzzleType)
	add("solution type", s.SolutionType)
	add("checksum", s.Checksum)
	add("board checksum", s.BoardChecksum)
	add("masked checksums", s.MaskedChecksums)
	if s.ScrambledChecksum != "" {
		add("scrambled checksum", s.ScrambledChecksum)
	}
	if s.Fingerprint != "" {
		add("blake3", s.Fingerprint)
	}
	return rows
}

// List is a batch of summaries rendered one row per file.
type List []Summary

func (l List) Headers() []string {
	return []string{"Path", "Compression", "Version", "Size", "Clues", "Puzzle", "Solution", "Checksum"}
}

func (l List) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{
			s.Path,
			s.Compression,
			s.Version,
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			strconv.Itoa(int(s.ClueCount)),
			s.PuzzleType,
			s.SolutionType,
			s.Checksum,
		})
	}
	return rows
}
