package puz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

// headerFields describes a header to be laid out by bytes().
type headerFields struct {
	checksum     uint16
	cib          uint16
	masked       [8]byte
	version      [4]byte
	unknown1     [2]byte
	scrambled    uint16
	unknown2     [12]byte
	width        uint8
	height       uint8
	clues        uint16
	puzzleType   uint16
	solutionType uint16
}

func sampleFields() headerFields {
	return headerFields{
		checksum:     0xBEEF,
		cib:          0x1234,
		masked:       [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		version:      [4]byte{'1', '.', '3', 0},
		unknown1:     [2]byte{0xAA, 0xBB},
		unknown2:     [12]byte{'s', 't', 'r', 'a', 'y', 0, 0, 0, 0, 0, 0, 9},
		width:        15,
		height:       15,
		clues:        142,
		puzzleType:   0x0001,
		solutionType: 0x0000,
	}
}

func (f headerFields) bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0x00:], f.checksum)
	copy(b[0x02:], Magic[:])
	binary.LittleEndian.PutUint16(b[0x0E:], f.cib)
	copy(b[0x10:], f.masked[:])
	copy(b[0x18:], f.version[:])
	copy(b[0x1C:], f.unknown1[:])
	binary.LittleEndian.PutUint16(b[0x1E:], f.scrambled)
	copy(b[0x20:], f.unknown2[:])
	b[0x2C] = f.width
	b[0x2D] = f.height
	binary.LittleEndian.PutUint16(b[0x2E:], f.clues)
	binary.LittleEndian.PutUint16(b[0x30:], f.puzzleType)
	binary.LittleEndian.PutUint16(b[0x32:], f.solutionType)
	return b
}

var sampleBody = []byte("CAT.ODE\x00---.---\x00Title\x00Author\x00")

func samplePuz() []byte {
	return append(sampleFields().bytes(), sampleBody...)
}

func TestParseHeader_Sample(t *testing.T) {
	b := samplePuz()
	h, body, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	want := &Header{
		Offset: 0,
		Garbage: Garbage{
			Unknown1: [2]byte{0xAA, 0xBB},
			Unknown2: [12]byte{'s', 't', 'r', 'a', 'y', 0, 0, 0, 0, 0, 0, 9},
		},
		Checksum:        0xBEEF,
		BoardChecksum:   0x1234,
		MaskedChecksums: [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		Version:         Version{Major: 1, Minor: 3},
		Width:           15,
		Height:          15,
		ClueCount:       142,
		PuzzleType:      PuzzleNormal,
		SolutionType:    SolutionNormal,
	}
	if !reflect.DeepEqual(want, h) {
		t.Fatalf("header mismatch\nwant: %#v\ngot:  %#v", want, h)
	}
	if h.Garbage.Preamble != nil {
		t.Fatalf("expected nil preamble, got %v", h.Garbage.Preamble)
	}
	if h.ScrambledChecksum != nil {
		t.Fatalf("expected no scrambled checksum, got %v", *h.ScrambledChecksum)
	}
	if !bytes.Equal(body, sampleBody) {
		t.Fatalf("body mismatch: %q", body)
	}
	if h.BodyOffset() != HeaderSize {
		t.Fatalf("BodyOffset = %d", h.BodyOffset())
	}
	// The body must alias the input.
	if &body[0] != &b[HeaderSize] {
		t.Fatal("body was copied")
	}
}

func TestParseHeader_Preamble(t *testing.T) {
	preamble := []byte{0x00, 0xFF, 'j', 'u', 'n', 'k', 0x07}
	b := append(append([]byte(nil), preamble...), samplePuz()...)

	h, body, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Offset != len(preamble) {
		t.Fatalf("Offset = %d, want %d", h.Offset, len(preamble))
	}
	if !bytes.Equal(h.Garbage.Preamble, preamble) {
		t.Fatalf("preamble = %v, want %v", h.Garbage.Preamble, preamble)
	}
	if !bytes.Equal(body, sampleBody) {
		t.Fatalf("body mismatch: %q", body)
	}
	if &body[0] != &b[len(preamble)+HeaderSize] {
		t.Fatal("body was copied")
	}

	// Everything except the preamble and offset matches the unprefixed parse.
	plain, _, err := ParseHeader(samplePuz())
	if err != nil {
		t.Fatal(err)
	}
	h.Offset = 0
	h.Garbage.Preamble = nil
	if !reflect.DeepEqual(plain, h) {
		t.Fatalf("header mismatch\nwant: %#v\ngot:  %#v", plain, h)
	}
}

func TestParseHeader_PreambleIsCopied(t *testing.T) {
	b := append([]byte{1, 2, 3}, samplePuz()...)
	h, _, err := ParseHeader(b)
	if err != nil {
		t.Fatal(err)
	}
	b[0] = 0x99
	if h.Garbage.Preamble[0] != 1 {
		t.Fatal("preamble aliases the input")
	}
}

func TestParseHeader_DoesNotMutateInput(t *testing.T) {
	b := append([]byte("xx"), samplePuz()...)
	orig := append([]byte(nil), b...)
	if _, _, err := ParseHeader(b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, orig) {
		t.Fatal("input was modified")
	}
}

func TestParseHeader_ScrambledChecksum(t *testing.T) {
	f := sampleFields()
	f.scrambled = 0x1234
	f.solutionType = uint16(SolutionScrambled)
	h, _, err := ParseHeader(f.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if h.ScrambledChecksum == nil || *h.ScrambledChecksum != Checksum(0x1234) {
		t.Fatalf("ScrambledChecksum = %v", h.ScrambledChecksum)
	}
	if !h.Scrambled() {
		t.Fatal("expected Scrambled")
	}
}

func TestParseHeader_TypesAndVersionExtension(t *testing.T) {
	f := sampleFields()
	f.puzzleType = uint16(PuzzleDiagramless)
	f.solutionType = uint16(SolutionMissing)
	f.version = [4]byte{'2', '.', '0', 'c'}
	h, body, err := ParseHeader(f.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if h.PuzzleType != PuzzleDiagramless || h.SolutionType != SolutionMissing {
		t.Fatalf("types = %v/%v", h.PuzzleType, h.SolutionType)
	}
	if h.Version != (Version{Major: 2, Minor: 0, Extension: 'c'}) {
		t.Fatalf("version = %#v", h.Version)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %d bytes", len(body))
	}
}

func TestParseHeader_NoDimensionValidation(t *testing.T) {
	f := sampleFields()
	f.width = 0
	f.height = 255
	h, _, err := ParseHeader(f.bytes())
	if err != nil {
		t.Fatal(err)
	}
	if h.Width != 0 || h.Height != 255 {
		t.Fatalf("dims = %dx%d", h.Width, h.Height)
	}
}

func TestParseHeader_ValidationErrors(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		f := sampleFields()
		f.version = [4]byte{'v', '1', '3', 0}
		_, _, err := ParseHeader(f.bytes())
		var ve *VersionError
		if !errors.As(err, &ve) || !errors.Is(err, ErrVersionFormat) {
			t.Fatalf("expected VersionError, got %v", err)
		}
		if ve.Raw != f.version {
			t.Fatalf("raw = %v", ve.Raw)
		}
	})
	t.Run("puzzle type", func(t *testing.T) {
		f := sampleFields()
		f.puzzleType = 0x0002
		_, _, err := ParseHeader(f.bytes())
		var pe *PuzzleTypeError
		if !errors.As(err, &pe) || pe.Code != 0x0002 {
			t.Fatalf("expected PuzzleTypeError, got %v", err)
		}
		if errors.Is(err, ErrMalformed) {
			t.Fatal("unknown code reported as malformed")
		}
	})
	t.Run("solution type", func(t *testing.T) {
		f := sampleFields()
		f.solutionType = 0x0001
		_, _, err := ParseHeader(f.bytes())
		var se *SolutionTypeError
		if !errors.As(err, &se) || se.Code != 0x0001 {
			t.Fatalf("expected SolutionTypeError, got %v", err)
		}
	})
}

func TestParseHeader_FirstErrorWins(t *testing.T) {
	f := sampleFields()
	f.version = [4]byte{'x', 'x', 'x', 'x'}
	f.puzzleType = 0xFFFF
	f.solutionType = 0xFFFF
	_, _, err := ParseHeader(f.bytes())
	if !errors.Is(err, ErrVersionFormat) {
		t.Fatalf("expected version error first, got %v", err)
	}
}
