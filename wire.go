package puz

import (
	"bytes"
	"encoding/binary"
	"io"
)

// FindStart returns the offset at which puz data begins in b: the smallest
// i such that Magic occupies b[i+2 : i+14]. Bytes before i are preamble.
func FindStart(b []byte) (int, error) {
	if len(b) < magicOffset+magicLen {
		return 0, ErrNotAPuz
	}
	i := bytes.Index(b[magicOffset:], Magic[:])
	if i < 0 {
		return 0, ErrNotAPuz
	}
	return i, nil
}

// cursor reads fixed-size little-endian fields from an immutable buffer.
// Offsets are absolute within buf.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) next(field string, n int) ([]byte, error) {
	if len(c.buf)-c.off < n {
		return nil, &MalformedError{Field: field, Offset: c.off, Err: io.ErrUnexpectedEOF}
	}
	p := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return p, nil
}

func (c *cursor) skip(field string, n int) error {
	_, err := c.next(field, n)
	return err
}

func (c *cursor) u8(field string) (uint8, error) {
	p, err := c.next(field, 1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (c *cursor) u16(field string) (uint16, error) {
	p, err := c.next(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

func (c *cursor) fill(field string, dst []byte) error {
	p, err := c.next(field, len(dst))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// rest returns the unread bytes without copying.
func (c *cursor) rest() []byte {
	return c.buf[c.off:]
}
