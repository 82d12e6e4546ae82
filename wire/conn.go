//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"bufio"
	"io"

	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/errs"
)

// PointSize is the canonical encoded length of a Ristretto255 group
// element in bytes.
const PointSize = 32

// Conn wraps a raw io.ReadWriter with buffering and the fixed-width
// primitives the protocol layers need. It adds no framing of its
// own: ReadBytes(n) blocks for exactly n bytes, and nothing on the
// wire detects it if the two sides disagree on n.
type Conn struct {
	closer io.Closer
	rw     *bufio.ReadWriter
}

// New wraps rw. If rw also implements io.Closer, Close closes it.
func New(rw io.ReadWriter) *Conn {
	closer, _ := rw.(io.Closer)
	return &Conn{
		closer: closer,
		rw: bufio.NewReadWriter(
			bufio.NewReader(rw),
			bufio.NewWriter(rw)),
	}
}

// WriteBytes writes buf verbatim, with no length prefix.
func (c *Conn) WriteBytes(buf []byte) error {
	if _, err := c.rw.Write(buf); err != nil {
		return errs.Wrap(errs.IO, err)
	}
	return nil
}

// ReadBytes reads exactly n bytes.
func (c *Conn) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.rw, buf); err != nil {
		return nil, errs.Wrap(errs.IO, err)
	}
	return buf, nil
}

// WriteBool writes b as a single byte, 1 for true and 0 for false.
func (c *Conn) WriteBool(b bool) error {
	var v byte
	if b {
		v = 1
	}
	return c.WriteBytes([]byte{v})
}

// ReadBool reads a single byte written by WriteBool.
func (c *Conn) ReadBool() (bool, error) {
	buf, err := c.ReadBytes(1)
	if err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}

// WriteBlock writes a 16-byte Block, little-endian.
func (c *Conn) WriteBlock(b block.Block) error {
	buf := b.Bytes()
	return c.WriteBytes(buf[:])
}

// ReadBlock reads a 16-byte Block written by WriteBlock.
func (c *Conn) ReadBlock() (block.Block, error) {
	buf, err := c.ReadBytes(block.Size)
	if err != nil {
		return block.Block{}, err
	}
	return block.FromBytes(buf), nil
}

// WriteBitVec packs bits little-endian within each byte and writes
// the resulting ceil(len(bits)/8) bytes. The reader must already know
// how many bits to expect: no length is carried on the wire.
func (c *Conn) WriteBitVec(bits []bool) error {
	return c.WriteBytes(block.Pack(bits))
}

// ReadBitVec reads ceil(n/8) bytes and unpacks n bits from them.
func (c *Conn) ReadBitVec(n int) ([]bool, error) {
	buf, err := c.ReadBytes((n + 7) / 8)
	if err != nil {
		return nil, err
	}
	return block.Unpack(buf, n), nil
}

// WritePoint writes a canonically encoded group element. encoded must
// be exactly PointSize bytes; the caller (the ot package) is
// responsible for producing a canonical encoding.
func (c *Conn) WritePoint(encoded []byte) error {
	if len(encoded) != PointSize {
		return errs.Wrapf(errs.InvalidInput, "point encoding must be %d bytes, got %d", PointSize, len(encoded))
	}
	return c.WriteBytes(encoded)
}

// ReadPoint reads PointSize bytes. It does not itself validate that
// the bytes decode to a curve point; the caller decodes and maps any
// failure to errs.InvalidEncoding.
func (c *Conn) ReadPoint() ([]byte, error) {
	return c.ReadBytes(PointSize)
}

// Flush pushes any buffered writes out to the underlying writer.
func (c *Conn) Flush() error {
	if err := c.rw.Flush(); err != nil {
		return errs.Wrap(errs.IO, err)
	}
	return nil
}

// Close flushes and closes the underlying connection, if it supports
// closing.
func (c *Conn) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
