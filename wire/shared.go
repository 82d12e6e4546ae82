//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package wire

import (
	"sync"

	"github.com/markkurossi/ocelot/block"
)

// Shared lets more than one protocol object hold the same underlying
// Conn, the way an OT extension owns a base OT instance that in turn
// owns the channel the extension itself is built on. The mutex is not
// a concurrency-control device: each role (Sender or Receiver) only
// ever has one protocol active on the channel at a time, so no two
// goroutines contend for it in practice. It exists purely so the
// Conn has a single lifetime shared across every layer that is
// handed a *Shared, instead of each layer guessing who is allowed to
// close it.
type Shared struct {
	mu   sync.Mutex
	conn *Conn
}

// NewShared wraps conn for sharing across protocol layers.
func NewShared(conn *Conn) *Shared {
	return &Shared{conn: conn}
}

func (s *Shared) with(fn func(*Conn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.conn)
}

func (s *Shared) WriteBytes(buf []byte) error {
	return s.with(func(c *Conn) error { return c.WriteBytes(buf) })
}

func (s *Shared) ReadBytes(n int) ([]byte, error) {
	var out []byte
	err := s.with(func(c *Conn) error {
		var e error
		out, e = c.ReadBytes(n)
		return e
	})
	return out, err
}

func (s *Shared) WriteBool(b bool) error {
	return s.with(func(c *Conn) error { return c.WriteBool(b) })
}

func (s *Shared) ReadBool() (bool, error) {
	var out bool
	err := s.with(func(c *Conn) error {
		var e error
		out, e = c.ReadBool()
		return e
	})
	return out, err
}

func (s *Shared) WriteBlock(b block.Block) error {
	return s.with(func(c *Conn) error { return c.WriteBlock(b) })
}

func (s *Shared) ReadBlock() (block.Block, error) {
	var out block.Block
	err := s.with(func(c *Conn) error {
		var e error
		out, e = c.ReadBlock()
		return e
	})
	return out, err
}

func (s *Shared) WriteBitVec(bits []bool) error {
	return s.with(func(c *Conn) error { return c.WriteBitVec(bits) })
}

func (s *Shared) ReadBitVec(n int) ([]bool, error) {
	var out []bool
	err := s.with(func(c *Conn) error {
		var e error
		out, e = c.ReadBitVec(n)
		return e
	})
	return out, err
}

func (s *Shared) WritePoint(encoded []byte) error {
	return s.with(func(c *Conn) error { return c.WritePoint(encoded) })
}

func (s *Shared) ReadPoint() ([]byte, error) {
	var out []byte
	err := s.with(func(c *Conn) error {
		var e error
		out, e = c.ReadPoint()
		return e
	})
	return out, err
}

func (s *Shared) Flush() error {
	return s.with(func(c *Conn) error { return c.Flush() })
}

var _ IO = (*Conn)(nil)
var _ IO = (*Shared)(nil)
