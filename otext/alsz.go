//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package otext implements the ALSZ/IKNP OT extension: a handful of
// base OTs (from the ot package) amplified into as many fast,
// symmetric-key OTs of 128-bit messages as the caller needs in a
// single call. Each Send or Receive call bootstraps its own K base
// OTs and discards them once the call returns, the same lifetime the
// reference implementation this is grounded on uses; callers needing
// many extension rounds are expected to call Send/Receive once per
// round rather than hold a Sender or Receiver open across rounds.
package otext

import (
	"io"

	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/errs"
	"github.com/markkurossi/ocelot/kernel"
	"github.com/markkurossi/ocelot/ot"
	"github.com/markkurossi/ocelot/wire"
)

// K is the number of base OTs the extension bootstraps per call.
const K = 128

// Sender runs the Sender side of an ALSZ extension over a base OT and
// a shared channel.
type Sender struct {
	base ot.OT
	conn *wire.Shared
	rng  io.Reader
}

// NewSender returns a Sender built on base, already InitReceiver'd by
// the caller, and conn.
func NewSender(base ot.OT, conn *wire.Shared, rng io.Reader) *Sender {
	return &Sender{base: base, conn: conn, rng: rng}
}

// Send runs len(pairs) extended OTs, one per element. len(pairs) must
// be a positive multiple of 8. Batches of K or fewer are delegated
// directly to the base OT, skipping the matrix expansion entirely.
func (s *Sender) Send(pairs []ot.Pair) error {
	m := len(pairs)
	if m <= 0 || m%8 != 0 {
		return errs.Wrapf(errs.InvalidInput, "extension batch size %d must be a positive multiple of 8", m)
	}
	for _, p := range pairs {
		if len(p.M0) != block.Size || len(p.M1) != block.Size {
			return errs.Wrapf(errs.InvalidInput, "extended OT messages must be %d bytes", block.Size)
		}
	}

	if m <= K {
		return s.base.Send(pairs)
	}

	choice := make([]bool, K)
	buf := make([]byte, K/8)
	if _, err := io.ReadFull(s.rng, buf); err != nil {
		return errs.Wrap(errs.IO, err)
	}
	for i := range choice {
		choice[i] = block.Bit(buf, i) == 1
	}

	seeds, err := s.base.Receive(choice, kernel.SeedSize)
	if err != nil {
		return err
	}

	rowBytes := m / 8
	rows := make([][]byte, K)
	for i := 0; i < K; i++ {
		u, err := s.conn.ReadBytes(rowBytes)
		if err != nil {
			return err
		}
		g, err := kernel.Expand(seeds[i], rowBytes)
		if err != nil {
			return err
		}
		if choice[i] {
			kernel.XOR(g, u)
		}
		rows[i] = g
	}

	cols := kernel.Transpose(rows, m)
	S := block.FromBytes(block.Pack(choice))
	for j, pair := range pairs {
		q := block.FromBytes(cols[j])

		y0 := kernel.H(uint64(j), q.Slice()).Xor(block.FromBytes(pair.M0))
		qs := q.Xor(S)
		y1 := kernel.H(uint64(j), qs.Slice()).Xor(block.FromBytes(pair.M1))

		if err := s.conn.WriteBlock(y0); err != nil {
			return err
		}
		if err := s.conn.WriteBlock(y1); err != nil {
			return err
		}
	}
	return s.conn.Flush()
}
