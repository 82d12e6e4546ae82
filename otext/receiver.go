//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package otext

import (
	"io"

	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/errs"
	"github.com/markkurossi/ocelot/kernel"
	"github.com/markkurossi/ocelot/ot"
	"github.com/markkurossi/ocelot/wire"
)

// Receiver runs the Receiver side of an ALSZ extension over a base OT
// and a shared channel.
type Receiver struct {
	base ot.OT
	conn *wire.Shared
	rng  io.Reader
}

// NewReceiver returns a Receiver built on base, already InitSender'd
// by the caller, and conn.
func NewReceiver(base ot.OT, conn *wire.Shared, rng io.Reader) *Receiver {
	return &Receiver{base: base, conn: conn, rng: rng}
}

// Receive runs len(choices) extended OTs, each learning a 128-bit
// message selected by the corresponding choice bit. len(choices) must
// be a positive multiple of 8.
func (r *Receiver) Receive(choices []bool) ([]block.Block, error) {
	m := len(choices)
	if m <= 0 || m%8 != 0 {
		return nil, errs.Wrapf(errs.InvalidInput, "extension batch size %d must be a positive multiple of 8", m)
	}

	if m <= K {
		raw, err := r.base.Receive(choices, block.Size)
		if err != nil {
			return nil, err
		}
		out := make([]block.Block, m)
		for i, buf := range raw {
			out[i] = block.FromBytes(buf)
		}
		return out, nil
	}

	seed0 := make([][]byte, K)
	seed1 := make([][]byte, K)
	pairs := make([]ot.Pair, K)
	for i := 0; i < K; i++ {
		k0 := make([]byte, kernel.SeedSize)
		k1 := make([]byte, kernel.SeedSize)
		if _, err := io.ReadFull(r.rng, k0); err != nil {
			return nil, errs.Wrap(errs.IO, err)
		}
		if _, err := io.ReadFull(r.rng, k1); err != nil {
			return nil, errs.Wrap(errs.IO, err)
		}
		seed0[i], seed1[i] = k0, k1
		pairs[i] = ot.Pair{M0: k0, M1: k1}
	}
	if err := r.base.Send(pairs); err != nil {
		return nil, err
	}

	rowBytes := m / 8
	rVec := block.Pack(choices)

	rows := make([][]byte, K)
	for i := 0; i < K; i++ {
		t, err := kernel.Expand(seed0[i], rowBytes)
		if err != nil {
			return nil, err
		}
		g, err := kernel.Expand(seed1[i], rowBytes)
		if err != nil {
			return nil, err
		}
		u := append([]byte(nil), t...)
		kernel.XOR(u, g)
		kernel.XOR(u, rVec)
		if err := r.conn.WriteBytes(u); err != nil {
			return nil, err
		}
		rows[i] = t
	}
	if err := r.conn.Flush(); err != nil {
		return nil, err
	}

	cols := kernel.Transpose(rows, m)
	out := make([]block.Block, m)
	for j := range choices {
		t := block.FromBytes(cols[j])
		y0, err := r.conn.ReadBlock()
		if err != nil {
			return nil, err
		}
		y1, err := r.conn.ReadBlock()
		if err != nil {
			return nil, err
		}
		y := y0
		if choices[j] {
			y = y1
		}
		out[j] = kernel.H(uint64(j), t.Slice()).Xor(y)
	}
	return out, nil
}
