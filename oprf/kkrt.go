//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package oprf

import (
	"io"

	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/errs"
	"github.com/markkurossi/ocelot/kernel"
	"github.com/markkurossi/ocelot/ot"
	"github.com/markkurossi/ocelot/wire"
)

// Sender runs the Sender side of a KKRT OPRF bootstrap and exposes an
// Evaluator capable of answering Eval(j, x) for any query x, matching
// the Receiver's output for query j whenever x equals the Receiver's
// j'th input.
type Sender struct {
	base ot.OT
	conn *wire.Shared
	rng  io.Reader
	code Code
}

// NewSender returns a Sender built on base, already InitReceiver'd by
// the caller, over conn, using code to expand queries into
// codewords. A nil code defaults to KKRTCode.
func NewSender(base ot.OT, conn *wire.Shared, rng io.Reader, code Code) *Sender {
	if code == nil {
		code = KKRTCode{}
	}
	return &Sender{base: base, conn: conn, rng: rng, code: code}
}

// Evaluator answers Eval queries against one bootstrapped extension
// run. It is valid only for the m the Init call that produced it was
// given; querying column indices outside [0,m) panics.
type Evaluator struct {
	cols [][]byte
	S    []byte
	code Code
}

// Init bootstraps width base OTs (width = code.Width()) and expands
// them into m columns, returning an Evaluator over those columns. m
// must be a positive multiple of 8.
func (s *Sender) Init(m int) (*Evaluator, error) {
	if m <= 0 || m%8 != 0 {
		return nil, errs.Wrapf(errs.InvalidInput, "oprf batch size %d must be a positive multiple of 8", m)
	}

	width := s.code.Width()
	choice := make([]bool, width)
	buf := make([]byte, (width+7)/8)
	if _, err := io.ReadFull(s.rng, buf); err != nil {
		return nil, errs.Wrap(errs.IO, err)
	}
	for i := range choice {
		choice[i] = block.Bit(buf, i) == 1
	}

	seeds, err := s.base.Receive(choice, kernel.SeedSize)
	if err != nil {
		return nil, err
	}

	rowBytes := m / 8
	rows := make([][]byte, width)
	for i := 0; i < width; i++ {
		u, err := s.conn.ReadBytes(rowBytes)
		if err != nil {
			return nil, err
		}
		g, err := kernel.Expand(seeds[i], rowBytes)
		if err != nil {
			return nil, err
		}
		if choice[i] {
			kernel.XOR(g, u)
		}
		rows[i] = g
	}

	cols := kernel.Transpose(rows, m)
	return &Evaluator{cols: cols, S: block.Pack(choice), code: s.code}, nil
}

// Eval computes eval(j, x) = H(j, q'_j xor (C(x) . S)). For x equal
// to the Receiver's j'th query, this equals the Receiver's own
// output for that query; for any other x it is pseudorandom and
// independent of the Receiver's output.
func (e *Evaluator) Eval(j int, x block.Block) block.Block {
	codeword := e.code.Encode(x)
	masked := kernel.AndBytes(codeword, e.S)
	kernel.XOR(masked, e.cols[j])
	return kernel.H(uint64(j), masked)
}

// Receiver runs the Receiver side of a KKRT OPRF bootstrap and exposes
// Receive, which evaluates the PRF at every element of a batch of
// queries.
type Receiver struct {
	base ot.OT
	conn *wire.Shared
	rng  io.Reader
	code Code
}

// NewReceiver returns a Receiver built on base, already InitSender'd
// by the caller, over conn, using code to expand queries into
// codewords. A nil code defaults to KKRTCode.
func NewReceiver(base ot.OT, conn *wire.Shared, rng io.Reader, code Code) *Receiver {
	if code == nil {
		code = KKRTCode{}
	}
	return &Receiver{base: base, conn: conn, rng: rng, code: code}
}

// Receive evaluates the PRF at every element of inputs, learning
// nothing about the Sender's key beyond the outputs themselves.
// len(inputs) must be a positive multiple of 8.
func (r *Receiver) Receive(inputs []block.Block) ([]block.Block, error) {
	m := len(inputs)
	if m <= 0 || m%8 != 0 {
		return nil, errs.Wrapf(errs.InvalidInput, "oprf batch size %d must be a positive multiple of 8", m)
	}

	width := r.code.Width()
	seed0 := make([][]byte, width)
	seed1 := make([][]byte, width)
	pairs := make([]ot.Pair, width)
	for i := 0; i < width; i++ {
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

	codewords := make([][]byte, m)
	for j, x := range inputs {
		codewords[j] = r.code.Encode(x)
	}

	rowBytes := m / 8
	rows := make([][]byte, width)
	for i := 0; i < width; i++ {
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

		rowMask := make([]bool, m)
		for j := range inputs {
			rowMask[j] = block.Bit(codewords[j], i) == 1
		}
		kernel.XOR(u, block.Pack(rowMask))

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
	for j := range inputs {
		out[j] = kernel.H(uint64(j), cols[j])
	}
	return out, nil
}
