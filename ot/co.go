//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/markkurossi/ocelot/errs"
	"github.com/markkurossi/ocelot/kernel"
	"github.com/markkurossi/ocelot/wire"
)

// ChouOrlandi is a 1-out-of-2 base OT of byte strings, built on the
// Ristretto255 group. A single value runs every transfer in a batch
// sequentially, drawing a fresh ephemeral scalar each time: unlike
// the extension layers built on top of it, nothing here is
// batch-amortized.
type ChouOrlandi struct {
	conn *wire.Shared
	rng  io.Reader
}

// New returns a ChouOrlandi base OT reading randomness from rng. Call
// InitSender or InitReceiver before using it.
func New(rng io.Reader) *ChouOrlandi {
	return &ChouOrlandi{rng: rng}
}

// NewDefault is New(rand.Reader).
func NewDefault() *ChouOrlandi {
	return New(rand.Reader)
}

func (c *ChouOrlandi) InitSender(conn *wire.Shared) error {
	c.conn = conn
	return nil
}

func (c *ChouOrlandi) InitReceiver(conn *wire.Shared) error {
	c.conn = conn
	return nil
}

func randomScalar(rng io.Reader) (*ristretto255.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return nil, errs.Wrap(errs.IO, err)
	}
	s := ristretto255.NewScalar()
	s.FromUniformBytes(buf[:])
	return s, nil
}

func decodePoint(buf []byte) (*ristretto255.Element, error) {
	e := ristretto255.NewElement()
	if err := e.Decode(buf); err != nil {
		return nil, errs.Wrap(errs.InvalidEncoding, err)
	}
	return e, nil
}

// Send runs one Chou-Orlandi transfer per element of pairs, in order.
func (c *ChouOrlandi) Send(pairs []Pair) error {
	for i, pair := range pairs {
		if len(pair.M0) != len(pair.M1) {
			return errs.Wrapf(errs.InvalidInput,
				"pair %d: message lengths differ: %d != %d", i, len(pair.M0), len(pair.M1))
		}
		if err := c.send(pair.M0, pair.M1); err != nil {
			return err
		}
	}
	return c.conn.Flush()
}

func (c *ChouOrlandi) send(m0, m1 []byte) error {
	a, err := randomScalar(c.rng)
	if err != nil {
		return err
	}
	basePoint := ristretto255.NewElement().ScalarBaseMult(a)
	if err := c.conn.WritePoint(basePoint.Encode(nil)); err != nil {
		return err
	}
	if err := c.conn.Flush(); err != nil {
		return err
	}

	bBuf, err := c.conn.ReadPoint()
	if err != nil {
		return err
	}
	b, err := decodePoint(bBuf)
	if err != nil {
		return err
	}

	// k0 = H(b*a), k1 = H((b-basePoint)*a)
	k0Point := ristretto255.NewElement().ScalarMult(a, b)
	k0, err := kernel.PointHash(k0Point.Encode(nil))
	if err != nil {
		return err
	}

	diff := ristretto255.NewElement().Subtract(b, basePoint)
	k1Point := ristretto255.NewElement().ScalarMult(a, diff)
	k1, err := kernel.PointHash(k1Point.Encode(nil))
	if err != nil {
		return err
	}

	c0, err := kernel.EncryptECB(k0.Slice(), m0)
	if err != nil {
		return err
	}
	c1, err := kernel.EncryptECB(k1.Slice(), m1)
	if err != nil {
		return err
	}

	if err := c.conn.WriteBytes(c0); err != nil {
		return err
	}
	if err := c.conn.WriteBytes(c1); err != nil {
		return err
	}
	return c.conn.Flush()
}

// Receive runs one Chou-Orlandi transfer per element of choices, in
// order, each learning an nbytes-byte message.
func (c *ChouOrlandi) Receive(choices []bool, nbytes int) ([][]byte, error) {
	out := make([][]byte, len(choices))
	for i, choice := range choices {
		m, err := c.receive(choice, nbytes)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

func (c *ChouOrlandi) receive(choice bool, nbytes int) ([]byte, error) {
	b, err := randomScalar(c.rng)
	if err != nil {
		return nil, err
	}

	aBuf, err := c.conn.ReadPoint()
	if err != nil {
		return nil, err
	}
	a, err := decodePoint(aBuf)
	if err != nil {
		return nil, err
	}

	// The branch below depends on the secret choice bit and so is a
	// known timing side channel; the protocol's own threat model
	// (semi-honest, no hiding of execution time) accepts it.
	var bPoint *ristretto255.Element
	if !choice {
		bPoint = ristretto255.NewElement().ScalarBaseMult(b)
	} else {
		bPoint = ristretto255.NewElement().ScalarBaseMult(b)
		bPoint.Add(bPoint, a)
	}
	if err := c.conn.WritePoint(bPoint.Encode(nil)); err != nil {
		return nil, err
	}
	if err := c.conn.Flush(); err != nil {
		return nil, err
	}

	krPoint := ristretto255.NewElement().ScalarMult(b, a)
	kr, err := kernel.PointHash(krPoint.Encode(nil))
	if err != nil {
		return nil, err
	}

	padded := kernel.PaddedLen(nbytes)
	c0, err := c.conn.ReadBytes(padded)
	if err != nil {
		return nil, err
	}
	c1, err := c.conn.ReadBytes(padded)
	if err != nil {
		return nil, err
	}

	ct := c0
	if choice {
		ct = c1
	}
	return kernel.DecryptECB(kr.Slice(), ct)
}

var _ OT = (*ChouOrlandi)(nil)
