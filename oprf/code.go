//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package oprf implements the KKRT batch oblivious PRF: a Sender
// holding a secret key none of the Receiver's queries reveal, and a
// Receiver that for each 128-bit query learns exactly PRF(key, x) and
// nothing about the key itself. It reuses the same base-OT
// bootstrap and bit-matrix transpose machinery as the otext package,
// generalized to a configurable base-OT count (the "extension
// width") and a per-query codeword in place of otext's single global
// choice vector.
package oprf

import (
	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/config"
	"github.com/markkurossi/ocelot/kernel"
)

// Code maps a 128-bit query to a codeword as wide as the extension:
// the Receiver's per-row masking bit at row i is bit i of the
// codeword, replacing the single global choice bit an ordinary OT
// extension uses.
type Code interface {
	// Width is the codeword length in bits, and therefore the number
	// of base OTs the extension bootstraps.
	Width() int
	// Encode returns the Width()/8-byte codeword for x.
	Encode(x block.Block) []byte
}

// IdentityCode is the trivial width-128 code: C(x) = x. It makes the
// OPRF extension bootstrap exactly K=128 base OTs, same as otext, at
// the cost of offering no distance amplification between codewords
// beyond whatever Hamming distance separates the queries themselves.
type IdentityCode struct{}

func (IdentityCode) Width() int { return 128 }

func (IdentityCode) Encode(x block.Block) []byte {
	buf := x.Bytes()
	return buf[:]
}

// codeKeys are the fixed AES-128 keys behind KKRTCode's expansion.
// Like kernel's correlation-robust hash key, these do not need to be
// secret: the code only needs to behave like a random function with
// large minimum distance between any two codewords, a property that
// holds whether or not an adversary knows the keys.
var codeKeys = [4][kernel.KeySize]byte{
	{0x6b, 0x6b, 0x72, 0x74, 0x2d, 0x63, 0x6f, 0x64, 0x65, 0x2d, 0x30, 0x2d, 0x2d, 0x2d, 0x2d, 0x2d},
	{0x6b, 0x6b, 0x72, 0x74, 0x2d, 0x63, 0x6f, 0x64, 0x65, 0x2d, 0x31, 0x2d, 0x2d, 0x2d, 0x2d, 0x2d},
	{0x6b, 0x6b, 0x72, 0x74, 0x2d, 0x63, 0x6f, 0x64, 0x65, 0x2d, 0x32, 0x2d, 0x2d, 0x2d, 0x2d, 0x2d},
	{0x6b, 0x6b, 0x72, 0x74, 0x2d, 0x63, 0x6f, 0x64, 0x65, 0x2d, 0x33, 0x2d, 0x2d, 0x2d, 0x2d, 0x2d},
}

// KKRTCode expands a 128-bit query into a 512-bit pseudorandom
// codeword by AES-encrypting the query under four fixed, distinct
// keys and concatenating the results. Two different queries collide
// in any one of the four 128-bit blocks with negligible probability,
// so the Hamming distance between their codewords is large with
// overwhelming probability, which is all KKRT's security proof
// requires of the code.
type KKRTCode struct{}

func (KKRTCode) Width() int { return 512 }

func (KKRTCode) Encode(x block.Block) []byte {
	buf := x.Bytes()
	out := make([]byte, 0, 64)
	for _, key := range codeKeys {
		blk := kernel.EncryptSingleBlock(key[:], buf[:])
		out = append(out, blk[:]...)
	}
	return out
}

// CodeFor validates opts and returns the Code it names: IdentityCode
// for a Width128 configuration, KKRTCode for Width512. Callers that
// assemble their configuration from outside the module (a config
// file, a flag set) should go through CodeFor rather than
// constructing a Code literal directly, so an unsupported
// combination surfaces as errs.InvalidInput instead of silently
// picking a default.
func CodeFor(opts config.Options) (Code, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Code == config.CodeKKRT {
		return KKRTCode{}, nil
	}
	return IdentityCode{}, nil
}
