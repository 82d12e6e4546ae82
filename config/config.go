//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package config validates the handful of configuration knobs the
// core recognizes: the OT extension's base-OT width, the OPRF
// codeword it pairs with that width, and the two primitive sizes
// (the AES key and the PRG seed) that every other package already
// hardcodes as constants. Nothing here is tunable in the sense of
// changing behavior; Validate exists so a caller that assembles an
// Options value from outside the module - a config file, a flag set -
// gets a single InvalidInput error instead of a panic buried three
// packages down when it picks an unsupported combination.
package config

import (
	"github.com/markkurossi/ocelot/errs"
	"github.com/markkurossi/ocelot/kernel"
)

// Width is the number of base OTs an extension or OPRF run
// bootstraps: otext always uses Width128; oprf uses Width128 with the
// identity code or Width512 with the KKRT code.
type Width int

// The two extension widths the core supports.
const (
	Width128 Width = 128
	Width512 Width = 512
)

// Code names the OPRF codeword family paired with a Width.
type Code string

// The two codes the core supports.
const (
	CodeIdentity Code = "identity"
	CodeKKRT     Code = "kkrt-code"
)

// Options is the core's full configuration surface. Every field has
// exactly one valid value except ExtensionWidth and Code, which must
// be paired as described on Validate.
type Options struct {
	ExtensionWidth Width
	Code           Code
	CipherKeySize  int
	SeedSize       int
}

// Default returns the baseline configuration: a 128-wide extension
// paired with the identity code, and the fixed AES-128 key size and
// 32-byte PRG seed size every other package in the core assumes.
func Default() Options {
	return Options{
		ExtensionWidth: Width128,
		Code:           CodeIdentity,
		CipherKeySize:  kernel.KeySize,
		SeedSize:       kernel.SeedSize,
	}
}

// KKRT returns the configuration a batch OPRF run needs: a 512-wide
// extension paired with the KKRT code.
func KKRT() Options {
	o := Default()
	o.ExtensionWidth = Width512
	o.Code = CodeKKRT
	return o
}

// Validate rejects any combination the core does not implement. Only
// two (ExtensionWidth, Code) pairs are meaningful: Width128 with
// CodeIdentity (an ordinary OT extension, or an OPRF that performs no
// codeword expansion beyond its raw input) and Width512 with
// CodeKKRT (the batch OPRF as specified). CipherKeySize and SeedSize
// are not actually negotiable - the kernel package fixes both as
// package constants - so any value other than those constants is
// rejected rather than silently ignored.
func (o Options) Validate() error {
	switch {
	case o.ExtensionWidth == Width128 && o.Code == CodeIdentity:
	case o.ExtensionWidth == Width512 && o.Code == CodeKKRT:
	default:
		return errs.Wrapf(errs.InvalidInput,
			"unsupported combination: extension_width=%d code=%q", o.ExtensionWidth, o.Code)
	}
	if o.CipherKeySize != kernel.KeySize {
		return errs.Wrapf(errs.InvalidInput,
			"cipher_key_size must be %d, got %d", kernel.KeySize, o.CipherKeySize)
	}
	if o.SeedSize != kernel.SeedSize {
		return errs.Wrapf(errs.InvalidInput,
			"seed_size must be %d, got %d", kernel.SeedSize, o.SeedSize)
	}
	return nil
}
