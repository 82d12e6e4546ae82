//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ot implements 1-out-of-2 oblivious transfer of byte strings
// using the Chou-Orlandi protocol over the Ristretto255 group. It is
// the base OT every OT extension and OPRF run bootstraps itself from:
// a handful of these transfers, amplified by otext or oprf, stand in
// for the thousands or millions a real workload needs.
package ot

import "github.com/markkurossi/ocelot/wire"

// Pair is one Sender input to a single OT: two equal-length messages,
// of which the Receiver learns exactly one.
type Pair struct {
	M0, M1 []byte
}

// OT is satisfied by any 1-out-of-2 OT implementation. InitSender and
// InitReceiver both just bind the instance to a channel; an instance
// bootstrapped one way is free to later call the other role's method,
// which is exactly what otext relies on when a batch bootstraps
// over this interface in one role and then falls back to it directly,
// in the other role, for small inputs. This mirrors the reference
// implementation's ObliviousTransfer trait, whose send and receive
// are ordinary methods with no role restriction at all. A different
// base OT could be substituted without touching the extension code.
type OT interface {
	InitSender(conn *wire.Shared) error
	InitReceiver(conn *wire.Shared) error

	// Send runs one base OT per element of pairs, in order. Every
	// pair's two messages must be the same length as each other; the
	// matching Receive call reads every message of the batch as
	// nbytes long.
	Send(pairs []Pair) error

	// Receive runs one base OT per element of choices, in order,
	// each learning an nbytes-byte message selected by the
	// corresponding choice bit.
	Receive(choices []bool, nbytes int) ([][]byte, error)
}
