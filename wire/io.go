//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package wire implements the unframed byte, bit-vector, and group
// element primitives base OT, OT extension, and OPRF read and write
// directly on a shared channel. Every operation moves exactly the
// number of bytes its caller names; there is no length prefix, so a
// party that does not already know how many bytes to expect cannot
// recover by reading a header.
package wire

import "github.com/markkurossi/ocelot/block"

// IO is the set of channel primitives that both Conn and Shared
// provide. The protocol packages (ot, otext, oprf) take a *Shared
// directly rather than an IO, so a single underlying connection can
// be handed to nested protocol instances (an OT extension holding a
// base OT instance).
type IO interface {
	WriteBytes(buf []byte) error
	ReadBytes(n int) ([]byte, error)

	WriteBool(b bool) error
	ReadBool() (bool, error)

	WriteBlock(b block.Block) error
	ReadBlock() (block.Block, error)

	WriteBitVec(bits []bool) error
	ReadBitVec(n int) ([]bool, error)

	WritePoint(encoded []byte) error
	ReadPoint() ([]byte, error)

	Flush() error
}
