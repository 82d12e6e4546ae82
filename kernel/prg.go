//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kernel

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/markkurossi/ocelot/errs"
)

// SeedSize is the length in bytes of a base-OT-delivered PRG seed.
const SeedSize = 32

// Expand deterministically stretches a 32-byte seed into n bytes
// using AES-256-CTR with a zero IV, to expand base-OT seeds into row
// masks. The seed doubles as the AES-256 key, so no separate key
// schedule step is needed.
func Expand(seed []byte, n int) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, errs.Wrapf(errs.InvalidInput, "prg seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	blk, err := aes.NewCipher(seed)
	if err != nil {
		return nil, errs.Wrap(errs.Crypto, err)
	}
	var iv [aes.BlockSize]byte
	stream := cipher.NewCTR(blk, iv[:])

	out := make([]byte, n)
	stream.XORKeyStream(out, out)
	return out, nil
}
