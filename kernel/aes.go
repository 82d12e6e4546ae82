//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package kernel holds the symmetric-crypto primitives shared by base
// OT, OT extension, and OPRF: AES-128-ECB with PKCS#7 padding for
// message encryption, a correlation-robust hash for extension and
// OPRF outputs, a Ristretto-point-to-key derivation, and the bit
// matrix transpose that turns extension rows into columns. None of
// these are exposed to the wire directly; the wire package only ever
// moves the fixed-size values these functions produce.
package kernel

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/markkurossi/ocelot/errs"
)

// KeySize is the AES-128 key length in bytes.
const KeySize = 16

// NewCipher validates key and returns the AES-128 block cipher for it.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, errs.Wrapf(errs.Crypto, "aes key must be %d bytes, got %d", KeySize, len(key))
	}
	blk, err := aes.NewCipher(key)
	if err != nil {
		return nil, errs.Wrap(errs.Crypto, err)
	}
	return blk, nil
}

func pkcs7Pad(data []byte) []byte {
	pad := aes.BlockSize - len(data)%aes.BlockSize
	out := make([]byte, len(data)+pad)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, errs.Wrapf(errs.Crypto, "pkcs7: ciphertext not block aligned")
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > aes.BlockSize || pad > len(data) {
		return nil, errs.Wrapf(errs.Crypto, "pkcs7: bad padding byte %d", pad)
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, errs.Wrapf(errs.Crypto, "pkcs7: inconsistent padding")
		}
	}
	return data[:len(data)-pad], nil
}

// PaddedLen returns the AES-128-ECB/PKCS#7 ciphertext length for a
// plaintext of n bytes. The Sender and Receiver of a base OT transfer
// both derive this from the agreed message length, so the wire never
// needs to carry it explicitly.
func PaddedLen(n int) int {
	return (n/aes.BlockSize + 1) * aes.BlockSize
}

// EncryptECB PKCS#7-pads plaintext and encrypts it block by block
// under key in ECB mode.
func EncryptECB(key, plaintext []byte) ([]byte, error) {
	blk, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plaintext)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		blk.Encrypt(out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}
	return out, nil
}

// DecryptECB decrypts ciphertext block by block under key in ECB mode
// and strips the PKCS#7 padding.
func DecryptECB(key, ciphertext []byte) ([]byte, error) {
	blk, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errs.Wrapf(errs.Crypto, "ciphertext length %d not a multiple of %d", len(ciphertext), aes.BlockSize)
	}
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += aes.BlockSize {
		blk.Decrypt(out[i:i+aes.BlockSize], ciphertext[i:i+aes.BlockSize])
	}
	return pkcs7Unpad(out)
}

// encryptBlock AES-encrypts exactly one 16-byte block under key, with
// no padding. Used by H and PointHash, which only ever operate on
// single blocks.
func encryptBlock(key, plaintext []byte) ([16]byte, error) {
	var out [16]byte
	blk, err := NewCipher(key)
	if err != nil {
		return out, err
	}
	if len(plaintext) != aes.BlockSize {
		return out, fmt.Errorf("kernel: encryptBlock: want %d bytes, got %d", aes.BlockSize, len(plaintext))
	}
	blk.Encrypt(out[:], plaintext)
	return out, nil
}

// EncryptSingleBlock AES-encrypts exactly one 16-byte block under
// key, with no padding. It panics on a malformed key or plaintext
// length, since both are always fixed-size values derived from
// package constants at every call site (a pseudorandom code's fixed
// key table, never caller-supplied data).
func EncryptSingleBlock(key, plaintext []byte) [16]byte {
	out, err := encryptBlock(key, plaintext)
	if err != nil {
		panic(err)
	}
	return out
}
