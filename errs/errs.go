//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package errs defines the error taxonomy shared by the wire, kernel,
// ot, otext, oprf, and config packages. Every error returned across a
// protocol boundary wraps exactly one of the four sentinels below, so
// callers can classify a failure with errors.Is without parsing
// messages. Wrapping goes through cockroachdb/errors rather than the
// standard library so causes keep their stack traces across package
// boundaries, the same wrapper the OT layer of the sibling taiyi fork
// of this codebase uses for its own channel and transport errors.
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// IO marks a failure reading from or writing to the underlying
	// channel (closed connection, short read, timeout).
	IO = errors.New("ot: io error")

	// InvalidEncoding marks a value read off the wire that does not
	// decode into the type the protocol expects (a non-canonical or
	// off-curve point, a malformed codeword).
	InvalidEncoding = errors.New("ot: invalid encoding")

	// InvalidInput marks an argument supplied by the caller that
	// violates a protocol invariant (mismatched slice lengths, a
	// message count that isn't a multiple of 8, an unsupported
	// configuration option combination).
	InvalidInput = errors.New("ot: invalid input")

	// Crypto marks a failure inside a cryptographic primitive itself
	// (bad key length, malformed PKCS#7 padding after decryption).
	Crypto = errors.New("ot: crypto error")
)

// Wrap annotates cause with kind so that errors.Is(err, kind) succeeds
// while the original cause remains visible via errors.Unwrap and
// errors.Is/As. kind is prepended to cause's message the way
// errors.Wrap prepends any message, then Mark stamps kind onto the
// result without disturbing the cause chain underneath it.
func Wrap(kind error, cause error) error {
	if cause == nil {
		return nil
	}
	return errors.Mark(errors.Wrapf(cause, "%s", kind), kind)
}

// Wrapf is like Wrap but formats the cause from a message instead of
// wrapping an existing error.
func Wrapf(kind error, format string, args ...interface{}) error {
	return errors.Mark(errors.Newf("%s: %s", kind, fmt.Sprintf(format, args...)), kind)
}
