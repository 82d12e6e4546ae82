//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package errs

import (
	"errors"
	"testing"
)

func TestWrapIsMatchesKind(t *testing.T) {
	cause := errors.New("short read")
	err := Wrap(IO, cause)
	if !errors.Is(err, IO) {
		t.Fatalf("errors.Is(err, IO) = false, want true: %v", err)
	}
	if errors.Is(err, Crypto) {
		t.Fatal("errors.Is(err, Crypto) = true, want false")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true; cause should stay in the chain")
	}
}

func TestWrapNilCauseIsNil(t *testing.T) {
	if Wrap(IO, nil) != nil {
		t.Fatal("Wrap(kind, nil) must return nil")
	}
}

func TestWrapfIsMatchesKind(t *testing.T) {
	err := Wrapf(InvalidInput, "batch size %d not divisible by 8", 129)
	if !errors.Is(err, InvalidInput) {
		t.Fatalf("errors.Is(err, InvalidInput) = false, want true: %v", err)
	}
	if errors.Is(err, IO) {
		t.Fatal("errors.Is(err, IO) = true, want false")
	}
}
