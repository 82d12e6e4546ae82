//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package oprf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/config"
	"github.com/markkurossi/ocelot/errs"
)

func TestKKRTCodeDeterministicAndWide(t *testing.T) {
	x := block.RandomBlock()
	a := KKRTCode{}.Encode(x)
	b := KKRTCode{}.Encode(x)
	if len(a) != 64 {
		t.Fatalf("codeword length = %d, want 64", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatal("KKRTCode.Encode is not deterministic")
	}
}

func TestKKRTCodeDiffersAcrossInputs(t *testing.T) {
	a := KKRTCode{}.Encode(block.Block{Lo: 1})
	b := KKRTCode{}.Encode(block.Block{Lo: 2})
	if bytes.Equal(a, b) {
		t.Fatal("distinct inputs produced identical codewords")
	}
}

func TestIdentityCode(t *testing.T) {
	x := block.RandomBlock()
	got := IdentityCode{}.Encode(x)
	want := x.Bytes()
	if !bytes.Equal(got, want[:]) {
		t.Fatal("IdentityCode.Encode is not the identity")
	}
}

func TestCodeForReturnsMatchingCode(t *testing.T) {
	c, err := CodeFor(config.Default())
	if err != nil {
		t.Fatalf("CodeFor(Default()): %v", err)
	}
	if _, ok := c.(IdentityCode); !ok {
		t.Fatalf("CodeFor(Default()) = %T, want IdentityCode", c)
	}

	c, err = CodeFor(config.KKRT())
	if err != nil {
		t.Fatalf("CodeFor(KKRT()): %v", err)
	}
	if _, ok := c.(KKRTCode); !ok {
		t.Fatalf("CodeFor(KKRT()) = %T, want KKRTCode", c)
	}
}

func TestCodeForRejectsUnsupportedCombination(t *testing.T) {
	bad := config.Default()
	bad.ExtensionWidth = config.Width512
	if _, err := CodeFor(bad); !errors.Is(err, errs.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}
