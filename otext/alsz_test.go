//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package otext

import (
	"crypto/rand"
	"sync"
	"testing"

	"github.com/markkurossi/ocelot/block"
	"github.com/markkurossi/ocelot/ot"
	"github.com/markkurossi/ocelot/wire"
)

// run bootstraps a fresh Chou-Orlandi base OT pair over an in-memory
// pipe and drives one Sender.Send / Receiver.Receive round.
func run(t *testing.T, choices []bool, pairs []ot.Pair) ([]block.Block, error) {
	t.Helper()

	connA, connB := wire.Pipe()
	sharedA := wire.NewShared(connA)
	sharedB := wire.NewShared(connB)

	baseSender := ot.NewDefault()
	baseReceiver := ot.NewDefault()
	if err := baseSender.InitReceiver(sharedA); err != nil {
		t.Fatal(err)
	}
	if err := baseReceiver.InitSender(sharedB); err != nil {
		t.Fatal(err)
	}

	sender := NewSender(baseSender, sharedA, rand.Reader)
	receiver := NewReceiver(baseReceiver, sharedB, rand.Reader)

	var wg sync.WaitGroup
	wg.Add(1)
	var sendErr error
	go func() {
		defer wg.Done()
		sendErr = sender.Send(pairs)
	}()

	results, recvErr := receiver.Receive(choices)
	wg.Wait()
	if sendErr != nil {
		return nil, sendErr
	}
	return results, recvErr
}

func randomPairs(t *testing.T, n int) ([]ot.Pair, []block.Block, []block.Block) {
	t.Helper()
	pairs := make([]ot.Pair, n)
	m0s := make([]block.Block, n)
	m1s := make([]block.Block, n)
	for i := range pairs {
		m0 := block.RandomBlock()
		m1 := block.RandomBlock()
		m0s[i], m1s[i] = m0, m1
		pairs[i] = ot.Pair{M0: m0.Slice(), M1: m1.Slice()}
	}
	return pairs, m0s, m1s
}

func randomChoices(n int) []bool {
	choices := make([]bool, n)
	buf := make([]byte, (n+7)/8)
	rand.Read(buf)
	for i := range choices {
		choices[i] = block.Bit(buf, i) == 1
	}
	return choices
}

func TestExtensionCorrectness(t *testing.T) {
	const n = 1024
	pairs, m0s, m1s := randomPairs(t, n)
	choices := randomChoices(n)

	results, err := run(t, choices, pairs)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i := range choices {
		want := m0s[i]
		if choices[i] {
			want = m1s[i]
		}
		if !results[i].Equal(want) {
			t.Fatalf("transfer %d: got %v want %v", i, results[i], want)
		}
	}
}

func TestExtensionFallbackMatchesDirect(t *testing.T) {
	const n = 64 // <= K, exercises the direct base-OT fallback path
	pairs, m0s, m1s := randomPairs(t, n)
	choices := randomChoices(n)

	results, err := run(t, choices, pairs)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i := range choices {
		want := m0s[i]
		if choices[i] {
			want = m1s[i]
		}
		if !results[i].Equal(want) {
			t.Fatalf("transfer %d: got %v want %v", i, results[i], want)
		}
	}
}

func TestExtensionRejectsNonMultipleOf8(t *testing.T) {
	pairs, _, _ := randomPairs(t, 129)
	choices := randomChoices(129)
	if _, err := run(t, choices, pairs); err == nil {
		t.Fatal("expected an error for a batch size not divisible by 8")
	}
}

func TestExtensionAcceptsBoundaryAbove128(t *testing.T) {
	const n = 136 // smallest multiple of 8 strictly greater than K
	pairs, m0s, m1s := randomPairs(t, n)
	choices := randomChoices(n)

	results, err := run(t, choices, pairs)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i := range choices {
		want := m0s[i]
		if choices[i] {
			want = m1s[i]
		}
		if !results[i].Equal(want) {
			t.Fatalf("transfer %d: got %v want %v", i, results[i], want)
		}
	}
}
