// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing adders.
//
package hwtest

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/hwadd"
	"github.com/pkg/errors"
)

type oracle int

func (o oracle) Width() int { return int(o) }

func (o oracle) Add(a, b hwadd.Bits, cin bool) (hwadd.Result, error) {
	w := int(o)
	if len(a) != w || len(b) != w {
		return hwadd.Result{}, errors.Wrapf(hwadd.ErrWidthMismatch, "oracle width %d, operand widths %d and %d", w, len(a), len(b))
	}
	s := new(big.Int).Add(a.Big(), b.Big())
	if cin {
		s.Add(s, big.NewInt(1))
	}
	return hwadd.Result{Sum: hwadd.FromBig(s, w), Cout: s.Bit(w) != 0}, nil
}

// Oracle returns a reference adder of the given width that computes
// a + b + cin with integer arithmetic.
//
func Oracle(width int) hwadd.Adder {
	return oracle(width)
}

func randBool(rng *rand.Rand) bool {
	return rng.Int63()&(1<<62) != 0
}

func randBits(width int, rng *rand.Rand) hwadd.Bits {
	b := make(hwadd.Bits, width)
	for i := range b {
		b[i] = randBool(rng)
	}
	return b
}

func pattern(width int, f func(i int) bool) hwadd.Bits {
	b := make(hwadd.Bits, width)
	for i := range b {
		b[i] = f(i)
	}
	return b
}

// Samples returns operands for an adder of the given width: all zeros, all
// ones, single carry propagation over the whole width, alternating bit
// patterns, each with both carry in values, followed by n random operands.
//
func Samples(width, n int, rng *rand.Rand) []hwadd.Operands {
	zero := pattern(width, func(int) bool { return false })
	max := pattern(width, func(int) bool { return true })
	one := pattern(width, func(i int) bool { return i == 0 })
	even := pattern(width, func(i int) bool { return i&1 == 0 })
	odd := pattern(width, func(i int) bool { return i&1 != 0 })

	var ops []hwadd.Operands
	for _, cin := range []bool{false, true} {
		ops = append(ops,
			hwadd.Operands{A: zero, B: zero, Cin: cin},
			hwadd.Operands{A: max, B: max, Cin: cin},
			hwadd.Operands{A: max, B: one, Cin: cin},
			hwadd.Operands{A: max, B: zero, Cin: cin},
			hwadd.Operands{A: even, B: odd, Cin: cin},
			hwadd.Operands{A: even, B: even, Cin: cin},
		)
	}
	for i := 0; i < n; i++ {
		ops = append(ops, hwadd.Operands{A: randBits(width, rng), B: randBits(width, rng), Cin: randBool(rng)})
	}
	return ops
}

// A Counterexample is an input for which two adders disagree.
//
type Counterexample struct {
	hwadd.Operands
	Want hwadd.Result
	Got  hwadd.Result
}

func (c *Counterexample) String() string {
	cin := 0
	if c.Cin {
		cin = 1
	}
	return fmt.Sprintf("a=%s (%s), b=%s (%s), cin=%d: expected %s (%s), got %s (%s)",
		c.A, c.A.Big(), c.B, c.B.Big(), cin, c.Want, c.Want.Big(), c.Got, c.Got.Big())
}

// FindCounterexample runs ref and dut on every sample and returns the first
// one for which they disagree, or nil if there is none. An error is returned
// if the adders have different widths or if any of them fails.
//
func FindCounterexample(ref, dut hwadd.Adder, samples []hwadd.Operands) (*Counterexample, error) {
	if ref.Width() != dut.Width() {
		return nil, errors.Wrapf(hwadd.ErrWidthMismatch, "reference width %d, adder width %d", ref.Width(), dut.Width())
	}
	for i, s := range samples {
		want, err := ref.Add(s.A, s.B, s.Cin)
		if err != nil {
			return nil, errors.Wrapf(err, "reference, sample #%d", i)
		}
		got, err := dut.Add(s.A, s.B, s.Cin)
		if err != nil {
			return nil, errors.Wrapf(err, "adder, sample #%d", i)
		}
		if !want.Equal(got) {
			return &Counterexample{Operands: s, Want: want, Got: got}, nil
		}
	}
	return nil, nil
}

// RandomSamples returns Samples(width, n, rng) for a time seeded rng. The
// seed is logged if the test fails so that the run can be reproduced with
// Samples.
//
func RandomSamples(t testing.TB, width, n int) []hwadd.Operands {
	t.Helper()
	seed := time.Now().UnixNano()
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("random samples seed: %d", seed)
		}
	})
	return Samples(width, n, rand.New(rand.NewSource(seed)))
}

// CompareAdder compares the outputs of dut against ref on the given samples
// and fails the test on the first mismatch. Both adders must have the same
// width.
//
func CompareAdder(t testing.TB, samples []hwadd.Operands, ref, dut hwadd.Adder) {
	t.Helper()

	start := time.Now()
	c, err := FindCounterexample(ref, dut, samples)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if c != nil {
		t.Fatal("\n" + c.String())
	}
	elapsed := time.Since(start)
	t.Logf("width %d: %d additions in %v", ref.Width(), len(samples), elapsed)
}

// CompareNetwork compares a network against the oracle on the edge cases
// and n random operands. See CompareAdder and RandomSamples.
//
func CompareNetwork(t testing.TB, n int, net hwadd.Network) {
	t.Helper()
	CompareAdder(t, RandomSamples(t, net.Width(), n), Oracle(net.Width()), hwadd.NewAdder(net))
}
