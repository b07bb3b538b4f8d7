// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package mutant provides deliberately broken variants of adder networks.
//
// Each mutant applies a single wiring defect to every stage of a correct
// network. They exist to check that a test bench actually catches carry
// propagation bugs: a good set of samples kills every non-equivalent mutant.
//
package mutant

import (
	"github.com/db47h/hwadd"
	"github.com/pkg/errors"
)

// Floating is the value read from an undriven carry net. As with unconnected
// input pins, it reads as ground.
//
const Floating = false

type rules struct {
	// link maps the carry out of a stage to the carry in of the next one.
	link func(c bool) bool
	// both halves of a composite read the same unresolved net.
	shared bool
	// carry flows from the high bits to the low bits.
	reversed bool
	// carry out of the whole adder is never driven.
	noCout bool
}

func wire(c bool) bool { return c }

// A Mutant is a faulty adder derived from a network.
//
type Mutant struct {
	Name        string
	Description string
	net         hwadd.Network
	r           rules
}

// Width returns the width of the mutated network.
//
func (m *Mutant) Width() int { return m.net.Width() }

// Network returns the network the mutant was derived from.
//
func (m *Mutant) Network() hwadd.Network { return m.net }

func (m *Mutant) String() string { return m.Name + "(" + m.net.String() + ")" }

// Add evaluates the mutant. It enforces the same preconditions as
// hwadd.Evaluate.
//
func (m *Mutant) Add(a, b hwadd.Bits, cin bool) (hwadd.Result, error) {
	if w := m.net.Width(); len(a) != w || len(b) != w {
		return hwadd.Result{}, errors.Wrapf(hwadd.ErrWidthMismatch, "mutant %s: network width %d, operand widths %d and %d",
			m.Name, w, len(a), len(b))
	}
	sum := make(hwadd.Bits, len(a))
	cout := m.eval(m.net, a, b, cin, sum)
	if m.r.noCout {
		cout = Floating
	}
	return hwadd.Result{Sum: sum, Cout: cout}, nil
}

func (m *Mutant) eval(n hwadd.Network, a, b hwadd.Bits, cin bool, sum hwadd.Bits) bool {
	switch n := n.(type) {
	case *hwadd.Leaf:
		var c bool
		sum[0], c = hwadd.FullAdder(a[0], b[0], cin)
		return c
	case *hwadd.Chain:
		w := n.Width()
		c := cin
		for i := 0; i < w; i++ {
			if i > 0 {
				c = m.r.link(c)
			}
			j := i
			if m.r.reversed {
				j = w - 1 - i
			}
			sum[j], c = hwadd.FullAdder(a[j], b[j], c)
		}
		return c
	case *hwadd.Composite:
		w := n.Low().Width()
		switch {
		case m.r.shared:
			m.eval(n.Low(), a[:w], b[:w], Floating, sum[:w])
			return m.eval(n.High(), a[w:], b[w:], Floating, sum[w:])
		case m.r.reversed:
			c := m.eval(n.High(), a[w:], b[w:], cin, sum[w:])
			return m.eval(n.Low(), a[:w], b[:w], m.r.link(c), sum[:w])
		default:
			c := m.eval(n.Low(), a[:w], b[:w], cin, sum[:w])
			return m.eval(n.High(), a[w:], b[w:], m.r.link(c), sum[w:])
		}
	}
	panic("unknown network type")
}

// SharedCarry returns a mutant where both halves of every composite take
// their carry in from the same unresolved net instead of the low half reading
// the carry in and the high half reading the low half's carry out.
//
// Chains are not affected.
//
func SharedCarry(n hwadd.Network) *Mutant {
	return &Mutant{
		Name:        "SharedCarry",
		Description: "both halves of a composite read the same unresolved carry net",
		net:         n,
		r:           rules{link: wire, shared: true},
	}
}

// StuckCarry returns a mutant where every carry between two stages is stuck
// at v. The carry in of the whole adder is still connected.
//
func StuckCarry(n hwadd.Network, v bool) *Mutant {
	name := "StuckCarry0"
	if v {
		name = "StuckCarry1"
	}
	return &Mutant{
		Name:        name,
		Description: "inter-stage carry stuck at a constant",
		net:         n,
		r:           rules{link: func(bool) bool { return v }},
	}
}

// InvertedCarry returns a mutant where every carry between two stages is
// inverted.
//
func InvertedCarry(n hwadd.Network) *Mutant {
	return &Mutant{
		Name:        "InvertedCarry",
		Description: "inter-stage carry inverted",
		net:         n,
		r:           rules{link: func(c bool) bool { return !c }},
	}
}

// ReversedCarry returns a mutant where the carry is threaded from the high
// bits down to the low bits.
//
func ReversedCarry(n hwadd.Network) *Mutant {
	return &Mutant{
		Name:        "ReversedCarry",
		Description: "carry threaded from high to low bits",
		net:         n,
		r:           rules{link: wire, reversed: true},
	}
}

// DroppedCarryOut returns a mutant whose carry out is left floating.
//
func DroppedCarryOut(n hwadd.Network) *Mutant {
	return &Mutant{
		Name:        "DroppedCarryOut",
		Description: "carry out not driven",
		net:         n,
		r:           rules{link: wire, noCout: true},
	}
}

// All returns every mutant that changes the wiring of n. Mutants equivalent
// to n by construction are left out: SharedCarry when n has no composite,
// and the inter-stage carry mutants when n is a single full adder.
//
func All(n hwadd.Network) []*Mutant {
	var ms []*Mutant
	if hasComposite(n) {
		ms = append(ms, SharedCarry(n))
	}
	if hwadd.CellCount(n) > 1 {
		ms = append(ms,
			StuckCarry(n, false),
			StuckCarry(n, true),
			InvertedCarry(n),
			ReversedCarry(n),
		)
	}
	return append(ms, DroppedCarryOut(n))
}

func hasComposite(n hwadd.Network) bool {
	found := false
	hwadd.Walk(n, func(n hwadd.Network, _ int) bool {
		if _, ok := n.(*hwadd.Composite); ok {
			found = true
		}
		return !found
	})
	return found
}
