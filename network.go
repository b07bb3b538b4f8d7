// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"strconv"
	"strings"
)

// A Network is an adder built out of full adders. The set of implementations
// is closed: *Leaf, *Composite and *Chain.
//
// Networks are immutable.
//
type Network interface {
	// Width returns the number of bits of each operand.
	Width() int
	String() string
	network()
}

// Leaf is a single full adder.
//
type Leaf struct{}

// Width always returns 1.
//
func (*Leaf) Width() int { return 1 }

func (*Leaf) String() string { return "L" }

func (*Leaf) network() {}

// Composite pairs two adders. The carry out of Low feeds the carry in of High.
//
type Composite struct {
	low, high Network
	width     int
}

func newComposite(low, high Network) *Composite {
	return &Composite{low: low, high: high, width: low.Width() + high.Width()}
}

// Width returns Low().Width() + High().Width().
//
func (c *Composite) Width() int { return c.width }

// Low returns the adder for the low order bits.
//
func (c *Composite) Low() Network { return c.low }

// High returns the adder for the high order bits.
//
func (c *Composite) High() Network { return c.high }

func (c *Composite) String() string {
	return "C(" + c.low.String() + "," + c.high.String() + ")"
}

func (*Composite) network() {}

// Chain is a ripple carry adder: a sequence of full adders, bit 0 first.
//
type Chain struct {
	cells []Leaf
}

// Width returns the number of cells in the chain.
//
func (c *Chain) Width() int { return len(c.cells) }

// Cells returns a copy of the chain's cells in order, bit 0 first.
//
func (c *Chain) Cells() []Leaf {
	r := make([]Leaf, len(c.cells))
	copy(r, c.cells)
	return r
}

func (c *Chain) String() string { return "R" + strconv.Itoa(len(c.cells)) }

func (*Chain) network() {}

// WalkFn is called by Walk for each node with its depth (0 for the root).
// Returning false prevents Walk from visiting the node's children.
//
type WalkFn func(n Network, depth int) bool

// Walk visits n and its sub-networks depth first, low half before high half.
//
func Walk(n Network, fn WalkFn) {
	walk(n, 0, fn)
}

func walk(n Network, depth int, fn WalkFn) {
	if n == nil || !fn(n, depth) {
		return
	}
	if c, ok := n.(*Composite); ok {
		walk(c.low, depth+1, fn)
		walk(c.high, depth+1, fn)
	}
}

// Depth returns the number of levels in n. Leaves and chains have depth 1.
//
func Depth(n Network) int {
	d := 0
	Walk(n, func(_ Network, depth int) bool {
		if depth+1 > d {
			d = depth + 1
		}
		return true
	})
	return d
}

// CellCount returns the number of full adders in n.
//
func CellCount(n Network) int {
	cnt := 0
	Walk(n, func(n Network, _ int) bool {
		switch n := n.(type) {
		case *Leaf:
			cnt++
		case *Chain:
			cnt += len(n.cells)
		}
		return true
	})
	return cnt
}

// Equal returns true if a and b have the same structure.
//
func Equal(a, b Network) bool {
	switch a := a.(type) {
	case *Leaf:
		_, ok := b.(*Leaf)
		return ok
	case *Composite:
		c, ok := b.(*Composite)
		return ok && Equal(a.low, c.low) && Equal(a.high, c.high)
	case *Chain:
		c, ok := b.(*Chain)
		return ok && len(a.cells) == len(c.cells)
	}
	return false
}

// Describe returns a multi-line, indented description of n.
//
func Describe(n Network) string {
	var b strings.Builder
	Walk(n, func(n Network, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		switch n := n.(type) {
		case *Leaf:
			b.WriteString("FullAdder")
		case *Composite:
			b.WriteString("Composite ")
			b.WriteString(strconv.Itoa(n.low.Width()))
			b.WriteByte('+')
			b.WriteString(strconv.Itoa(n.high.Width()))
		case *Chain:
			b.WriteString("Chain ")
			b.WriteString(strconv.Itoa(len(n.cells)))
		}
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
