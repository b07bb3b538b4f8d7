// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how Build composes full adders.
//
type Strategy int

// Supported strategies.
//
const (
	// Ripple builds a Chain of full adders.
	Ripple Strategy = iota
	// Hierarchical recursively halves the width down to single full adders.
	Hierarchical
)

var strategyNames = [...]string{
	Ripple:       "ripple",
	Hierarchical: "hierarchical",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
	return strategyNames[s]
}

func (s Strategy) valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}

// ParseStrategy returns the strategy with the given name. Names are case
// insensitive; "hier" and "tree" are accepted for Hierarchical.
//
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ripple", "chain":
		return Ripple, nil
	case "hierarchical", "hier", "tree":
		return Hierarchical, nil
	}
	return 0, errors.Wrapf(ErrInvalidStrategy, "unknown strategy %q", name)
}

// Split returns the widths of the low and high halves of a hierarchical
// adder of the given width. The low half gets width/2 bits, the high half the
// remainder.
//
func Split(width int) (low, high int) {
	low = width / 2
	return low, width - low
}

// Build returns an adder network of the given width.
//
// Build fails with ErrInvalidWidth if width < 1 and with ErrInvalidStrategy
// if s is not one of the defined strategies.
//
func Build(width int, s Strategy) (Network, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidWidth, "build %s adder of width %d", s, width)
	}
	if !s.valid() {
		return nil, errors.Wrapf(ErrInvalidStrategy, "build adder of width %d", width)
	}
	var n Network
	switch s {
	case Ripple:
		n = &Chain{cells: make([]Leaf, width)}
	case Hierarchical:
		n = buildTree(width)
	}
	T().Debugf("hwadd: built %s adder of width %d: %d cells, depth %d", s, width, CellCount(n), Depth(n))
	return n, nil
}

func buildTree(width int) Network {
	if width == 1 {
		return &Leaf{}
	}
	lw, hw := Split(width)
	return newComposite(buildTree(lw), buildTree(hw))
}

// MustBuild is like Build but panics on error.
//
func MustBuild(width int, s Strategy) Network {
	n, err := Build(width, s)
	if err != nil {
		panic(err)
	}
	return n
}
