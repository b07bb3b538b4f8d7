// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Bits is a fixed width bit vector. Bit 0 is the least significant bit.
//
type Bits []bool

// FromUint64 returns the width low bits of v. Bits above 64 are zero.
//
func FromUint64(v uint64, width int) Bits {
	b := make(Bits, width)
	for i := 0; i < width && i < 64; i++ {
		b[i] = v&(1<<uint(i)) != 0
	}
	return b
}

// FromBig returns the width low bits of v, which must not be negative.
//
func FromBig(v *big.Int, width int) Bits {
	b := make(Bits, width)
	for i := range b {
		b[i] = v.Bit(i) != 0
	}
	return b
}

// Width returns the number of bits in b.
//
func (b Bits) Width() int { return len(b) }

// Uint64 returns the value of b as an unsigned integer.
// Bits above bit 63 are ignored.
//
func (b Bits) Uint64() uint64 {
	var v uint64
	for i, s := range b {
		if i >= 64 {
			break
		}
		if s {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Big returns the value of b as an unsigned big integer.
//
func (b Bits) Big() *big.Int {
	v := new(big.Int)
	for i, s := range b {
		if s {
			v.SetBit(v, i, 1)
		}
	}
	return v
}

// Slice returns a copy of bits [lo, hi).
//
func (b Bits) Slice(lo, hi int) Bits {
	r := make(Bits, hi-lo)
	copy(r, b[lo:hi])
	return r
}

// Equal returns true if b and o have the same width and bits.
//
func (b Bits) Equal(o Bits) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// String returns b in binary, most significant bit first, prefixed with 0b.
//
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b) + 2)
	sb.WriteString("0b")
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBits parses s as an unsigned integer (decimal, or prefixed with 0b, 0o
// or 0x; underscores are allowed between digits) and returns its width low
// bits. Values that do not fit in width bits are rejected.
//
func ParseBits(s string, width int) (Bits, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidWidth, "width %d", width)
	}
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 {
		return nil, errors.Errorf("invalid unsigned integer %q", s)
	}
	if v.BitLen() > width {
		return nil, errors.Errorf("value %s does not fit in %d bits", s, width)
	}
	return FromBig(v, width), nil
}
