// Package modvec computes expected results for modular bignum operations
// and encodes them as test-suite rows. Results are recomputed with a
// general-purpose arbitrary-precision facility, never with the library the
// vectors are meant to test.
package modvec

import (
	"strings"

	"github.com/alliedmodders/mbedtls/pkg/bignum"
	"github.com/alliedmodders/mbedtls/pkg/math/arith"
)

// Style selects how operand and result values are encoded.
type Style int

const (
	// StyleFixed pads values to the modulus width at the fixed limb size;
	// a single case covers every architecture.
	StyleFixed Style = iota
	// StyleArchSplit emits one case per architecture word size. Mandatory
	// whenever Montgomery-form values appear, since the Montgomery radix
	// depends on the word size.
	StyleArchSplit
)

func (s Style) String() string {
	if s == StyleArchSplit {
		return "arch_split"
	}
	return "fixed"
}

// Case is a single (operands, modulus) combination bound to a limb width.
// Operand inputs keep their drawn value for encoding, while arithmetic
// always sees the reduced residue. A Case is immutable after construction.
type Case struct {
	rawA, rawB *bignum.Nat
	redA, redB *bignum.Nat
	n          *arith.Modulus
	bits       int
	style      Style
	montA      bool
}

func newCase(n *arith.Modulus, a, b *bignum.Nat, bits int, style Style, montA bool) *Case {
	if b == nil {
		b = new(bignum.Nat).SetUint64(0)
	}
	return &Case{
		rawA:  a.Clone(),
		rawB:  b.Clone(),
		redA:  new(bignum.Nat).Mod(a, n.Nat()),
		redB:  new(bignum.Nat).Mod(b, n.Nat()),
		n:     n,
		bits:  bits,
		style: style,
		montA: montA,
	}
}

// A returns the first operand reduced into [0, n).
func (c *Case) A() *bignum.Nat { return c.redA.Clone() }

// B returns the second operand reduced into [0, n).
func (c *Case) B() *bignum.Nat { return c.redB.Clone() }

// N returns the modulus value.
func (c *Case) N() *bignum.Nat { return c.n.Nat() }

// BitsPerLimb returns the limb width this case is bound to.
func (c *Case) BitsPerLimb() int { return c.bits }

func (c *Case) toMontgomery(v *bignum.Nat) *bignum.Nat {
	return c.n.ToMontgomery(v, c.bits)
}

// hexDigits is the padded width of one encoded value: the modulus's limb
// count at the case's limb width, in hex digits.
func (c *Case) hexDigits() int {
	return 2 * c.n.Limbs(c.bits) * c.bits / 8
}

func (c *Case) formatValue(v *bignum.Nat) string {
	s := v.Hex()
	if pad := c.hexDigits() - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// ArgA encodes the first operand, in Montgomery form when the case demands
// it. Montgomery encoding applies to the reduced residue.
func (c *Case) ArgA() string {
	if c.montA {
		return c.formatValue(c.toMontgomery(c.redA))
	}
	return c.formatValue(c.rawA)
}

// ArgB encodes the second operand.
func (c *Case) ArgB() string { return c.formatValue(c.rawB) }

// ArgN encodes the modulus.
func (c *Case) ArgN() string { return c.formatValue(c.n.Nat()) }

// FormatResult encodes a computed result the same way as the inputs.
func (c *Case) FormatResult(v *bignum.Nat) string { return c.formatValue(v) }
