package arith

import (
	"fmt"

	"github.com/alliedmodders/mbedtls/internal/params"
	"github.com/alliedmodders/mbedtls/pkg/bignum"
)

// Modulus wraps a bignum.Nat modulus together with its vetted primality
// class. Prime-only operations draw exclusively from moduli constructed
// with prime set; the claim is checked at construction, never later.
type Modulus struct {
	n     *bignum.Nat
	prime bool
}

// ModulusFromHex creates a Modulus from a big-endian hex string.
// The value must be greater than 1, and when prime is set it must pass
// the primality check.
func ModulusFromHex(hex string, prime bool) (*Modulus, error) {
	n, err := new(bignum.Nat).SetHex(hex)
	if err != nil {
		return nil, err
	}
	one := new(bignum.Nat).SetUint64(1)
	if n.Cmp(one) != 1 {
		return nil, fmt.Errorf("arith: modulus %q is not greater than 1", hex)
	}
	if prime && !n.ProbablyPrime(params.PrimalityIterations) {
		return nil, fmt.Errorf("arith: modulus %q is not prime", hex)
	}
	return &Modulus{n: n, prime: prime}, nil
}

// ModulusFromUint64 creates a Modulus from an integer, mainly for tests.
func ModulusFromUint64(x uint64, prime bool) *Modulus {
	return &Modulus{n: new(bignum.Nat).SetUint64(x), prime: prime}
}

// Nat returns the modulus value in a fresh copy.
func (m *Modulus) Nat() *bignum.Nat {
	return m.n.Clone()
}

// BitLen returns the length of the modulus in bits.
func (m *Modulus) BitLen() int {
	return m.n.BitLen()
}

// IsPrime reports the vetted primality class of the modulus.
func (m *Modulus) IsPrime() bool {
	return m.prime
}

// Limbs returns the number of limbs of the given width needed to hold the
// modulus. A modulus always occupies at least one limb.
func (m *Modulus) Limbs(bitsPerLimb int) int {
	bits := m.n.BitLen()
	if bits == 0 {
		bits = 1
	}
	return (bits + bitsPerLimb - 1) / bitsPerLimb
}

// R returns the Montgomery radix for the given limb width: the smallest
// power of 2^bitsPerLimb strictly greater than the modulus.
func (m *Modulus) R(bitsPerLimb int) *bignum.Nat {
	shift := uint(m.Limbs(bitsPerLimb) * bitsPerLimb)
	one := new(bignum.Nat).SetUint64(1)
	return new(bignum.Nat).Lsh(one, shift)
}

// ToMontgomery returns v * R mod n for the given limb width.
func (m *Modulus) ToMontgomery(v *bignum.Nat, bitsPerLimb int) *bignum.Nat {
	return new(bignum.Nat).ModMul(v, m.R(bitsPerLimb), m.n)
}

// FromMontgomery returns v * R⁻¹ mod n, undoing ToMontgomery. It fails when
// R is not invertible mod n, which only happens for even moduli.
func (m *Modulus) FromMontgomery(v *bignum.Nat, bitsPerLimb int) (*bignum.Nat, error) {
	rInv := new(bignum.Nat).ModInverse(m.R(bitsPerLimb), m.n)
	if rInv == nil {
		return nil, fmt.Errorf("arith: Montgomery radix not invertible mod %s", m.n.Hex())
	}
	return new(bignum.Nat).ModMul(v, rInv, m.n), nil
}
