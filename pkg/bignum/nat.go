// Package bignum wraps the arbitrary-precision arithmetic used to recompute
// expected test results. It never calls into the library under test.
package bignum

import (
	"fmt"
	"math/big"
)

// Nat is an arbitrary-precision integer. The zero value is ready to use as
// the number 0. Operations follow the z.Op(args) *Nat convention, storing
// the result in z and returning it.
type Nat struct {
	Data *big.Int
}

func (z *Nat) ensure() *big.Int {
	if z.Data == nil {
		z.Data = new(big.Int)
	}
	return z.Data
}

// SetUint64 sets z to x and returns z.
func (z *Nat) SetUint64(x uint64) *Nat {
	z.ensure().SetUint64(x)
	return z
}

// SetBytes interprets buf as a big-endian unsigned integer, stores it in z,
// and returns z.
func (z *Nat) SetBytes(buf []byte) *Nat {
	z.ensure().SetBytes(buf)
	return z
}

// SetNat copies the value of x into z and returns z.
func (z *Nat) SetNat(x *Nat) *Nat {
	z.ensure().Set(x.ensure())
	return z
}

// SetHex sets z from a big-endian hex string. The empty string is treated
// as zero, matching the convention of the test-vector format.
func (z *Nat) SetHex(hex string) (*Nat, error) {
	if hex == "" {
		z.ensure().SetUint64(0)
		return z, nil
	}
	if _, ok := z.ensure().SetString(hex, 16); !ok {
		return nil, fmt.Errorf("bignum: invalid hex string %q", hex)
	}
	return z, nil
}

// Clone returns a copy of z that can be mutated without affecting z.
func (z *Nat) Clone() *Nat {
	return new(Nat).SetNat(z)
}

// Bytes returns the value of z as a big-endian byte slice.
func (z *Nat) Bytes() []byte {
	return z.ensure().Bytes()
}

// Hex returns the value of z as lowercase hex without padding. Zero is "0".
func (z *Nat) Hex() string {
	return z.ensure().Text(16)
}

func (z *Nat) String() string {
	return z.Hex()
}

// BitLen returns the length of z in bits. The bit length of 0 is 0.
func (z *Nat) BitLen() int {
	return z.ensure().BitLen()
}

// Uint64 returns the low 64 bits of z.
func (z *Nat) Uint64() uint64 {
	return z.ensure().Uint64()
}

// Big returns the value of z as a math/big integer, in a fresh copy.
func (z *Nat) Big() *big.Int {
	return new(big.Int).Set(z.ensure())
}

// Cmp compares z and y, returning -1, 0 or +1.
func (z *Nat) Cmp(y *Nat) int {
	return z.ensure().Cmp(y.ensure())
}

// Eq reports whether z == y.
func (z *Nat) Eq(y *Nat) bool {
	return z.Cmp(y) == 0
}

// EqZero reports whether z == 0.
func (z *Nat) EqZero() bool {
	return z.ensure().Sign() == 0
}

// Add sets z = x + y and returns z.
func (z *Nat) Add(x, y *Nat) *Nat {
	z.ensure().Add(x.ensure(), y.ensure())
	return z
}

// Sub sets z = x - y and returns z. The result may be negative; reduce with
// Mod to get back into a residue ring.
func (z *Nat) Sub(x, y *Nat) *Nat {
	z.ensure().Sub(x.ensure(), y.ensure())
	return z
}

// Mul sets z = x * y and returns z.
func (z *Nat) Mul(x, y *Nat) *Nat {
	z.ensure().Mul(x.ensure(), y.ensure())
	return z
}

// Lsh sets z = x << shift and returns z.
func (z *Nat) Lsh(x *Nat, shift uint) *Nat {
	z.ensure().Lsh(x.ensure(), shift)
	return z
}

// Mod sets z = x mod m and returns z. The result is the non-negative
// residue in [0, m) even when x is negative.
func (z *Nat) Mod(x, m *Nat) *Nat {
	z.ensure().Mod(x.ensure(), m.ensure())
	return z
}

// ModAdd sets z = x + y mod m and returns z.
func (z *Nat) ModAdd(x, y, m *Nat) *Nat {
	d := z.ensure()
	d.Add(x.ensure(), y.ensure())
	d.Mod(d, m.ensure())
	return z
}

// ModSub sets z = x - y mod m and returns z.
func (z *Nat) ModSub(x, y, m *Nat) *Nat {
	d := z.ensure()
	d.Sub(x.ensure(), y.ensure())
	d.Mod(d, m.ensure())
	return z
}

// ModMul sets z = x * y mod m and returns z.
func (z *Nat) ModMul(x, y, m *Nat) *Nat {
	d := z.ensure()
	d.Mul(x.ensure(), y.ensure())
	d.Mod(d, m.ensure())
	return z
}

// Exp sets z = x**y mod m and returns z.
func (z *Nat) Exp(x, y, m *Nat) *Nat {
	z.ensure().Exp(x.ensure(), y.ensure(), m.ensure())
	return z
}

// ModInverse sets z = x⁻¹ mod m and returns z, or returns nil when x is not
// invertible mod m. The result, when it exists, is the positive residue.
func (z *Nat) ModInverse(x, m *Nat) *Nat {
	if z.ensure().ModInverse(x.ensure(), m.ensure()) == nil {
		return nil
	}
	return z
}

// Coprime reports whether gcd(x, y) == 1.
func (x *Nat) Coprime(y *Nat) bool {
	g := new(big.Int).GCD(nil, nil, x.ensure(), y.ensure())
	return g.Cmp(big.NewInt(1)) == 0
}

// IsUnit reports whether x is invertible mod m.
func (x *Nat) IsUnit(m *Nat) bool {
	return x.Coprime(m)
}

// ProbablyPrime performs n Miller-Rabin tests to check whether x is prime.
// If it returns true, x is prime with probability 1 - 1/4^n.
func (x *Nat) ProbablyPrime(n int) bool {
	return x.ensure().ProbablyPrime(n)
}
