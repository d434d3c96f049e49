package sample

import (
	"fmt"
	"io"

	"github.com/alliedmodders/mbedtls/pkg/bignum"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ by rejection, so the draw is uniform.
func ModN(rand io.Reader, n *bignum.Nat) *bignum.Nat {
	out := new(bignum.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		if out.Cmp(n) == -1 {
			return out
		}
	}
	panic(ErrMaxIterations)
}

// UnitModN returns a u ∈ ℤₙˣ, i.e. a nonzero element coprime to n.
func UnitModN(rand io.Reader, n *bignum.Nat) *bignum.Nat {
	for i := 0; i < maxIterations; i++ {
		out := ModN(rand, n)
		if out.EqZero() {
			continue
		}
		if out.IsUnit(n) {
			return out
		}
	}
	panic(ErrMaxIterations)
}

// Bits samples a value of at most the given number of bits.
func Bits(rand io.Reader, bits int) *bignum.Nat {
	buf := make([]byte, (bits+7)/8)
	mustReadBits(rand, buf)
	return new(bignum.Nat).SetBytes(buf)
}
