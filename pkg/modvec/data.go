package modvec

import (
	"sync"

	"github.com/alliedmodders/mbedtls/pkg/math/arith"
)

// Pre-vetted modulus pools. Inverse operations only support prime moduli
// for now, so they draw from primeModuliHex exclusively; add and sub accept
// anything greater than 1.
var primeModuliHex = []string{
	"3",
	"7",
	"d",
	"65",
	"1fffffffffffffff",                 // 2^61 - 1
	"7fffffffffffffffffffffffffffffff", // 2^127 - 1
	// secp256k1 field prime
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
	// NIST P-256 field prime
	"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
}

var compositeModuliHex = []string{
	"f",
	"10",
	"ff",
	"10001",
	"123456789abcdef0",
	"fffffffffffffffffffffffffffffffe",
}

// Operand corpus: boundary values around limb edges, reused by every
// variant. Random draws extend this set at generation time.
var inputValuesHex = []string{
	"0",
	"1",
	"2",
	"3",
	"4",
	"38",
	"f5",
	"fe",
	"ff",
	"100",
	"ff00",
	"fffe",
	"ffff",
	"10000",
	"fffffffe",
	"ffffffff",
	"100000000",
	"1234567890abcdef0",
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe",
}

var (
	poolOnce      sync.Once
	primeModuli   []*arith.Modulus
	generalModuli []*arith.Modulus
)

func mustModulus(hex string, prime bool) *arith.Modulus {
	m, err := arith.ModulusFromHex(hex, prime)
	if err != nil {
		panic(err)
	}
	return m
}

func initPools() {
	for _, h := range primeModuliHex {
		primeModuli = append(primeModuli, mustModulus(h, true))
	}
	generalModuli = append(generalModuli, primeModuli...)
	for _, h := range compositeModuliHex {
		generalModuli = append(generalModuli, mustModulus(h, false))
	}
}

// PrimeModuli returns the pool of moduli vetted as prime.
func PrimeModuli() []*arith.Modulus {
	poolOnce.Do(initPools)
	return primeModuli
}

// GeneralModuli returns the full modulus pool, composites included.
func GeneralModuli() []*arith.Modulus {
	poolOnce.Do(initPools)
	return generalModuli
}

// InputValues returns the fixed operand corpus as hex strings.
func InputValues() []string {
	out := make([]string, len(inputValuesHex))
	copy(out, inputValuesHex)
	return out
}
